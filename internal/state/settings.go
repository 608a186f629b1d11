package state

import (
	"strings"

	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/store"
)

type SettingsState struct {
	UserName string
}

// Handle derives the profile handle from the user name, "John Doe" becoming
// "@john_doe".
func (s SettingsState) Handle() string {
	return "@" + strings.Join(strings.Fields(strings.ToLower(s.UserName)), "_")
}

type Settings struct {
	*store.Store[SettingsState]
}

func NewSettings(userName string) *Settings {
	return &Settings{Store: store.New("Settings", SettingsState{UserName: userName})}
}

// SelectSetting has no destination screen yet.
func (s *Settings) SelectSetting(setting Setting) {
	logger.ComponentLogger("Settings").Debug("setting selected", "setting", setting.Title())
}

// Logout is not wired to any backend.
func (s *Settings) Logout() {
	logger.ComponentLogger("Settings").Debug("logout requested", "user", s.State().UserName)
}
