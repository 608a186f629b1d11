package state

import (
	"github.com/saravenpi/stencil/internal/models"
	"github.com/saravenpi/stencil/internal/store"
)

type ChatState struct {
	TypingMessage string
	LocalUser     string
	// Chat is nil until a chat is opened.
	Chat *models.Chat
}

type Chat struct {
	*store.Store[ChatState]
}

func NewChat(localUser string) *Chat {
	return &Chat{Store: store.New("Chat", ChatState{LocalUser: localUser})}
}

// SetChat opens chat, recomputing which messages show their sender's name.
// A nil chat clears the screen.
func (c *Chat) SetChat(chat *models.Chat) {
	var opened *models.Chat
	if chat != nil {
		withNames := models.WithSenderNames(*chat)
		opened = &withNames
	}
	c.Update(func(s ChatState) ChatState {
		s.Chat = opened
		return s
	})
}

func (c *Chat) SetTypingMessage(text string) {
	c.Update(func(s ChatState) ChatState {
		s.TypingMessage = text
		return s
	})
}

// Send clears the compose field. Nothing is appended to the chat.
func (c *Chat) Send() {
	c.SetTypingMessage("")
}
