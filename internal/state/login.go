package state

import (
	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/store"
)

type LoginState struct {
	Email           Field
	Password        Field
	PasswordVisible bool
}

type Login struct {
	*store.Store[LoginState]
}

func NewLogin() *Login {
	return &Login{Store: store.New("Login", LoginState{})}
}

func (l *Login) SetEmail(email string) {
	l.Update(func(s LoginState) LoginState {
		s.Email = s.Email.With(email)
		return s
	})
}

func (l *Login) SetPassword(password string) {
	l.Update(func(s LoginState) LoginState {
		s.Password = s.Password.With(password)
		return s
	})
}

func (l *Login) SetPasswordVisible(visible bool) {
	l.Update(func(s LoginState) LoginState {
		s.PasswordVisible = visible
		return s
	})
}

// Login is not wired to any backend.
func (l *Login) Login() {
	logger.ComponentLogger("Login").Debug("login requested", "email_set", l.State().Email.Set)
}
