package state

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/store"
)

const minPasswordLength = 6

const (
	ErrNameRequired     = "Name is required"
	ErrInvalidEmail     = "Invalid email format"
	ErrPasswordTooShort = "Password must be at least 6 characters"
	ErrPasswordMismatch = "Passwords do not match"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

type SignUpState struct {
	Name                   Field
	Email                  Field
	Password               Field
	ConfirmPassword        Field
	PasswordVisible        bool
	ConfirmPasswordVisible bool
	TermsAccepted          bool
}

func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func validEmail(email string) bool {
	return strings.TrimSpace(email) != "" && emailRegex.MatchString(email)
}

// passwordLength counts UTF-16 code units, so a character outside the BMP
// such as an emoji counts as two.
func passwordLength(password string) int {
	n := 0
	for _, r := range password {
		n += utf16.RuneLen(r)
	}
	return n
}

func validPassword(password string) bool {
	return strings.TrimSpace(password) != "" && passwordLength(password) >= minPasswordLength
}

func validConfirmPassword(confirm, password string) bool {
	return strings.TrimSpace(confirm) != "" && confirm == password
}

// IsFormValid reports whether the sign up button should be enabled.
func (s SignUpState) IsFormValid() bool {
	return validName(s.Name.Value) &&
		validEmail(s.Email.Value) &&
		validPassword(s.Password.Value) &&
		validConfirmPassword(s.ConfirmPassword.Value, s.Password.Value) &&
		s.TermsAccepted
}

// NameError returns the message to show under the name field, or "".
func (s SignUpState) NameError() string {
	if s.Name.Set && !validName(s.Name.Value) {
		return ErrNameRequired
	}
	return ""
}

func (s SignUpState) EmailError() string {
	if s.Email.Set && !validEmail(s.Email.Value) {
		return ErrInvalidEmail
	}
	return ""
}

func (s SignUpState) PasswordError() string {
	if s.Password.Set && !validPassword(s.Password.Value) {
		return ErrPasswordTooShort
	}
	return ""
}

func (s SignUpState) ConfirmPasswordError() string {
	if s.ConfirmPassword.Set && !validConfirmPassword(s.ConfirmPassword.Value, s.Password.Value) {
		return ErrPasswordMismatch
	}
	return ""
}

type SignUp struct {
	*store.Store[SignUpState]
}

func NewSignUp() *SignUp {
	return &SignUp{Store: store.New("SignUp", SignUpState{})}
}

func (u *SignUp) SetName(name string) {
	u.Update(func(s SignUpState) SignUpState {
		s.Name = s.Name.With(name)
		return s
	})
}

func (u *SignUp) SetEmail(email string) {
	u.Update(func(s SignUpState) SignUpState {
		s.Email = s.Email.With(email)
		return s
	})
}

func (u *SignUp) SetPassword(password string) {
	u.Update(func(s SignUpState) SignUpState {
		s.Password = s.Password.With(password)
		return s
	})
}

func (u *SignUp) SetConfirmPassword(confirm string) {
	u.Update(func(s SignUpState) SignUpState {
		s.ConfirmPassword = s.ConfirmPassword.With(confirm)
		return s
	})
}

func (u *SignUp) SetPasswordVisible(visible bool) {
	u.Update(func(s SignUpState) SignUpState {
		s.PasswordVisible = visible
		return s
	})
}

func (u *SignUp) SetConfirmPasswordVisible(visible bool) {
	u.Update(func(s SignUpState) SignUpState {
		s.ConfirmPasswordVisible = visible
		return s
	})
}

func (u *SignUp) SetTermsAccepted(accepted bool) {
	u.Update(func(s SignUpState) SignUpState {
		s.TermsAccepted = accepted
		return s
	})
}

// SignUp is not wired to any backend.
func (u *SignUp) SignUp() {
	logger.ComponentLogger("SignUp").Debug("sign up requested", "valid", u.State().IsFormValid())
}
