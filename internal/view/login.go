package view

import (
	"context"
	"strings"
	"sync"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/session"
)

// The one failure the login view treats specially: a server error whose
// message equals this sentinel maps to the "invalid email" text. Everything
// else gets the generic authentication failure.
const invalidEmailSentinel = "INVALID_EMAIL"

type LoginView struct {
	mu     sync.Mutex
	errKey string
	busy   bool
}

func NewLoginView() *LoginView {
	return &LoginView{}
}

// Submit clears any prior error, rejects blank input locally, and otherwise
// drives a session login. Returns true when the session is authenticated
// afterward.
func (v *LoginView) Submit(ctx context.Context, sess *session.Store, email string) bool {
	v.mu.Lock()
	v.errKey = ""

	email = strings.TrimSpace(email)
	if email == "" {
		v.errKey = prefs.KeyEnterEmail
		v.mu.Unlock()
		return false
	}
	v.busy = true
	v.mu.Unlock()

	_, err := sess.Login(ctx, email)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = false

	if err != nil {
		if err.Error() == invalidEmailSentinel {
			v.errKey = prefs.KeyInvalidEmail
		} else {
			v.errKey = prefs.KeyAuthFailed
		}
		return false
	}
	return true
}

type LoginVM struct {
	Title          string `json:"title"`
	Placeholder    string `json:"placeholder"`
	Error          string `json:"error,omitempty"`
	Busy           bool   `json:"busy"`
	ButtonLabel    string `json:"buttonLabel"`
	ButtonDisabled bool   `json:"buttonDisabled"`
}

func (v *LoginView) Render(lang prefs.Language) LoginVM {
	v.mu.Lock()
	defer v.mu.Unlock()

	vm := LoginVM{
		Title:          prefs.T(lang, prefs.KeyLoginTitle),
		Placeholder:    prefs.T(lang, prefs.KeyEmailPlaceholder),
		Busy:           v.busy,
		ButtonDisabled: v.busy,
	}
	if v.errKey != "" {
		vm.Error = prefs.T(lang, v.errKey)
	}
	if v.busy {
		vm.ButtonLabel = prefs.T(lang, prefs.KeyAuthenticating)
	} else {
		vm.ButtonLabel = prefs.T(lang, prefs.KeySignIn)
	}
	return vm
}
