package view

import (
	"context"
	"errors"
	"testing"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/session"
)

type fakeCandidateSource struct {
	calls  int
	cand   remote.Candidate
	err    error
	cached *remote.Candidate
}

func (f *fakeCandidateSource) CandidateByEmail(_ context.Context, _ string) (remote.Candidate, error) {
	f.calls++
	return f.cand, f.err
}
func (f *fakeCandidateSource) CachedCandidate() *remote.Candidate { return f.cached }
func (f *fakeCandidateSource) ClearCachedCandidate()              { f.cached = nil }

func TestLoginEmptyEmailRejectedLocally(t *testing.T) {
	src := &fakeCandidateSource{}
	sess := session.New(src, nil)
	v := NewLoginView()

	if ok := v.Submit(context.Background(), sess, "   "); ok {
		t.Fatal("blank email accepted")
	}
	if src.calls != 0 {
		t.Fatalf("api called %d times for blank email, want 0", src.calls)
	}
	vm := v.Render(prefs.LangEN)
	if vm.Error != prefs.T(prefs.LangEN, prefs.KeyEnterEmail) {
		t.Errorf("error = %q, want enter-email message", vm.Error)
	}
}

func TestLoginInvalidEmailSentinel(t *testing.T) {
	src := &fakeCandidateSource{err: errors.New("INVALID_EMAIL")}
	sess := session.New(src, nil)
	v := NewLoginView()

	if ok := v.Submit(context.Background(), sess, "nope@example.com"); ok {
		t.Fatal("rejected email reported as success")
	}
	vm := v.Render(prefs.LangEN)
	if vm.Error != prefs.T(prefs.LangEN, prefs.KeyInvalidEmail) {
		t.Errorf("error = %q, want invalid-email message", vm.Error)
	}
	if sess.Candidate() != nil {
		t.Error("session kept a candidate after rejection")
	}
}

func TestLoginGenericFailure(t *testing.T) {
	src := &fakeCandidateSource{err: errors.New("api status 500")}
	sess := session.New(src, nil)
	v := NewLoginView()

	v.Submit(context.Background(), sess, "test@example.com")
	vm := v.Render(prefs.LangEN)
	if vm.Error != prefs.T(prefs.LangEN, prefs.KeyAuthFailed) {
		t.Errorf("error = %q, want generic auth-failed message", vm.Error)
	}
}

func TestLoginSuccessClearsErrorAndReportsTrue(t *testing.T) {
	src := &fakeCandidateSource{err: errors.New("api status 500")}
	sess := session.New(src, nil)
	v := NewLoginView()

	v.Submit(context.Background(), sess, "test@example.com")
	if v.Render(prefs.LangEN).Error == "" {
		t.Fatal("precondition: expected an error")
	}

	src.err = nil
	src.cand = cand
	if ok := v.Submit(context.Background(), sess, "test@example.com"); !ok {
		t.Fatal("successful login reported false")
	}
	vm := v.Render(prefs.LangEN)
	if vm.Error != "" {
		t.Errorf("stale error survived success: %q", vm.Error)
	}
	if vm.Busy || vm.ButtonDisabled {
		t.Errorf("busy state not cleared: %+v", vm)
	}
	got := sess.Candidate()
	if got == nil || got.Email != "test@example.com" {
		t.Errorf("session candidate = %+v", got)
	}
	if vm.ButtonLabel != prefs.T(prefs.LangEN, prefs.KeySignIn) {
		t.Errorf("idle label = %q", vm.ButtonLabel)
	}
}

func TestLoginSpanishMessages(t *testing.T) {
	src := &fakeCandidateSource{err: errors.New("INVALID_EMAIL")}
	sess := session.New(src, nil)
	v := NewLoginView()

	v.Submit(context.Background(), sess, "nope@example.com")
	vm := v.Render(prefs.LangES)
	if vm.Error != prefs.T(prefs.LangES, prefs.KeyInvalidEmail) {
		t.Errorf("error = %q, want Spanish invalid-email message", vm.Error)
	}
	if vm.Error == prefs.T(prefs.LangEN, prefs.KeyInvalidEmail) {
		t.Error("Spanish render produced the English string")
	}
}
