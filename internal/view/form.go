package view

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
)

// Owner segment allows letters, digits, underscore, hyphen; the repository
// segment additionally allows dots; trailing slash optional.
var repoURLPattern = regexp.MustCompile(`^https://github\.com/[A-Za-z0-9_-]+/[A-Za-z0-9_.-]+/?$`)

// ValidRepoURL reports whether the trimmed input is an acceptable GitHub
// repository URL. Empty input is invalid.
func ValidRepoURL(raw string) bool {
	return repoURLPattern.MatchString(strings.TrimSpace(raw))
}

// Applier is the slice of the remote service a form needs.
type Applier interface {
	Apply(ctx context.Context, req remote.ApplyRequest) (remote.ApplyResult, error)
}

// ApplicationForm is the per-job-card submission state. Cards are fully
// independent; nothing here is shared between jobs.
type ApplicationForm struct {
	mu         sync.Mutex
	jobID      string
	repoURL    string
	submitting bool
	errKey     string // i18n key for local validation / generic fallbacks
	errMsg     string // raw server-provided message
	success    bool
}

func NewApplicationForm(jobID string) *ApplicationForm {
	return &ApplicationForm{jobID: jobID}
}

// SetRepoURL records an edit to the URL field. Editing clears any error or
// success feedback but leaves the text as typed.
func (f *ApplicationForm) SetRepoURL(s string) {
	f.mu.Lock()
	f.repoURL = s
	f.errKey, f.errMsg = "", ""
	f.success = false
	f.mu.Unlock()
}

// Submit validates and sends the application. Validation failures never
// reach the service. The submitting flag doubles as an in-flight guard: a
// second Submit while one is pending is a no-op.
func (f *ApplicationForm) Submit(ctx context.Context, svc Applier, cand remote.Candidate) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return
	}
	f.errKey, f.errMsg = "", ""
	f.success = false

	trimmed := strings.TrimSpace(f.repoURL)
	if !ValidRepoURL(trimmed) {
		f.errKey = prefs.KeyInvalidRepoURL
		f.mu.Unlock()
		return
	}
	f.submitting = true
	f.mu.Unlock()

	res, err := svc.Apply(ctx, remote.ApplyRequest{
		UUID:        uuid.NewString(),
		JobID:       f.jobID,
		CandidateID: cand.CandidateID,
		RepoURL:     trimmed,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		if msg := err.Error(); msg != "" {
			f.errMsg = msg
		} else {
			f.errKey = prefs.KeyApplyFailed
		}
		return
	}
	if !res.OK {
		f.errKey = prefs.KeyApplyFailed
		return
	}
	f.success = true
	f.repoURL = ""
}

type FormVM struct {
	JobID          string `json:"jobId"`
	RepoURL        string `json:"repoUrl"`
	Placeholder    string `json:"placeholder"`
	Submitting     bool   `json:"submitting"`
	Success        bool   `json:"success"`
	SuccessMessage string `json:"successMessage,omitempty"`
	Error          string `json:"error,omitempty"`
	SubmitLabel    string `json:"submitLabel"`
	SubmitDisabled bool   `json:"submitDisabled"`
}

func (f *ApplicationForm) Render(lang prefs.Language) FormVM {
	f.mu.Lock()
	defer f.mu.Unlock()

	vm := FormVM{
		JobID:          f.jobID,
		RepoURL:        f.repoURL,
		Placeholder:    prefs.T(lang, prefs.KeyRepoPlaceholder),
		Submitting:     f.submitting,
		Success:        f.success,
		SubmitDisabled: f.submitting || strings.TrimSpace(f.repoURL) == "",
	}
	if f.success {
		vm.SuccessMessage = prefs.T(lang, prefs.KeyApplySuccess)
	}
	switch {
	case f.errKey != "":
		vm.Error = prefs.T(lang, f.errKey)
	case f.errMsg != "":
		vm.Error = f.errMsg
	}
	if f.submitting {
		vm.SubmitLabel = prefs.T(lang, prefs.KeySubmitting)
	} else {
		vm.SubmitLabel = prefs.T(lang, prefs.KeySubmit)
	}
	return vm
}
