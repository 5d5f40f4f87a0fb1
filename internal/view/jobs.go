package view

import (
	"context"
	"sync"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
)

// Lister is the slice of the remote service the jobs view needs.
type Lister interface {
	ListJobs(ctx context.Context) ([]remote.Job, error)
}

// JobsView fetches the job list once per activation and owns one
// ApplicationForm per job. A fresh view is created on every login, so a new
// session always re-fetches.
type JobsView struct {
	mu        sync.Mutex
	activated bool
	loading   bool
	errKey    string
	errMsg    string
	jobs      []remote.Job
	forms     map[string]*ApplicationForm
}

func NewJobsView() *JobsView {
	return &JobsView{forms: make(map[string]*ApplicationForm)}
}

// Activate triggers the one-shot job fetch. Later calls are no-ops, so a
// re-rendered view never re-issues the request. Loading is cleared on both
// the success and the failure path.
func (v *JobsView) Activate(ctx context.Context, svc Lister) {
	v.mu.Lock()
	if v.activated {
		v.mu.Unlock()
		return
	}
	v.activated = true
	v.loading = true
	v.mu.Unlock()

	jobs, err := svc.ListJobs(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false

	if err != nil {
		if msg := err.Error(); msg != "" {
			v.errMsg = msg
		} else {
			v.errKey = prefs.KeyJobsLoadFailed
		}
		return
	}
	v.jobs = jobs
	for _, j := range jobs {
		if _, ok := v.forms[j.ID]; !ok {
			v.forms[j.ID] = NewApplicationForm(j.ID)
		}
	}
}

func (v *JobsView) Activated() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activated
}

// Form returns the application form for a job, or nil for an unknown id.
func (v *JobsView) Form(jobID string) *ApplicationForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.forms[jobID]
}

type JobCardVM struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Form  FormVM `json:"form"`
}

type JobsVM struct {
	Title          string      `json:"title"`
	CandidateName  string      `json:"candidateName"`
	Initials       string      `json:"initials"`
	Loading        bool        `json:"loading"`
	LoadingMessage string      `json:"loadingMessage,omitempty"`
	Empty          bool        `json:"empty"`
	EmptyMessage   string      `json:"emptyMessage,omitempty"`
	Error          string      `json:"error,omitempty"`
	Jobs           []JobCardVM `json:"jobs"`
}

// Render produces the view model, or nil when there is no authenticated
// candidate: the view shows nothing without one. Content precedence is
// loading over empty over the list; an error banner rides along with
// whichever content state is current.
func (v *JobsView) Render(cand *remote.Candidate, lang prefs.Language) *JobsVM {
	if cand == nil {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	vm := &JobsVM{
		Title:         prefs.T(lang, prefs.KeyJobsTitle),
		CandidateName: cand.FullName(),
		Initials:      Initials(cand.FullName()),
	}
	switch {
	case v.errKey != "":
		vm.Error = prefs.T(lang, v.errKey)
	case v.errMsg != "":
		vm.Error = v.errMsg
	}

	switch {
	case v.loading:
		vm.Loading = true
		vm.LoadingMessage = prefs.T(lang, prefs.KeyJobsLoading)
	case len(v.jobs) == 0:
		vm.Empty = true
		vm.EmptyMessage = prefs.T(lang, prefs.KeyJobsEmpty)
	default:
		vm.Jobs = make([]JobCardVM, 0, len(v.jobs))
		for _, j := range v.jobs {
			card := JobCardVM{ID: j.ID, Title: j.Title}
			if f := v.forms[j.ID]; f != nil {
				card.Form = f.Render(lang)
			}
			vm.Jobs = append(vm.Jobs, card)
		}
	}
	return vm
}
