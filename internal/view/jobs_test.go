package view

import (
	"context"
	"errors"
	"testing"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
)

type fakeLister struct {
	calls int
	jobs  []remote.Job
	err   error
}

func (f *fakeLister) ListJobs(_ context.Context) ([]remote.Job, error) {
	f.calls++
	return f.jobs, f.err
}

func TestActivateFetchesOnce(t *testing.T) {
	svc := &fakeLister{jobs: []remote.Job{{ID: "j1", Title: "Engineer"}}}
	v := NewJobsView()

	v.Activate(context.Background(), svc)
	v.Activate(context.Background(), svc)
	v.Activate(context.Background(), svc)

	if svc.calls != 1 {
		t.Fatalf("list fetched %d times, want 1", svc.calls)
	}
	if !v.Activated() {
		t.Error("view not marked activated")
	}
}

func TestActivateFailureClearsLoadingAndKeepsError(t *testing.T) {
	svc := &fakeLister{err: errors.New("upstream down")}
	v := NewJobsView()
	v.Activate(context.Background(), svc)

	vm := v.Render(&cand, prefs.LangEN)
	if vm == nil {
		t.Fatal("nil view model for authenticated candidate")
	}
	if vm.Loading {
		t.Error("loading flag survived a failed fetch")
	}
	if vm.Error != "upstream down" {
		t.Errorf("error = %q, want server message", vm.Error)
	}
	// failure leaves no jobs, so the empty state carries the banner
	if !vm.Empty {
		t.Error("expected empty content state alongside the error")
	}
}

func TestRenderNilWithoutCandidate(t *testing.T) {
	v := NewJobsView()
	if vm := v.Render(nil, prefs.LangEN); vm != nil {
		t.Fatalf("Render(nil) = %+v, want nil", vm)
	}
}

func TestRenderContentPrecedence(t *testing.T) {
	// Loading wins over everything.
	v := NewJobsView()
	v.loading = true
	v.jobs = []remote.Job{{ID: "j1", Title: "Engineer"}}
	vm := v.Render(&cand, prefs.LangEN)
	if !vm.Loading || vm.Empty || len(vm.Jobs) != 0 {
		t.Errorf("loading should mask other states: %+v", vm)
	}
	if vm.LoadingMessage != prefs.T(prefs.LangEN, prefs.KeyJobsLoading) {
		t.Errorf("loading message = %q", vm.LoadingMessage)
	}

	// Empty beats the list when there are no jobs.
	v = NewJobsView()
	vm = v.Render(&cand, prefs.LangEN)
	if vm.Loading || !vm.Empty || len(vm.Jobs) != 0 {
		t.Errorf("want empty state: %+v", vm)
	}

	// The list renders with one card per job, each carrying a form.
	svc := &fakeLister{jobs: []remote.Job{{ID: "j1", Title: "Engineer"}, {ID: "j2", Title: "Designer"}}}
	v = NewJobsView()
	v.Activate(context.Background(), svc)
	vm = v.Render(&cand, prefs.LangEN)
	if vm.Loading || vm.Empty {
		t.Errorf("want list state: %+v", vm)
	}
	if len(vm.Jobs) != 2 {
		t.Fatalf("got %d cards, want 2", len(vm.Jobs))
	}
	if vm.Jobs[0].ID != "j1" || vm.Jobs[0].Title != "Engineer" {
		t.Errorf("first card = %+v", vm.Jobs[0])
	}
	if vm.Jobs[0].Form.JobID != "j1" {
		t.Errorf("card form not bound to its job: %+v", vm.Jobs[0].Form)
	}
	if vm.CandidateName != "Jane Doe" || vm.Initials != "JD" {
		t.Errorf("header = %q / %q", vm.CandidateName, vm.Initials)
	}
}

func TestFormLookup(t *testing.T) {
	svc := &fakeLister{jobs: []remote.Job{{ID: "j1", Title: "Engineer"}}}
	v := NewJobsView()
	v.Activate(context.Background(), svc)

	if f := v.Form("j1"); f == nil {
		t.Error("known job has no form")
	}
	if f := v.Form("nope"); f != nil {
		t.Error("unknown job returned a form")
	}
}

func TestResetJobsDropsCardState(t *testing.T) {
	svc := &fakeLister{jobs: []remote.Job{{ID: "j1", Title: "Engineer"}}}
	st := NewState()
	st.Jobs().Activate(context.Background(), svc)
	st.Jobs().Form("j1").SetRepoURL("https://github.com/jane/repo")

	st.ResetJobs()

	fresh := st.Jobs()
	if fresh.Activated() {
		t.Error("fresh view already activated")
	}
	if fresh.Form("j1") != nil {
		t.Error("fresh view kept old card state")
	}
	fresh.Activate(context.Background(), svc)
	if svc.calls != 2 {
		t.Errorf("fresh view did not re-fetch: %d calls", svc.calls)
	}
}
