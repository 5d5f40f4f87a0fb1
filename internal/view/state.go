package view

import "sync"

// State is the top level of the UI: a login view that lives for the whole
// process and a jobs view that is replaced on login/logout so each session
// gets a fresh activation.
type State struct {
	Login *LoginView

	mu   sync.Mutex
	jobs *JobsView
}

func NewState() *State {
	return &State{
		Login: NewLoginView(),
		jobs:  NewJobsView(),
	}
}

func (s *State) Jobs() *JobsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs
}

// ResetJobs swaps in a fresh jobs view, dropping all card state.
func (s *State) ResetJobs() {
	s.mu.Lock()
	s.jobs = NewJobsView()
	s.mu.Unlock()
}
