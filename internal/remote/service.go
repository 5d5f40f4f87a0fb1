package remote

import (
	"context"
	"net/http"
	"net/url"

	"applydesk-engine/internal/store"
)

// Doer is the one-call HTTP contract the service runs on.
type Doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Service is a thin passthrough to the careers API: one HTTP call per
// operation, no batching, no retries. The only caching is the candidate
// profile written after a successful email lookup.
type Service struct {
	rc Doer
	db *store.DB
}

func NewService(rc Doer, db *store.DB) *Service {
	return &Service{rc: rc, db: db}
}

func (s *Service) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := s.rc.Do(ctx, http.MethodGet, "/api/jobs/get-list", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CandidateByEmail looks the candidate up by email and caches the profile
// on success. A non-2xx answer means "not authorized" and is propagated
// untouched for the caller to map.
func (s *Service) CandidateByEmail(ctx context.Context, email string) (Candidate, error) {
	var c Candidate
	path := "/api/candidate/get-by-email?email=" + url.QueryEscape(email)
	if err := s.rc.Do(ctx, http.MethodGet, path, nil, &c); err != nil {
		return Candidate{}, err
	}
	s.CacheCandidate(c)
	return c, nil
}

func (s *Service) Apply(ctx context.Context, req ApplyRequest) (ApplyResult, error) {
	var res ApplyResult
	if err := s.rc.Do(ctx, http.MethodPost, "/api/candidate/apply-to-job", req, &res); err != nil {
		return ApplyResult{}, err
	}
	return res, nil
}
