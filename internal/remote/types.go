package remote

// Job is an open position as the careers API returns it. Jobs are read-only
// on this side; every jobs-view activation fetches a fresh list.
type Job struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Candidate is the authenticated applicant. All identifiers are
// server-issued and opaque; the record is only meaningful together with the
// email it was fetched for.
type Candidate struct {
	UUID          string `json:"uuid"`
	CandidateID   string `json:"candidateId"`
	ApplicationID string `json:"applicationId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
}

// FullName joins first and last name, tolerating either being empty.
func (c Candidate) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ApplyRequest is one candidate-to-job submission. UUID is generated fresh
// per attempt; nothing here is persisted locally.
type ApplyRequest struct {
	UUID        string `json:"uuid"`
	JobID       string `json:"jobId"`
	CandidateID string `json:"candidateId"`
	RepoURL     string `json:"repoUrl"`
}

type ApplyResult struct {
	OK bool `json:"ok"`
}
