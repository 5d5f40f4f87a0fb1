package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"applydesk-engine/internal/events"
	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/session"
	"applydesk-engine/internal/view"
)

type JobsHandler struct {
	Session *session.Store
	Service *remote.Service
	Views   *view.State
	Prefs   *prefs.Store
	Hub     *events.Hub
}

// List renders the jobs view, activating it (one job fetch) the first time
// an authenticated candidate asks for it. Anonymous callers get null: the
// view renders nothing without a candidate.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	cand := h.Session.Candidate()
	jv := h.Views.Jobs()

	if cand != nil && !jv.Activated() {
		jv.Activate(r.Context(), h.Service)
		reqID := RequestIDFrom(r.Context())
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobsLoaded, 1, nil))
	}

	writeJSON(w, jv.Render(cand, h.Prefs.Language()))
}

type cardReq struct {
	RepoURL *string `json:"repoUrl"`
}

// Card dispatches /jobs/{id}/draft and /jobs/{id}/apply.
func (h JobsHandler) Card(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/jobs/")
	jobID, action, ok := strings.Cut(rest, "/")
	if !ok || jobID == "" {
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown jobs path")
		return
	}

	form := h.Views.Jobs().Form(jobID)
	if form == nil {
		WriteError(w, r, http.StatusNotFound, "unknown_job", "no such job card")
		return
	}

	var req cardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	switch action {
	case "draft":
		if req.RepoURL == nil {
			WriteError(w, r, http.StatusBadRequest, "missing_field", "repoUrl is required")
			return
		}
		form.SetRepoURL(*req.RepoURL)

	case "apply":
		cand := h.Session.Candidate()
		if cand == nil {
			WriteError(w, r, http.StatusUnauthorized, "not_authenticated", "log in before applying")
			return
		}
		if req.RepoURL != nil {
			form.SetRepoURL(*req.RepoURL)
		}
		form.Submit(r.Context(), h.Service, *cand)

		vm := form.Render(h.Prefs.Language())
		if vm.Success {
			reqID := RequestIDFrom(r.Context())
			h.Hub.Publish(events.MakeEvent(reqID, events.TypeApplicationSubmitted, 1,
				map[string]any{"jobId": jobID}))
		}
		writeJSON(w, vm)
		return

	default:
		WriteError(w, r, http.StatusNotFound, "not_found", "unknown jobs action")
		return
	}

	writeJSON(w, form.Render(h.Prefs.Language()))
}
