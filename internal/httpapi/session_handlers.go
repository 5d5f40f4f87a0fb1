package httpapi

import (
	"encoding/json"
	"net/http"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/session"
	"applydesk-engine/internal/view"
)

type SessionHandler struct {
	Session *session.Store
	Views   *view.State
	Prefs   *prefs.Store
}

type sessionVM struct {
	Loading       bool              `json:"loading"`
	Authenticated bool              `json:"authenticated"`
	Candidate     *remote.Candidate `json:"candidate,omitempty"`
	Initials      string            `json:"initials,omitempty"`
	Login         view.LoginVM      `json:"login"`
}

func (h SessionHandler) vm() sessionVM {
	cand := h.Session.Candidate()
	vm := sessionVM{
		Loading:       h.Session.Loading(),
		Authenticated: cand != nil,
		Candidate:     cand,
		Login:         h.Views.Login.Render(h.Prefs.Language()),
	}
	if cand != nil {
		vm.Initials = view.Initials(cand.FullName())
	}
	return vm
}

func (h SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.vm())
}

type loginReq struct {
	Email string `json:"email"`
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	if h.Views.Login.Submit(r.Context(), h.Session, req.Email) {
		// Fresh view per session so the job list is re-fetched.
		h.Views.ResetJobs()
	}
	writeJSON(w, h.vm())
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	h.Views.ResetJobs()
	writeJSON(w, h.vm())
}
