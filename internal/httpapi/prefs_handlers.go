package httpapi

import (
	"net/http"

	"applydesk-engine/internal/prefs"
)

type PrefsHandler struct {
	Prefs *prefs.Store
}

type prefsVM struct {
	Theme    prefs.Theme    `json:"theme"`
	Language prefs.Language `json:"language"`
}

func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, prefsVM{Theme: h.Prefs.Theme(), Language: h.Prefs.Language()})
}

func (h PrefsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.Prefs.ToggleTheme(r.Context())
	writeJSON(w, prefsVM{Theme: h.Prefs.Theme(), Language: h.Prefs.Language()})
}

func (h PrefsHandler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	h.Prefs.ToggleLanguage(r.Context())
	writeJSON(w, prefsVM{Theme: h.Prefs.Theme(), Language: h.Prefs.Language()})
}
