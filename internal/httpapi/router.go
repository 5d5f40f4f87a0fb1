package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Rendered page
	ph := PageHandler{Session: d.Session, Service: d.Service, Views: d.Views, Prefs: d.Prefs}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Root,
	}))

	// Session
	sh := SessionHandler{Session: d.Session, Views: d.Views, Prefs: d.Prefs}
	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))
	mux.HandleFunc("/session/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Login,
	}))
	mux.HandleFunc("/session/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Logout,
	}))

	// Jobs + application cards
	jh := JobsHandler{Session: d.Session, Service: d.Service, Views: d.Views, Prefs: d.Prefs, Hub: d.Hub}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Card, // expects /jobs/{id}/draft or /jobs/{id}/apply
	}))

	// Display preferences
	prh := PrefsHandler{Prefs: d.Prefs}
	mux.HandleFunc("/prefs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: prh.Get,
	}))
	mux.HandleFunc("/prefs/theme/toggle", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: prh.ToggleTheme,
	}))
	mux.HandleFunc("/prefs/language/toggle", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: prh.ToggleLanguage,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: Health,
	}))

	return mux
}
