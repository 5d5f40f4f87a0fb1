package prefs

// Translation keys used by the views.
const (
	KeyLoginTitle       = "login.title"
	KeyEmailPlaceholder = "login.placeholder"
	KeyEnterEmail       = "login.enterEmail"
	KeyInvalidEmail     = "login.invalidEmail"
	KeyAuthFailed       = "login.authFailed"
	KeySignIn           = "login.signIn"
	KeyAuthenticating   = "login.authenticating"

	KeyJobsTitle      = "jobs.title"
	KeyJobsLoading    = "jobs.loading"
	KeyJobsEmpty      = "jobs.empty"
	KeyJobsLoadFailed = "jobs.loadFailed"

	KeyRepoPlaceholder = "form.placeholder"
	KeyInvalidRepoURL  = "form.invalidRepoUrl"
	KeyApplyFailed     = "form.applyFailed"
	KeyApplySuccess    = "form.success"
	KeySubmit          = "form.submit"
	KeySubmitting      = "form.submitting"

	KeyLogout   = "nav.logout"
	KeyTheme    = "settings.theme"
	KeyLanguage = "settings.language"
)

var translations = map[Language]map[string]string{
	LangEN: {
		KeyLoginTitle:       "Sign in to apply",
		KeyEmailPlaceholder: "Your email",
		KeyEnterEmail:       "Please enter your email",
		KeyInvalidEmail:     "This email is not authorized",
		KeyAuthFailed:       "Authentication failed, try again",
		KeySignIn:           "Sign in",
		KeyAuthenticating:   "Authenticating…",

		KeyJobsTitle:      "Open positions",
		KeyJobsLoading:    "Loading jobs…",
		KeyJobsEmpty:      "No open positions right now",
		KeyJobsLoadFailed: "Could not load jobs",

		KeyRepoPlaceholder: "https://github.com/you/repo",
		KeyInvalidRepoURL:  "Please enter a valid GitHub repository URL",
		KeyApplyFailed:     "Application failed, try again",
		KeyApplySuccess:    "Application sent!",
		KeySubmit:          "Apply",
		KeySubmitting:      "Applying…",

		KeyLogout:   "Log out",
		KeyTheme:    "Theme",
		KeyLanguage: "Language",
	},
	LangES: {
		KeyLoginTitle:       "Inicia sesión para postular",
		KeyEmailPlaceholder: "Tu correo",
		KeyEnterEmail:       "Ingresa tu correo",
		KeyInvalidEmail:     "Este correo no está autorizado",
		KeyAuthFailed:       "Falló la autenticación, intenta de nuevo",
		KeySignIn:           "Iniciar sesión",
		KeyAuthenticating:   "Autenticando…",

		KeyJobsTitle:      "Puestos abiertos",
		KeyJobsLoading:    "Cargando puestos…",
		KeyJobsEmpty:      "No hay puestos abiertos por ahora",
		KeyJobsLoadFailed: "No se pudieron cargar los puestos",

		KeyRepoPlaceholder: "https://github.com/tu/repositorio",
		KeyInvalidRepoURL:  "Ingresa una URL válida de un repositorio de GitHub",
		KeyApplyFailed:     "La postulación falló, intenta de nuevo",
		KeyApplySuccess:    "¡Postulación enviada!",
		KeySubmit:          "Postular",
		KeySubmitting:      "Postulando…",

		KeyLogout:   "Cerrar sesión",
		KeyTheme:    "Tema",
		KeyLanguage: "Idioma",
	},
}

// T looks a key up in the table for lang, falling back to English and then
// to the key itself so a missing entry never renders as an empty string.
func T(lang Language, key string) string {
	if tbl, ok := translations[lang]; ok {
		if s, ok := tbl[key]; ok {
			return s
		}
	}
	if s, ok := translations[LangEN][key]; ok {
		return s
	}
	return key
}
