package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus the validation result.
// Missing base URL or authorized email is an error; callers treat errors as
// fatal at startup.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(out.API.BaseURL), "/")
	out.Auth.AuthorizedEmail = strings.TrimSpace(out.Auth.AuthorizedEmail)
	out.UI.DefaultTheme = strings.ToLower(strings.TrimSpace(out.UI.DefaultTheme))
	out.UI.DefaultLanguage = strings.ToLower(strings.TrimSpace(out.UI.DefaultLanguage))

	// ---- Validation rules ----

	if out.API.BaseURL == "" {
		res.addErr("api.base_url is required")
	} else {
		u, err := url.Parse(out.API.BaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			res.addErr("api.base_url must be an http(s) URL, got %q", out.API.BaseURL)
		}
	}

	if out.API.TimeoutMS <= 0 {
		res.addWarn("api.timeout_ms unset or invalid (%d); using default %d", out.API.TimeoutMS, DefaultTimeoutMS)
		out.API.TimeoutMS = DefaultTimeoutMS
	}

	if out.API.RequestsPerSecond <= 0 {
		out.API.RequestsPerSecond = 4
	}

	if out.Auth.AuthorizedEmail == "" {
		res.addErr("auth.authorized_email is required")
	} else if !strings.Contains(out.Auth.AuthorizedEmail, "@") {
		res.addWarn("auth.authorized_email %q does not look like an email address", out.Auth.AuthorizedEmail)
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		out.App.Port = 38503
	}

	switch out.UI.DefaultTheme {
	case "dark", "light":
	case "":
		out.UI.DefaultTheme = "dark"
	default:
		res.addWarn("ui.default_theme %q is not recognized; using dark", out.UI.DefaultTheme)
		out.UI.DefaultTheme = "dark"
	}

	switch out.UI.DefaultLanguage {
	case "en", "es":
	case "":
		out.UI.DefaultLanguage = "en"
	default:
		res.addWarn("ui.default_language %q is not recognized; using en", out.UI.DefaultLanguage)
		out.UI.DefaultLanguage = "en"
	}

	return out, res
}
