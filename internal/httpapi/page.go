package httpapi

import (
	"html/template"
	"log"
	"net/http"

	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/session"
	"applydesk-engine/internal/view"
)

// PageHandler serves the one server-rendered page. The shell mostly talks
// JSON + SSE, but the page is a usable plain-browser fallback and what the
// rendering tests assert against.
type PageHandler struct {
	Session *session.Store
	Service *remote.Service
	Views   *view.State
	Prefs   *prefs.Store
}

type pageData struct {
	Theme         prefs.Theme
	Lang          prefs.Language
	Login         view.LoginVM
	Jobs          *view.JobsVM
	LogoutLabel   string
	ThemeLabel    string
	LanguageLabel string
	StickySlack   int
}

func (h PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cand := h.Session.Candidate()
	jv := h.Views.Jobs()
	if cand != nil && !jv.Activated() {
		jv.Activate(r.Context(), h.Service)
	}

	lang := h.Prefs.Language()
	data := pageData{
		Theme:         h.Prefs.Theme(),
		Lang:          lang,
		Login:         h.Views.Login.Render(lang),
		Jobs:          jv.Render(cand, lang),
		LogoutLabel:   prefs.T(lang, prefs.KeyLogout),
		ThemeLabel:    prefs.T(lang, prefs.KeyTheme),
		LanguageLabel: prefs.T(lang, prefs.KeyLanguage),
		StickySlack:   view.StickySlackPx,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("[page] render failed: %v", err)
	}
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!doctype html>
<html lang="{{.Lang}}" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<title>ApplyDesk</title>
<style>
html[data-theme="dark"] body { background:#14161a; color:#e6e6e6; }
html[data-theme="light"] body { background:#fafafa; color:#1a1a1a; }
header.stuck { position:fixed; top:0; left:0; right:0; }
.error { color:#d05c5c; }
.success { color:#4caf7d; }
</style>
</head>
<body>
<header id="topbar">
  <button id="theme-toggle">{{.ThemeLabel}}</button>
  <button id="lang-toggle">{{.LanguageLabel}}</button>
{{if .Jobs}}
  <span class="avatar">{{.Jobs.Initials}}</span>
  <span class="name">{{.Jobs.CandidateName}}</span>
  <button id="logout">{{.LogoutLabel}}</button>
{{end}}
</header>

{{if .Jobs}}
<main id="jobs">
  <h1>{{.Jobs.Title}}</h1>
  {{if .Jobs.Error}}<div class="error banner">{{.Jobs.Error}}</div>{{end}}
  {{if .Jobs.Loading}}
  <p class="loading">{{.Jobs.LoadingMessage}}</p>
  {{else if .Jobs.Empty}}
  <p class="empty">{{.Jobs.EmptyMessage}}</p>
  {{else}}
  <ul class="job-list">
  {{range .Jobs.Jobs}}
    <li class="job-card" data-job-id="{{.ID}}">
      <h2>{{.Title}}</h2>
      <form class="apply" data-job-id="{{.ID}}">
        <input name="repoUrl" value="{{.Form.RepoURL}}" placeholder="{{.Form.Placeholder}}">
        <button type="submit"{{if .Form.SubmitDisabled}} disabled{{end}}>{{.Form.SubmitLabel}}</button>
      </form>
      {{if .Form.Error}}<p class="error">{{.Form.Error}}</p>{{end}}
      {{if .Form.Success}}<p class="success">{{.Form.SuccessMessage}}</p>{{end}}
    </li>
  {{end}}
  </ul>
  {{end}}
</main>
{{else}}
<main id="login">
  <h1>{{.Login.Title}}</h1>
  <form id="login-form">
    <input name="email" placeholder="{{.Login.Placeholder}}">
    <button type="submit"{{if .Login.ButtonDisabled}} disabled{{end}}>{{.Login.ButtonLabel}}</button>
  </form>
  {{if .Login.Error}}<p class="error">{{.Login.Error}}</p>{{end}}
</main>
{{end}}

<script>
(function () {
  var bar = document.getElementById('topbar');
  var initialOffset = bar.offsetTop;
  var slack = {{.StickySlack}};
  window.addEventListener('scroll', function () {
    bar.classList.toggle('stuck', window.scrollY > initialOffset - slack);
  }, { passive: true });

  function post(path, body) {
    return fetch(path, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(body || {})
    }).then(function () { location.reload(); });
  }

  document.getElementById('theme-toggle').onclick = function () { post('/prefs/theme/toggle'); };
  document.getElementById('lang-toggle').onclick = function () { post('/prefs/language/toggle'); };

  var logout = document.getElementById('logout');
  if (logout) logout.onclick = function () { post('/session/logout'); };

  var login = document.getElementById('login-form');
  if (login) login.onsubmit = function (e) {
    e.preventDefault();
    post('/session/login', { email: login.elements.email.value });
  };

  document.querySelectorAll('form.apply').forEach(function (f) {
    f.onsubmit = function (e) {
      e.preventDefault();
      post('/jobs/' + f.dataset.jobId + '/apply', { repoUrl: f.elements.repoUrl.value });
    };
  });
})();
</script>
</body>
</html>
`
