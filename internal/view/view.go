package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/session"
)

//go:embed templates/*.html
var files embed.FS

// Static holds the stylesheet and scripts served under /static/.
//
//go:embed static
var Static embed.FS

// Pages rendered by the application. Each one fills the "content" block of layout.html.
var Pages = []string{
	"home", "login", "registro", "materias", "recursos", "subir", "perfil",
	"dashboard", "admin_materias", "admin_usuarios", "recuperar", "error",
}

// Page is what every template receives.
type Page struct {
	Title     string
	Locale    string
	Languages []i18n.Language
	User      *entity.SessionUser
	Alerts    []session.Alert
	// Path is the request URI, used by the retry link and the language form.
	Path string
	// Retry, when set, adds a retry link to the alerts.
	Retry bool
	Data  any
}

func (p *Page) IsAdmin() bool {
	return p.User != nil && p.User.Rol == entity.RolAdmin
}

// CanUpload is true for roles that may publish and delete resources.
func (p *Page) CanUpload() bool {
	return p.User != nil && p.User.Rol.In(entity.RolDocente, entity.RolAdmin)
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
	log   *logrus.Logger
	now   func() time.Time
}

func New(log *logrus.Logger) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages)), log: log, now: time.Now}
	stub := r.funcs(nil)
	for _, name := range Pages {
		t, err := template.New("layout.html").Funcs(stub).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parsing template %s", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name with status. The page is executed into a buffer first so a template
// failure never leaves half a document on the wire.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, loc *i18n.Localizer, page *Page) {
	entry := logger.FromContext(req.Context()).WithField("page", name)

	base, ok := r.pages[name]
	if !ok {
		entry.Error("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	t, err := base.Clone()
	if err != nil {
		entry.WithError(err).Error("cloning template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	t.Funcs(r.funcs(loc))

	page.Locale = loc.Locale
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		entry.WithError(err).Error("executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
