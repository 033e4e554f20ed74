package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/session"
)

// LoginRequired is where unauthenticated requests to protected pages are sent.
const LoginRequired = "/login?mensaje=error.sesion.requerida&tipo=warning"

// Guard keeps pages away from visitors without a session or with the wrong role.
type Guard struct {
	log *logrus.Logger
}

func NewGuard(log *logrus.Logger) *Guard {
	return &Guard{log: log}
}

// RequireAuthenticated redirects to login and returns false when the request has no session.
func (g *Guard) RequireAuthenticated(w http.ResponseWriter, r *http.Request) bool {
	sess := session.FromContext(r.Context())
	if sess == nil || !sess.IsAuthenticated() {
		logger.FromContext(r.Context()).WithField("path", r.URL.Path).Debug("login required")
		http.Redirect(w, r, LoginRequired, http.StatusSeeOther)
		return false
	}
	return true
}

// RequireRole is RequireAuthenticated plus a role check. A role outside allowed is sent home.
func (g *Guard) RequireRole(w http.ResponseWriter, r *http.Request, allowed ...entity.Rol) bool {
	if !g.RequireAuthenticated(w, r) {
		return false
	}
	user := session.FromContext(r.Context()).CurrentUser()
	if !user.Rol.In(allowed...) {
		logger.FromContext(r.Context()).WithFields(logrus.Fields{
			"path":    r.URL.Path,
			"rol":     user.Rol,
			"allowed": allowed,
		}).Info("role not allowed")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return false
	}
	return true
}

// Authenticated wraps next with RequireAuthenticated.
func (g *Guard) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.RequireAuthenticated(w, r) {
			next.ServeHTTP(w, r)
		}
	})
}

// Roles returns a middleware applying RequireRole with allowed.
func (g *Guard) Roles(allowed ...entity.Rol) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.RequireRole(w, r, allowed...) {
				next.ServeHTTP(w, r)
			}
		})
	}
}

// HomeFor returns the landing page of user.
func HomeFor(user *entity.SessionUser) string {
	if user == nil {
		return "/login"
	}
	switch user.Rol {
	case entity.RolAdmin:
		return "/admin/dashboard"
	case entity.RolDocente, entity.RolEstudiante:
		return "/materias"
	default:
		return "/"
	}
}

// RedirectByRole sends the browser to the landing page of user.
func RedirectByRole(w http.ResponseWriter, r *http.Request, user *entity.SessionUser) {
	http.Redirect(w, r, HomeFor(user), http.StatusSeeOther)
}
