package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/session"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

// serve runs h behind the session middleware, logging in as user first when not nil.
func serve(t *testing.T, h http.Handler, user *entity.SessionUser, path string) *httptest.ResponseRecorder {
	t.Helper()
	backend, err := session.NewCookieBackend("guard-test", time.Hour, false)
	require.NoError(t, err)
	store := session.NewStore(backend, time.Hour, logger.Discard())

	var cookies []*http.Cookie
	if user != nil {
		login := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, session.FromContext(r.Context()).SetSession("t1", *user))
		}))
		rec := httptest.NewRecorder()
		login.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		cookies = rec.Result().Cookies()
	}

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	store.Middleware(h).ServeHTTP(rec, req)
	return rec
}

func user(rol entity.Rol) *entity.SessionUser {
	return &entity.SessionUser{ID: 1, Nombre: "Ana", Email: "ana@x.com", Rol: rol}
}

func TestAuthenticatedRedirectsAnonymous(t *testing.T) {
	g := NewGuard(logger.Discard())

	rec := serve(t, g.Authenticated(ok), nil, "/materias")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginRequired, rec.Header().Get("Location"))
}

func TestAuthenticatedLetsSessionThrough(t *testing.T) {
	g := NewGuard(logger.Discard())

	rec := serve(t, g.Authenticated(ok), user(entity.RolEstudiante), "/materias")

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRolesSendsWrongRoleHome(t *testing.T) {
	g := NewGuard(logger.Discard())
	h := g.Roles(entity.RolAdmin)(ok)

	rec := serve(t, h, user(entity.RolDocente), "/admin/dashboard")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = serve(t, h, nil, "/admin/dashboard")
	assert.Equal(t, LoginRequired, rec.Header().Get("Location"))

	rec = serve(t, h, user(entity.RolAdmin), "/admin/dashboard")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", HomeFor(user(entity.RolAdmin)))
	assert.Equal(t, "/materias", HomeFor(user(entity.RolDocente)))
	assert.Equal(t, "/materias", HomeFor(user(entity.RolEstudiante)))
	assert.Equal(t, "/", HomeFor(user("INVITADO")))
	assert.Equal(t, "/login", HomeFor(nil))
}

func TestRequestID(t *testing.T) {
	h := RequestID(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, logger.FromContext(r.Context()).Data["request_id"])
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, given, rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	h := AccessLog(Recover(fallback)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
