package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eduaventuras/internal/api"
	"eduaventuras/internal/cache"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/middleware"
	"eduaventuras/internal/session"
	"eduaventuras/internal/validation"
	"eduaventuras/internal/view"
)

// backend is a fake REST API that counts the calls it receives.
type backend struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   map[string]int
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{routes: map[string]http.HandlerFunc{}, hits: map[string]int{}}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[key]++
		h, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"mensaje": "no route " + key})
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *backend) handle(key string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = h
}

func (b *backend) reply(key string, status int, body any) {
	b.handle(key, func(w http.ResponseWriter, r *http.Request) { writeJSON(w, status, body) })
}

func (b *backend) calls(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// browser drives the router in-process and keeps cookies between requests.
type browser struct {
	t       *testing.T
	router  http.Handler
	api     *backend
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	log := logger.Discard()
	be := newBackend(t)

	renderer, err := view.New(log)
	require.NoError(t, err)
	validator, err := validation.New()
	require.NoError(t, err)
	cookies, err := session.NewCookieBackend("test-secret", 24*time.Hour, false)
	require.NoError(t, err)

	router, err := NewRouter(&Deps{
		API:       api.New(be.URL, 5*time.Second, log),
		View:      renderer,
		I18n:      i18n.NewBundle(log),
		Validator: validator,
		Guard:     middleware.NewGuard(log),
		Sessions:  session.NewStore(cookies, 24*time.Hour, log),
		Materias:  cache.NewMemory[entity.Materia](time.Hour),
		Usuarios:  cache.NewMemory[entity.Usuario](time.Hour),
		Languages: i18n.Languages,
		Log:       log,
	})
	require.NoError(t, err)
	return &browser{t: t, router: router, api: be, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postMultipart(path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	return b.do(req)
}

// login signs in as a user with rol through the real login form.
func (b *browser) login(id int64, rol entity.Rol) {
	b.t.Helper()
	b.api.reply("POST /usuarios/login", http.StatusOK, map[string]any{
		"token": fmt.Sprintf("t%d", id),
		"usuario": map[string]any{
			"id": id, "nombre": "Ana", "apellido": "Pérez", "email": "ana@example.com", "rol": rol,
		},
	})
	rec := b.post("/login", url.Values{"email": {"ana@example.com"}, "password": {"secreto"}})
	require.Equal(b.t, http.StatusSeeOther, rec.Code, rec.Body.String())
}
