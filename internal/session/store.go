package session

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/entity"
)

// CookieName names the browser session cookie.
const CookieName = "eduaventuras-session"

// Keys kept in the session. They match the keys the browser client used to keep in local storage.
const (
	keyToken          = "token"
	keyUsuario        = "usuario"
	keyRecordarme     = "recordarme"
	keyEmailRecordado = "email-recordado"
	keyIdioma         = "idioma-eduaventuras"
)

// ExpiredRedirect is where a request lands when the backend reports the token as no longer valid.
const ExpiredRedirect = "/login?mensaje=error.sesion.expirada&tipo=warning"

var ErrInvalidSession = errors.New("session: token and user must be set together")

// Alert is a one-shot banner carried across a redirect.
type Alert struct {
	Tipo    string // success, warning, danger, info
	Mensaje string
	Params  map[string]string
}

func init() {
	gob.Register(Alert{})
	gob.Register(map[string]string{})
}

// Store hands out per-request Sessions over any gorilla sessions backend.
type Store struct {
	backend sessions.Store
	maxAge  int
	log     *logrus.Logger
}

// NewStore wraps backend. maxAge is the cookie lifetime used when the user asks to be remembered;
// otherwise the cookie lives for the browser session.
func NewStore(backend sessions.Store, maxAge time.Duration, log *logrus.Logger) *Store {
	return &Store{
		backend: backend,
		maxAge:  int(maxAge.Seconds()),
		log:     log,
	}
}

// Load returns the session of r. Within one request every call returns the same underlying
// session, so middleware and handlers see each other's writes.
func (s *Store) Load(w http.ResponseWriter, r *http.Request) *Session {
	raw, err := s.backend.Get(r, CookieName)
	if err != nil {
		// tampered cookie or rotated keys: gorilla still hands back a fresh session
		s.log.WithError(err).Debug("discarding unreadable session cookie")
	}
	if raw == nil {
		raw = sessions.NewSession(s.backend, CookieName)
		raw.IsNew = true
	}
	return &Session{store: s, raw: raw, w: w, r: r}
}

type ctxKey struct{}

// Middleware loads the session once per request and attaches it to the request context, so
// every layer shares one Session and its expiry state.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Load(w, r)
		r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess))
		sess.r = r
		next.ServeHTTP(w, r)
	})
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}

// Session is the (token, user) pair of one browser plus its preferences.
type Session struct {
	store   *Store
	raw     *sessions.Session
	w       http.ResponseWriter
	r       *http.Request

	mu      sync.Mutex
	expired bool
}

// Token returns the bearer token or "" when absent.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, _ := s.raw.Values[keyToken].(string)
	return token
}

// CurrentUser returns the stored user, or nil when it is missing or malformed.
func (s *Session) CurrentUser() *entity.SessionUser {
	data, ok := s.raw.Values[keyUsuario].(string)
	if !ok || data == "" {
		return nil
	}
	var u entity.SessionUser
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		s.store.log.WithError(err).Warn("stored usuario is not valid JSON")
		return nil
	}
	return &u
}

// IsAuthenticated is true iff both token and user are present.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != "" && s.CurrentUser() != nil
}

// SetSession stores token and user together and saves.
func (s *Session) SetSession(token string, user entity.SessionUser) error {
	if token == "" || user.ID == 0 || user.Rol == "" {
		return ErrInvalidSession
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.raw.Values[keyToken] = token
	s.raw.Values[keyUsuario] = string(data)
	s.mu.Lock()
	s.expired = false
	s.mu.Unlock()
	return s.Save()
}

// ClearSession removes token and user together and saves.
func (s *Session) ClearSession() error {
	delete(s.raw.Values, keyToken)
	delete(s.raw.Values, keyUsuario)
	return s.Save()
}

// Expire ends the session after the backend rejected its token and redirects the browser to the
// login page. Only the first call in a request has any effect, even across goroutines.
func (s *Session) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expired {
		return
	}
	s.expired = true
	if err := s.ClearSession(); err != nil {
		s.store.log.WithError(err).Error("clearing expired session")
	}
	http.Redirect(s.w, s.r, ExpiredRedirect, http.StatusSeeOther)
}

// Expired reports whether Expire already answered this request.
func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// Remember returns the remembered login email, if the user ticked "Recordarme".
func (s *Session) Remember() (string, bool) {
	on, _ := s.raw.Values[keyRecordarme].(string)
	if on != "true" {
		return "", false
	}
	email, _ := s.raw.Values[keyEmailRecordado].(string)
	return email, true
}

// SetRemember keeps email for the login form and makes the cookie outlive the browser session.
func (s *Session) SetRemember(email string) error {
	s.raw.Values[keyRecordarme] = "true"
	s.raw.Values[keyEmailRecordado] = email
	return s.Save()
}

// Forget drops the remember-me choice.
func (s *Session) Forget() error {
	delete(s.raw.Values, keyRecordarme)
	delete(s.raw.Values, keyEmailRecordado)
	return s.Save()
}

// Locale returns the persisted locale code, or "".
func (s *Session) Locale() string {
	code, _ := s.raw.Values[keyIdioma].(string)
	return code
}

func (s *Session) SetLocale(code string) error {
	s.raw.Values[keyIdioma] = code
	return s.Save()
}

// AddFlash queues an alert for the next rendered page.
func (s *Session) AddFlash(a Alert) error {
	s.raw.AddFlash(a)
	return s.Save()
}

// Flashes pops the queued alerts.
func (s *Session) Flashes() []Alert {
	raw := s.raw.Flashes()
	if len(raw) == 0 {
		return nil
	}
	alerts := make([]Alert, 0, len(raw))
	for _, f := range raw {
		if a, ok := f.(Alert); ok {
			alerts = append(alerts, a)
		}
	}
	if err := s.Save(); err != nil {
		s.store.log.WithError(err).Error("saving session after reading flashes")
	}
	return alerts
}

// Save writes the session cookie. The cookie lifetime follows the remember-me choice.
func (s *Session) Save() error {
	if s.raw.Options == nil {
		s.raw.Options = &sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
	}
	if _, remembered := s.Remember(); remembered {
		s.raw.Options.MaxAge = s.store.maxAge
	} else {
		s.raw.Options.MaxAge = 0
	}
	return s.raw.Save(s.r, s.w)
}
