package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	backend, err := NewCookieBackend("test-secret", 30*24*time.Hour, false)
	require.NoError(t, err)
	return NewStore(backend, 30*24*time.Hour, logger.Discard())
}

// roundTrip runs fn against a request carrying cookies and returns the cookies set in response.
func roundTrip(t *testing.T, store *Store, cookies []*http.Cookie, fn func(*Session)) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	fn(store.Load(rec, req))
	return lastCookies(rec.Result().Cookies())
}

// lastCookies keeps the last Set-Cookie per name, as a browser would.
func lastCookies(cookies []*http.Cookie) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, c := range cookies {
		if _, ok := byName[c.Name]; !ok {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

var ana = entity.SessionUser{ID: 1, Nombre: "Ana", Apellido: "Pérez", Email: "a@b.com", Rol: entity.RolEstudiante}

func TestSetSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.SetSession("t1", ana))
		assert.True(t, s.IsAuthenticated())
	})
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)

	roundTrip(t, store, cookies, func(s *Session) {
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, "t1", s.Token())
		assert.Equal(t, &ana, s.CurrentUser())
	})
}

func TestClearSession(t *testing.T) {
	store := newTestStore(t)

	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.SetSession("t1", ana))
	})
	cookies = roundTrip(t, store, cookies, func(s *Session) {
		require.NoError(t, s.ClearSession())
	})
	roundTrip(t, store, cookies, func(s *Session) {
		assert.Empty(t, s.Token())
		assert.Nil(t, s.CurrentUser())
		assert.False(t, s.IsAuthenticated())
	})
}

func TestSetSessionRejectsHalfPairs(t *testing.T) {
	store := newTestStore(t)

	roundTrip(t, store, nil, func(s *Session) {
		assert.ErrorIs(t, s.SetSession("", ana), ErrInvalidSession)
		assert.ErrorIs(t, s.SetSession("t1", entity.SessionUser{Nombre: "x"}), ErrInvalidSession)
		assert.False(t, s.IsAuthenticated())
		assert.Empty(t, s.Token())
	})
}

func TestMalformedUserIsTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)

	roundTrip(t, store, nil, func(s *Session) {
		s.raw.Values[keyToken] = "t1"
		s.raw.Values[keyUsuario] = "{not json"
		assert.Nil(t, s.CurrentUser())
		assert.False(t, s.IsAuthenticated())
	})
}

func TestTamperedCookieStartsFresh(t *testing.T) {
	store := newTestStore(t)
	bad := &http.Cookie{Name: CookieName, Value: "garbage"}

	roundTrip(t, store, []*http.Cookie{bad}, func(s *Session) {
		assert.False(t, s.IsAuthenticated())
		require.NoError(t, s.SetSession("t2", ana))
	})
}

func TestExpireRedirectsOnce(t *testing.T) {
	store := newTestStore(t)
	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.SetSession("t1", ana))
	})

	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s := store.Load(rec, req)
	s.Expire()
	s.Expire()

	assert.True(t, s.Expired())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, ExpiredRedirect, rec.Header().Get("Location"))
	assert.Len(t, rec.Header().Values("Location"), 1)
}

func TestRememberExtendsCookieLifetime(t *testing.T) {
	store := newTestStore(t)

	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.SetSession("t1", ana))
	})
	assert.Zero(t, cookies[0].MaxAge)

	cookies = roundTrip(t, store, cookies, func(s *Session) {
		require.NoError(t, s.SetRemember("a@b.com"))
	})
	assert.Equal(t, 30*24*60*60, cookies[0].MaxAge)

	cookies = roundTrip(t, store, cookies, func(s *Session) {
		email, ok := s.Remember()
		assert.True(t, ok)
		assert.Equal(t, "a@b.com", email)
		require.NoError(t, s.ClearSession())
	})

	// expiry keeps the remembered email, logout forgets it
	cookies = roundTrip(t, store, cookies, func(s *Session) {
		_, ok := s.Remember()
		assert.True(t, ok)
		require.NoError(t, s.Forget())
	})
	roundTrip(t, store, cookies, func(s *Session) {
		_, ok := s.Remember()
		assert.False(t, ok)
	})
}

func TestFlashesSurviveOneRedirect(t *testing.T) {
	store := newTestStore(t)

	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.AddFlash(Alert{Tipo: "success", Mensaje: "materia.creada"}))
	})
	cookies = roundTrip(t, store, cookies, func(s *Session) {
		alerts := s.Flashes()
		require.Len(t, alerts, 1)
		assert.Equal(t, "success", alerts[0].Tipo)
		assert.Equal(t, "materia.creada", alerts[0].Mensaje)
	})
	roundTrip(t, store, cookies, func(s *Session) {
		assert.Empty(t, s.Flashes())
	})
}

func TestLocale(t *testing.T) {
	store := newTestStore(t)

	cookies := roundTrip(t, store, nil, func(s *Session) {
		assert.Empty(t, s.Locale())
		require.NoError(t, s.SetLocale("fr"))
	})
	roundTrip(t, store, cookies, func(s *Session) {
		assert.Equal(t, "fr", s.Locale())
	})
}

func TestDeriveKeysIsDeterministic(t *testing.T) {
	h1, b1, err := DeriveKeys("secret")
	require.NoError(t, err)
	h2, b2, err := DeriveKeys("secret")
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, b1, b2)
	assert.Len(t, h1, 64)
	assert.Len(t, b1, 32)

	r1, _, err := DeriveKeys("")
	require.NoError(t, err)
	r2, _, err := DeriveKeys("")
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}

func TestMiddlewareSharesOneSession(t *testing.T) {
	store := newTestStore(t)
	var first *Session
	h := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = FromContext(r.Context())
		require.NotNil(t, first)
		first.Expire()
		FromContext(r.Context()).Expire()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil", nil))

	assert.True(t, first.Expired())
	assert.Equal(t, ExpiredRedirect, rec.Header().Get("Location"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
}
