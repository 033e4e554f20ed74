package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduaventuras/internal/logger"
)

type fakeFetcher struct {
	mensajes map[string]string
	idiomas  map[string]string
	err      error
}

func (f fakeFetcher) Mensajes(context.Context, string) (map[string]string, error) {
	return f.mensajes, f.err
}

func (f fakeFetcher) IdiomasDisponibles(context.Context) (map[string]string, error) {
	return f.idiomas, f.err
}

type localeSink struct{ code string }

func (s *localeSink) SetLocale(code string) error {
	s.code = code
	return nil
}

func TestLoginButtonPerLocale(t *testing.T) {
	b := NewBundle(logger.Discard())

	assert.Equal(t, "Iniciar Sesión", b.Translate("es", "login.button", nil))
	assert.Equal(t, "Login", b.Translate("en", "login.button", nil))
	assert.Equal(t, "Connexion", b.Translate("fr", "login.button", nil))
}

func TestTranslateFallbacks(t *testing.T) {
	b := NewBundle(logger.Discard())
	b.tables["en"] = map[string]string{}

	assert.Equal(t, "Iniciar Sesión", b.Translate("en", "login.button", nil), "falls back to es")
	assert.Equal(t, "no.such.key", b.Translate("en", "no.such.key", nil), "falls back to the key")
	assert.Equal(t, "Iniciar Sesión", b.Translate("xx", "login.button", nil))
}

func TestTranslateReplacesEveryPlaceholder(t *testing.T) {
	b := NewBundle(logger.Discard())
	b.tables["es"]["prueba.repetida"] = "{n} y {n} son {total}"

	got := b.Translate("es", "prueba.repetida", map[string]string{"n": "2", "total": "4"})
	assert.Equal(t, "2 y 2 son 4", got)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		persisted, header, want string
	}{
		{"fr", "en-US,en;q=0.9", "fr"},
		{"", "en-US,en;q=0.9", "en"},
		{"", "fr-CA", "fr"},
		{"", "es-MX,es;q=0.8", "es"},
		{"", "de-DE,pt;q=0.5", "es"},
		{"", "", "es"},
		{"de", "pt-BR,fr;q=0.3", "fr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.persisted, tt.header), "persisted=%q header=%q", tt.persisted, tt.header)
	}
}

func TestSetLocale(t *testing.T) {
	b := NewBundle(logger.Discard())
	sink := &localeSink{}

	require.NoError(t, b.SetLocale(sink, "en"))
	assert.Equal(t, "en", sink.code)

	err := b.SetLocale(sink, "de")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Equal(t, "en", sink.code, "unsupported locale leaves the choice alone")
}

func TestRefreshOverlaysRemote(t *testing.T) {
	b := NewBundle(logger.Discard())

	require.NoError(t, b.Refresh(context.Background(), fakeFetcher{mensajes: map[string]string{"login.button": "Sign in"}}, "en"))
	assert.Equal(t, "Sign in", b.Translate("en", "login.button", nil))
	assert.Equal(t, "Logout", b.Translate("en", "nav.logout", nil))

	err := b.Refresh(context.Background(), fakeFetcher{err: errors.New("down")}, "fr")
	assert.Error(t, err)
	assert.Equal(t, "Connexion", b.Translate("fr", "login.button", nil))
}

func TestRefreshDoesNotLeakIntoBuiltin(t *testing.T) {
	b := NewBundle(logger.Discard())
	require.NoError(t, b.Refresh(context.Background(), fakeFetcher{mensajes: map[string]string{"login.button": "X"}}, "es"))

	assert.Equal(t, "Iniciar Sesión", NewBundle(logger.Discard()).Translate("es", "login.button", nil))
}

func TestAvailable(t *testing.T) {
	b := NewBundle(logger.Discard())

	got := b.Available(context.Background(), fakeFetcher{idiomas: map[string]string{"es": "Español", "en": "English"}})
	require.Len(t, got, 2)
	assert.Equal(t, "es", got[0].Code)
	assert.Equal(t, "en", got[1].Code)

	assert.Equal(t, Languages, b.Available(context.Background(), fakeFetcher{err: errors.New("down")}))
}

func TestLocalizer(t *testing.T) {
	b := NewBundle(logger.Discard())
	l := b.Localizer("en")

	assert.Equal(t, "3 resources", l.T("materias.recursos.varios", "n", 3))
	assert.Equal(t, "Your session has expired. Please log in again", l.Message("error.sesion.expirada", nil))
	assert.Equal(t, "texto libre", l.Message("texto libre", nil))
	assert.Equal(t, "es", b.Localizer("zz").Locale)
}

func TestTablesHaveSameKeys(t *testing.T) {
	for code, table := range builtin {
		for key := range es {
			assert.Contains(t, table, key, "%s is missing %s", code, key)
		}
		assert.Len(t, table, len(es), code)
	}
}
