package session

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduaventuras/internal/database"
	"eduaventuras/internal/logger"
)

func TestPGStoreRoundTrip(t *testing.T) {
	url := os.Getenv("EDU_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("EDU_TEST_DATABASE_URL not set")
	}
	db, err := database.Open(url)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	hashKey, blockKey, err := DeriveKeys("pg-secret")
	require.NoError(t, err)
	store := NewStore(NewPGStore(db, false, hashKey, blockKey), time.Hour, logger.Discard())

	cookies := roundTrip(t, store, nil, func(s *Session) {
		require.NoError(t, s.SetSession("t1", ana))
	})
	require.Len(t, cookies, 1)
	// only the id travels to the browser
	var id string
	require.NoError(t, securecookie.DecodeMulti(CookieName, cookies[0].Value, &id,
		securecookie.CodecsFromPairs(hashKey, blockKey)...))
	assert.NotEmpty(t, id)

	cookies = roundTrip(t, store, cookies, func(s *Session) {
		assert.Equal(t, "t1", s.Token())
		assert.Equal(t, &ana, s.CurrentUser())
		require.NoError(t, s.ClearSession())
	})
	roundTrip(t, store, cookies, func(s *Session) {
		assert.False(t, s.IsAuthenticated())
	})
}

func TestPGStoreWithoutCookieIsNew(t *testing.T) {
	store := NewPGStore(nil, false, []byte("0123456789abcdef0123456789abcdef"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	s, err := store.New(req, CookieName)
	require.NoError(t, err)
	assert.True(t, s.IsNew)
	assert.Empty(t, s.Values)
}
