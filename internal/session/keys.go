package session

import (
	"crypto/sha256"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const keyInfo = "eduaventuras session cookie keys"

// DeriveKeys expands secret into a 64-byte HMAC key and a 32-byte AES key.
// An empty secret yields random keys, which do not survive a restart.
func DeriveKeys(secret string) (hashKey, blockKey []byte, err error) {
	if secret == "" {
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil || blockKey == nil {
			return nil, nil, errors.New("generating random session keys")
		}
		return hashKey, blockKey, nil
	}

	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	hashKey = make([]byte, 64)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(kdf, hashKey); err != nil {
		return nil, nil, errors.Wrap(err, "deriving hash key")
	}
	if _, err := io.ReadFull(kdf, blockKey); err != nil {
		return nil, nil, errors.Wrap(err, "deriving block key")
	}
	return hashKey, blockKey, nil
}

// DefaultOptions are the cookie options shared by every backend.
func DefaultOptions(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewCookieBackend keeps the whole session, token included, in an encrypted cookie.
func NewCookieBackend(secret string, maxAge time.Duration, secure bool) (*sessions.CookieStore, error) {
	hashKey, blockKey, err := DeriveKeys(secret)
	if err != nil {
		return nil, err
	}
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = DefaultOptions(secure)
	// codecs reject cookies older than the remember-me lifetime
	store.MaxAge(int(maxAge.Seconds()))
	store.Options.MaxAge = 0
	return store, nil
}
