package session

import (
	"context"
	"database/sql"
	"encoding/base32"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// rows of browser-session cookies (MaxAge 0) still need an expiry
const defaultRowLifetime = 24 * time.Hour

// PGStore keeps session values in PostgreSQL; the cookie only carries a signed session id.
type PGStore struct {
	db      *sql.DB
	Codecs  []securecookie.Codec
	Options *sessions.Options
}

var _ sessions.Store = (*PGStore)(nil)

func NewPGStore(db *sql.DB, secure bool, keyPairs ...[]byte) *PGStore {
	return &PGStore{
		db:      db,
		Codecs:  securecookie.CodecsFromPairs(keyPairs...),
		Options: DefaultOptions(secure),
	}
}

func (s *PGStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

func (s *PGStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		return session, err
	}

	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	session.IsNew = !found
	return session, nil
}

func (s *PGStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if _, err := s.db.ExecContext(r.Context(), `DELETE FROM sessions WHERE id = $1`, session.ID); err != nil {
				return errors.Wrap(err, "deleting session")
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return errors.Wrap(err, "encoding session id")
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *PGStore) load(ctx context.Context, session *sessions.Session) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM sessions
		WHERE id = $1 AND expires_at > now()
	`, session.ID).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "loading session")
	}
	if err := securecookie.DecodeMulti(session.Name(), data, &session.Values, s.Codecs...); err != nil {
		return false, errors.Wrap(err, "decoding session values")
	}
	return true, nil
}

func (s *PGStore) save(ctx context.Context, session *sessions.Session) error {
	data, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return errors.Wrap(err, "encoding session values")
	}

	lifetime := time.Duration(session.Options.MaxAge) * time.Second
	if lifetime == 0 {
		lifetime = defaultRowLifetime
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, data, created_at, updated_at, expires_at)
		VALUES ($1, $2, now(), now(), $3)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now(), expires_at = EXCLUDED.expires_at
	`, session.ID, data, time.Now().Add(lifetime))
	return errors.Wrap(err, "saving session")
}

// Cleanup deletes expired rows every interval until ctx is done.
func (s *PGStore) Cleanup(ctx context.Context, interval time.Duration, log *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
			if err != nil {
				log.WithError(err).Warn("cleaning up expired sessions")
				continue
			}
			if n, _ := res.RowsAffected(); n > 0 {
				log.WithField("deleted", n).Debug("expired sessions removed")
			}
		}
	}
}
