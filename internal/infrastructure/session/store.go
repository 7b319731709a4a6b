// Package session provides the durable session store: one JSON file holding
// {token, user}, mirrored in memory. The file is the reload-survival copy;
// both copies are always written and cleared together.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// FileStore is the sole owner of authentication truth. All mutation goes
// through SetSession and Clear; nothing else writes the session file.
type FileStore struct {
	path string
	log  zerolog.Logger

	mu      sync.Mutex
	current *domain.Session
}

var _ ports.SessionStore = (*FileStore)(nil)

// NewFileStore loads any surviving session from path. A missing, unreadable,
// or corrupt file just means no session; a token whose JWT exp claim already
// passed is discarded at load rather than restored as a doomed session.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	s := &FileStore{path: path, log: log}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("session file unreadable, starting signed out")
		}
		return s
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("session file corrupt, starting signed out")
		return s
	}
	if sess.Token == "" || sess.User == nil {
		log.Warn().Str("path", path).Msg("session file incomplete, starting signed out")
		return s
	}
	if tokenExpired(sess.Token) {
		log.Info().Str("username", sess.User.Username).Msg("stored token expired, discarding session")
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("failed to remove expired session file")
		}
		return s
	}

	s.current = &sess
	log.Debug().Str("username", sess.User.Username).Msg("session restored")
	return s
}

func (s *FileStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.User
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *FileStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Authenticated()
}

// SetSession writes the durable copy first (temp file + rename), then the
// in-memory copy, so a failure leaves both copies on the previous session.
func (s *FileStore) SetSession(user *domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &domain.Session{Token: token, User: user}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.current = sess
	return nil
}

// Clear removes both copies under one lock. If the durable copy cannot be
// removed, the in-memory copy is left intact as well: both copies or neither.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	s.current = nil
	return nil
}

// tokenExpired inspects the exp claim without verifying the signature; the
// client does not hold the signing secret. Tokens that are not parseable JWTs
// are kept; the server remains the authority on their validity.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
