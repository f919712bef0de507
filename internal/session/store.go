// Package session owns the authenticated staff session: the upstream auth
// response persisted across restarts, the transient login redirect, and the
// locale preference. The store is created once in main and injected; there
// is no package-level state.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"festadmin/internal/model"
)

// DefaultLoginRedirect is where a fresh login lands when no protected page
// was requested first.
const DefaultLoginRedirect = "/"

// Credentials are the login form values forwarded to the upstream.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required,max=255"`
}

// Authenticator exchanges credentials for an upstream session.
// Implemented by the upstream client; stubbed in tests.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*model.Session, error)
}

// Store holds the process-wide session. Echo serves requests on many
// goroutines, so access is guarded by a mutex; all mutation still goes
// through SetSession and Logout only.
type Store struct {
	mu            sync.RWMutex
	storage       Storage
	auth          Authenticator
	logger        *zap.Logger
	session       *model.Session
	loginRedirect string
	locale        string
	defaultLocale string

	now func() time.Time // stubbed in tests
}

// NewStore builds a store over the given durable storage.
func NewStore(storage Storage, logger *zap.Logger, defaultLocale string) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage:       storage,
		logger:        logger,
		loginRedirect: DefaultLoginRedirect,
		locale:        defaultLocale,
		defaultLocale: defaultLocale,
		now:           time.Now,
	}
}

// SetAuthenticator wires the upstream client after construction; the client
// itself needs the store for tokens, so the dependency is closed in main.
func (s *Store) SetAuthenticator(a Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = a
}

// Hydrate reads the persisted session and locale once at process start.
// It fails soft: a missing or malformed blob leaves the store logged out.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, err := s.storage.Get(ctx, LocaleKey); err == nil && len(raw) > 0 {
		s.locale = string(raw)
	}

	raw, err := s.storage.Get(ctx, SessionKey)
	if err != nil || len(raw) == 0 {
		return
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn("discarding malformed persisted session", zap.Error(err))
		return
	}
	s.session = &sess
	if !sess.Valid(s.now()) {
		s.logger.Info("persisted session expired", zap.String("username", sess.Username))
	}
}

// IsLoggedIn reports whether a session is present and unexpired.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Valid(s.now())
}

// Session returns a copy of the current session, or nil when absent.
func (s *Store) Session() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// Token returns the bearer token of a valid session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Valid(s.now()) {
		return ""
	}
	return s.session.AccessToken
}

// Role returns the current session role, or "" when logged out.
func (s *Store) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.Valid(s.now()) {
		return ""
	}
	return s.session.Role
}

// Login authenticates against the upstream and stores the session.
// On failure the session state is left untouched and the error is returned
// for normalization at the form.
func (s *Store) Login(ctx context.Context, creds Credentials) error {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()

	sess, err := auth.Authenticate(ctx, creds)
	if err != nil {
		return err
	}
	return s.SetSession(ctx, *sess)
}

// SetSession persists the session and updates in-memory state.
func (s *Store) SetSession(ctx context.Context, sess model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, SessionKey, raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()
	s.logger.Info("session stored",
		zap.String("username", sess.Username),
		zap.String("role", string(sess.Role)))
	return nil
}

// Logout clears persisted and in-memory session state. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	if err := s.storage.Delete(ctx, SessionKey); err != nil {
		s.logger.Warn("clearing persisted session", zap.Error(err))
	}
	s.mu.Lock()
	already := s.session == nil
	s.session = nil
	s.mu.Unlock()
	if !already {
		s.logger.Info("logged out")
	}
}

// LoginRedirect returns the remembered pre-login destination.
func (s *Store) LoginRedirect() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginRedirect
}

// SetLoginRedirect records where the user was headed when the gate turned
// them away. Called once per failed authorization check.
func (s *Store) SetLoginRedirect(target string) {
	if target == "" {
		target = DefaultLoginRedirect
	}
	s.mu.Lock()
	s.loginRedirect = target
	s.mu.Unlock()
}

// ConsumeLoginRedirect returns the remembered destination and resets it to
// the default, so a later login does not replay an old target.
func (s *Store) ConsumeLoginRedirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.loginRedirect
	s.loginRedirect = DefaultLoginRedirect
	return target
}

// Locale returns the persisted locale preference.
func (s *Store) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.locale == "" {
		return s.defaultLocale
	}
	return s.locale
}

// SetLocale persists the locale preference.
func (s *Store) SetLocale(ctx context.Context, locale string) error {
	if err := s.storage.Set(ctx, LocaleKey, []byte(locale)); err != nil {
		return err
	}
	s.mu.Lock()
	s.locale = locale
	s.mu.Unlock()
	return nil
}
