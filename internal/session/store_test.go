package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"festadmin/internal/model"
)

// mapStorage is an in-memory Storage for tests.
type mapStorage struct {
	data map[string][]byte
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: map[string][]byte{}}
}

func (s *mapStorage) Get(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}

func (s *mapStorage) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *mapStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// MockAuthenticator is a mock implementation of Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*model.Session, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validSession() model.Session {
	return model.Session{
		AccessToken: "tok-123",
		TokenType:   model.TokenTypeBearer,
		UserID:      7,
		Username:    "admin",
		Role:        model.RoleAdmin,
		Exp:         fixedNow().Add(time.Hour).Unix(),
	}
}

func newTestStore(storage Storage) *Store {
	s := NewStore(storage, nil, "ru")
	s.now = fixedNow
	return s
}

func TestStore_Hydrate(t *testing.T) {
	tests := []struct {
		name       string
		stored     func() []byte
		wantLogged bool
	}{
		{
			name: "valid persisted session",
			stored: func() []byte {
				raw, _ := json.Marshal(validSession())
				return raw
			},
			wantLogged: true,
		},
		{
			name: "expired persisted session",
			stored: func() []byte {
				sess := validSession()
				sess.Exp = fixedNow().Add(-time.Minute).Unix()
				raw, _ := json.Marshal(sess)
				return raw
			},
			wantLogged: false,
		},
		{
			name:       "malformed blob is discarded",
			stored:     func() []byte { return []byte("{not json") },
			wantLogged: false,
		},
		{
			name:       "nothing persisted",
			stored:     func() []byte { return nil },
			wantLogged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMapStorage()
			if raw := tt.stored(); raw != nil {
				storage.data[SessionKey] = raw
			}

			store := newTestStore(storage)
			store.Hydrate(context.Background())

			assert.Equal(t, tt.wantLogged, store.IsLoggedIn())
		})
	}
}

func TestStore_HydrateLocale(t *testing.T) {
	storage := newMapStorage()
	storage.data[LocaleKey] = []byte("en")

	store := newTestStore(storage)
	store.Hydrate(context.Background())

	assert.Equal(t, "en", store.Locale())
}

func TestStore_Login(t *testing.T) {
	creds := Credentials{Username: "admin", Password: "secret"}

	t.Run("successful login persists the session", func(t *testing.T) {
		storage := newMapStorage()
		store := newTestStore(storage)

		sess := validSession()
		auth := new(MockAuthenticator)
		auth.On("Authenticate", mock.Anything, creds).Return(&sess, nil)
		store.SetAuthenticator(auth)

		err := store.Login(context.Background(), creds)

		assert.NoError(t, err)
		assert.True(t, store.IsLoggedIn())
		assert.Equal(t, "tok-123", store.Token())
		assert.Equal(t, model.RoleAdmin, store.Role())
		assert.NotEmpty(t, storage.data[SessionKey])
		auth.AssertExpectations(t)
	})

	t.Run("failed login leaves state untouched", func(t *testing.T) {
		storage := newMapStorage()
		store := newTestStore(storage)

		auth := new(MockAuthenticator)
		auth.On("Authenticate", mock.Anything, creds).Return(nil, errors.New("bad credentials"))
		store.SetAuthenticator(auth)

		err := store.Login(context.Background(), creds)

		assert.Error(t, err)
		assert.False(t, store.IsLoggedIn())
		assert.Empty(t, store.Token())
		assert.Empty(t, storage.data[SessionKey])
	})
}

func TestStore_Logout(t *testing.T) {
	storage := newMapStorage()
	store := newTestStore(storage)

	err := store.SetSession(context.Background(), validSession())
	assert.NoError(t, err)
	assert.True(t, store.IsLoggedIn())

	store.Logout(context.Background())
	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, storage.data[SessionKey])
	assert.Nil(t, store.Session())

	// idempotent
	store.Logout(context.Background())
	assert.False(t, store.IsLoggedIn())
}

func TestStore_LoginRedirect(t *testing.T) {
	store := newTestStore(newMapStorage())

	// default before any gate denial
	assert.Equal(t, DefaultLoginRedirect, store.LoginRedirect())

	store.SetLoginRedirect("/masters?page=2")
	assert.Equal(t, "/masters?page=2", store.ConsumeLoginRedirect())

	// consumed once; falls back to default afterwards
	assert.Equal(t, DefaultLoginRedirect, store.ConsumeLoginRedirect())
}

func TestStore_SessionReturnsCopy(t *testing.T) {
	store := newTestStore(newMapStorage())
	assert.NoError(t, store.SetSession(context.Background(), validSession()))

	got := store.Session()
	got.Username = "mutated"

	assert.Equal(t, "admin", store.Session().Username)
}

func TestStore_TokenExpired(t *testing.T) {
	store := newTestStore(newMapStorage())
	sess := validSession()
	sess.Exp = fixedNow().Add(-time.Second).Unix()
	assert.NoError(t, store.SetSession(context.Background(), sess))

	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.Token())
	assert.Empty(t, string(store.Role()))
}

func TestStore_Locale(t *testing.T) {
	storage := newMapStorage()
	store := newTestStore(storage)

	assert.Equal(t, "ru", store.Locale())

	assert.NoError(t, store.SetLocale(context.Background(), "ro"))
	assert.Equal(t, "ro", store.Locale())
	assert.Equal(t, []byte("ro"), storage.data[LocaleKey])
}
