package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"festadmin/internal/auth"
	"festadmin/internal/gate"
	"festadmin/internal/handler"
	"festadmin/internal/model"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

type mapStorage struct {
	data map[string][]byte
}

func (s *mapStorage) Get(_ context.Context, key string) ([]byte, error) { return s.data[key], nil }
func (s *mapStorage) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}
func (s *mapStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// newApp registers the full route table over a stub upstream and a store
// holding a session with the given role.
func newApp(t *testing.T, role model.Role) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	store := session.NewStore(&mapStorage{data: map[string][]byte{}}, nil, "ru")
	err := store.SetSession(context.Background(), model.Session{
		AccessToken: "tok",
		Username:    "staff",
		Role:        role,
		Exp:         time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.TicketList{})
	}))
	t.Cleanup(srv.Close)

	client := upstream.New(srv.URL, store, nil)
	store.SetAuthenticator(client)

	jwtService := auth.NewJWTService("test-secret")
	g := gate.New(store, jwtService)
	controllers := handler.NewControllers(client, store.Locale)

	e := echo.New()
	renderer, err := handler.NewRenderer()
	assert.NoError(t, err)
	e.Renderer = renderer

	Register(
		e,
		g,
		handler.NewAuthHandler(store, jwtService, nil),
		handler.NewPageHandler(store, client, controllers, 10),
		handler.NewVolunteerHandler(store, controllers),
		handler.NewMasterHandler(store, client, controllers),
		handler.NewTicketHandler(store, client, controllers),
	)
	return e, jwtService
}

func cookieFor(t *testing.T, jwtService *auth.JWTService, role model.Role) *http.Cookie {
	t.Helper()
	token, err := jwtService.GenerateSessionToken(&model.Session{
		Username: "staff",
		Role:     role,
		Exp:      time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func get(e *echo.Echo, path string, ck *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(ck)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTicketRoutesRequireTicketRole(t *testing.T) {
	t.Run("volunteer role is turned away", func(t *testing.T) {
		e, jwtService := newApp(t, model.RoleVolunteer)
		ck := cookieFor(t, jwtService, model.RoleVolunteer)

		rec := get(e, "/tickets", ck)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, gate.LoginPath, rec.Header().Get("Location"))

		rec = get(e, "/api/tickets/list", ck)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ticket role passes", func(t *testing.T) {
		e, jwtService := newApp(t, model.RoleTicket)
		ck := cookieFor(t, jwtService, model.RoleTicket)

		assert.Equal(t, http.StatusOK, get(e, "/tickets", ck).Code)
		assert.Equal(t, http.StatusOK, get(e, "/api/tickets/list", ck).Code)
	})

	t.Run("admin passes everything", func(t *testing.T) {
		e, jwtService := newApp(t, model.RoleAdmin)
		ck := cookieFor(t, jwtService, model.RoleAdmin)

		assert.Equal(t, http.StatusOK, get(e, "/tickets", ck).Code)
		assert.Equal(t, http.StatusOK, get(e, "/api/tickets/list", ck).Code)
		assert.Equal(t, http.StatusOK, get(e, "/volunteers", ck).Code)
	})
}
