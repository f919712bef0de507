package gate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"festadmin/internal/auth"
	"festadmin/internal/model"
	"festadmin/internal/session"
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

func testFixture(t *testing.T, loggedIn bool) (*echo.Echo, *session.Store, *auth.JWTService) {
	t.Helper()
	store := session.NewStore(&mapStorage{data: map[string][]byte{}}, nil, "ru")
	if loggedIn {
		err := store.SetSession(context.Background(), model.Session{
			AccessToken: "tok",
			Username:    "admin",
			Role:        model.RoleAdmin,
			Exp:         time.Now().Add(time.Hour).Unix(),
		})
		assert.NoError(t, err)
	}

	jwtService := auth.NewJWTService("test-secret")
	g := New(store, jwtService)

	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	pages := e.Group("", g.Cookie(), g.Session())
	pages.GET("/", ok)
	pages.GET("/masters", ok)
	pages.GET("/tickets", ok, g.RequireRole(model.RoleTicket))
	api := e.Group("/api", g.Cookie(), g.Session())
	api.GET("/masters/list", ok)

	return e, store, jwtService
}

func sessionCookie(t *testing.T, jwtService *auth.JWTService, role model.Role) *http.Cookie {
	t.Helper()
	token, err := jwtService.GenerateSessionToken(&model.Session{
		Username: "admin",
		Role:     role,
		Exp:      time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func TestGate_PageWithoutCookieRedirects(t *testing.T) {
	e, store, _ := testFixture(t, true)

	req := httptest.NewRequest(http.MethodGet, "/masters?page=2&search=ana", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	// the attempted destination is remembered, query included
	assert.Equal(t, "/masters?page=2&search=ana", store.LoginRedirect())
}

func TestGate_APIWithoutCookieGets401(t *testing.T) {
	e, store, _ := testFixture(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/masters/list", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	// API denials do not move the post-login destination
	assert.Equal(t, session.DefaultLoginRedirect, store.LoginRedirect())
}

func TestGate_ValidCookieAndSessionPasses(t *testing.T) {
	e, _, jwtService := testFixture(t, true)

	req := httptest.NewRequest(http.MethodGet, "/masters", nil)
	req.AddCookie(sessionCookie(t, jwtService, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_CookieAloneIsNotEnough(t *testing.T) {
	// a forced logout invalidates the stored session while the browser
	// still holds a syntactically valid cookie
	e, _, jwtService := testFixture(t, false)

	req := httptest.NewRequest(http.MethodGet, "/masters", nil)
	req.AddCookie(sessionCookie(t, jwtService, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestGate_TamperedCookieDenied(t *testing.T) {
	e, _, _ := testFixture(t, true)

	other := auth.NewJWTService("wrong-secret")
	req := httptest.NewRequest(http.MethodGet, "/masters", nil)
	req.AddCookie(sessionCookie(t, other, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestGate_AdminSatisfiesRoleChecks(t *testing.T) {
	// store holds an admin session; the tickets route requires the ticket
	// role and admin must pass it
	e, _, jwtService := testFixture(t, true)

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.AddCookie(sessionCookie(t, jwtService, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGate_WrongRoleDenied(t *testing.T) {
	store := session.NewStore(&mapStorage{data: map[string][]byte{}}, nil, "ru")
	err := store.SetSession(context.Background(), model.Session{
		AccessToken: "tok",
		Username:    "vol",
		Role:        model.RoleVolunteer,
		Exp:         time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret")
	g := New(store, jwtService)

	e := echo.New()
	e.GET("/tickets", func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
		g.Cookie(), g.Session(), g.RequireRole(model.RoleTicket))

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.AddCookie(sessionCookie(t, jwtService, model.RoleVolunteer))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/tickets", store.LoginRedirect())
}
