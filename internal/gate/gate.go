// Package gate guards protected routes. A request passes when the browser
// presents a valid session cookie AND the stored upstream session is still
// valid; otherwise the gate records where the user was headed and redirects
// to the login view. The gate holds no state of its own beyond that
// bookkeeping.
package gate

import (
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"festadmin/internal/apierr"
	"festadmin/internal/auth"
	"festadmin/internal/model"
	"festadmin/internal/session"
)

// LoginPath is where unauthorized page requests are redirected.
const LoginPath = "/login"

// Gate decides authorization per navigation.
type Gate struct {
	store *session.Store
	jwt   *auth.JWTService
}

// New builds a gate over the session store and cookie service.
func New(store *session.Store, jwtService *auth.JWTService) *Gate {
	return &Gate{store: store, jwt: jwtService}
}

// Cookie validates the dashboard session cookie. Missing, expired or
// tampered cookies deny the request.
func (g *Gate) Cookie() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  g.jwt.Secret(),
		TokenLookup: "cookie:" + auth.CookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return g.Deny(c)
		},
	})
}

// Session denies when the hydrated upstream session is absent or expired,
// covering a forced logout that happened after the cookie was issued.
func (g *Gate) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g.store.IsLoggedIn() {
				return g.Deny(c)
			}
			return next(c)
		}
	}
}

// RequireRole narrows access to one role. Admin always passes.
func (g *Gate) RequireRole(required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !g.store.Role().Satisfies(required) {
				return g.Deny(c)
			}
			return next(c)
		}
	}
}

// Deny records the attempted destination and turns the request away:
// API calls get a 401 JSON body, page navigations a redirect to login.
// Recording is a side effect of the attempt itself and runs exactly once
// per failed check, because the middleware chain stops here.
func (g *Gate) Deny(c echo.Context) error {
	req := c.Request()
	if !isAPIPath(req.URL.Path) {
		g.store.SetLoginRedirect(req.URL.RequestURI())
		return c.Redirect(http.StatusFound, LoginPath)
	}
	return c.JSON(http.StatusUnauthorized, apierr.ErrorResponse{
		Error: "unauthorized",
		Code:  "UNAUTHORIZED",
	})
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
