package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"festadmin/internal/apierr"
	"festadmin/internal/auth"
	"festadmin/internal/gate"
	"festadmin/internal/i18n"
	"festadmin/internal/session"
)

// AuthHandler serves the login form, the login/logout actions and the
// locale preference.
type AuthHandler struct {
	store  *session.Store
	jwt    *auth.JWTService
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(store *session.Store, jwtService *auth.JWTService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{store: store, jwt: jwtService, logger: logger}
}

type loginPageData struct {
	Error  string
	Locale string
}

// LoginPage renders the login form. An already authenticated user is sent
// straight to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if h.store.IsLoggedIn() && h.hasValidCookie(c) {
		return c.Redirect(http.StatusFound, session.DefaultLoginRedirect)
	}
	return c.Render(http.StatusOK, "login.html", loginPageData{Locale: h.store.Locale()})
}

// Login authenticates against the upstream. Validation failures block the
// submission before any network call; upstream failures surface as one
// normalized message at the form without touching session state.
func (h *AuthHandler) Login(c echo.Context) error {
	locale := h.store.Locale()

	var creds session.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.Render(http.StatusBadRequest, "login.html",
			loginPageData{Error: i18n.T(locale, i18n.KeyLoginFailed), Locale: locale})
	}
	if err := c.Validate(&creds); err != nil {
		return c.Render(http.StatusBadRequest, "login.html",
			loginPageData{Error: err.Error(), Locale: locale})
	}

	ctx := c.Request().Context()
	if err := h.store.Login(ctx, creds); err != nil {
		h.logger.Info("login rejected", zap.String("username", creds.Username))
		return c.Render(http.StatusUnauthorized, "login.html",
			loginPageData{Error: apierr.Normalize(err, locale), Locale: locale})
	}

	sess := h.store.Session()
	token, err := h.jwt.GenerateSessionToken(sess)
	if err != nil {
		h.logger.Error("minting session cookie", zap.Error(err))
		return c.Render(http.StatusInternalServerError, "login.html",
			loginPageData{Error: i18n.T(locale, i18n.KeyUnknownError), Locale: locale})
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.store.ConsumeLoginRedirect())
}

// Logout clears the session and the cookie. Safe to call when already
// logged out.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Logout(c.Request().Context())
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, gate.LoginPath)
}

// SetLocale persists the locale preference and returns to the caller page.
func (h *AuthHandler) SetLocale(c echo.Context) error {
	locale := c.FormValue("locale")
	if !i18n.Known(locale) {
		return c.Redirect(http.StatusFound, backTo(c))
	}
	if err := h.store.SetLocale(c.Request().Context(), locale); err != nil {
		h.logger.Warn("persisting locale", zap.Error(err))
	}
	return c.Redirect(http.StatusFound, backTo(c))
}

func (h *AuthHandler) hasValidCookie(c echo.Context) bool {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = h.jwt.ValidateToken(cookie.Value)
	return err == nil
}

func backTo(c echo.Context) string {
	if ref := c.Request().Header.Get("Referer"); ref != "" {
		return ref
	}
	return session.DefaultLoginRedirect
}
