package upstream

import (
	"context"
	"net/http"

	"festadmin/internal/apierr"
	"festadmin/internal/model"
	"festadmin/internal/session"
)

// Authenticate exchanges credentials for a session via POST /user/auth.
// A rejected login is returned as KindAuth so the form can tell bad
// credentials apart from a revoked token.
func (c *Client) Authenticate(ctx context.Context, creds session.Credentials) (*model.Session, error) {
	var sess model.Session
	err := c.sendJSON(ctx, http.MethodPost, "/user/auth", creds, &sess)
	if err != nil {
		if e, ok := err.(*apierr.Error); ok && e.Status == http.StatusUnauthorized {
			e.Kind = apierr.KindAuth
		}
		return nil, err
	}
	return &sess, nil
}
