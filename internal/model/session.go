package model

import "time"

// Role is the staff role carried by the upstream session.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
	RoleMaster    Role = "master"
	RoleTicket    Role = "ticket"
)

// Satisfies reports whether the role passes a check for required.
// Admin satisfies every role-gated check.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}

// TokenTypeBearer is the only token type the upstream issues.
const TokenTypeBearer = "bearer"

// Session is the upstream authentication response, stored verbatim.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	RedirectURL string `json:"redirect_url"`
	Exp         int64  `json:"exp"` // epoch seconds
}

// ExpiresAt returns the session expiry as a time.
func (s *Session) ExpiresAt() time.Time {
	return time.Unix(s.Exp, 0)
}

// Valid reports whether the session has not expired yet.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Exp > now.Unix()
}
