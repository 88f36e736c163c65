package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the http-only cookie carrying the admin session credential.
const CookieName = "coursespeak_admin_session"

// SessionTTL is the fixed lifetime of an admin session cookie.
const SessionTTL = 12 * time.Hour

// Gate authorizes admin access against a single configured shared secret.
// It is stateless: every request presents the credential again and is
// re-verified. The expected value must never appear in logs or responses.
type Gate struct {
	token string
}

// NewGate creates a gate for the configured secret.
func NewGate(token string) *Gate {
	return &Gate{token: token}
}

// Verify reports whether the candidate equals the configured secret, in
// constant time.
func (g *Gate) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.token)) == 1
}

// Authorize extracts the credential from the request and verifies it.
func (g *Gate) Authorize(c *gin.Context) bool {
	return g.Verify(TokenFromRequest(c))
}

// TokenFromRequest pulls the admin credential from the request. The three
// transports are equivalent: X-Admin-Token header, session cookie, Bearer
// authorization header, in that order.
func TokenFromRequest(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader("X-Admin-Token")); t != "" {
		return t
	}
	if t, err := c.Cookie(CookieName); err == nil && t != "" {
		return t
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
