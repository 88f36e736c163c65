package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursespeak/coursespeak/internal/auth"
	"github.com/coursespeak/coursespeak/internal/logger"
)

// SessionHandler issues, checks and clears the admin session cookie. The
// cookie just carries the shared secret; there is no server-side session
// state, so "logout" is only a cookie removal.
type SessionHandler struct {
	log    *logger.Logger
	gate   *auth.Gate
	secure bool
}

// NewSessionHandler creates the admin session endpoints. secure controls the
// Secure flag on the issued cookie.
func NewSessionHandler(log *logger.Logger, gate *auth.Gate, secure bool) *SessionHandler {
	return &SessionHandler{log: log.With("handler", "session"), gate: gate, secure: secure}
}

// Status handles GET /api/admin/session.
func (s *SessionHandler) Status(c *gin.Context) {
	if !s.gate.Authorize(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Login handles POST /api/admin/session.
func (s *SessionHandler) Login(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON"})
		return
	}
	token := strings.TrimSpace(body.Token)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}
	if !s.gate.Verify(token) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", s.secure, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout handles DELETE /api/admin/session.
func (s *SessionHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", s.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// VerifyToken handles POST /api/admin/verify-token, used by the admin UI to
// validate a locally cached credential without touching the cookie.
func (s *SessionHandler) VerifyToken(c *gin.Context) {
	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No token provided"})
		return
	}
	if !s.gate.Verify(strings.TrimSpace(body.Token)) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
