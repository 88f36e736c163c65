package handlers

import "github.com/gin-gonic/gin"

// The response envelopes mirror what the admin UI and public site consume:
// public listing errors are {"error": ...}, admin record operations are
// {"success": bool, "data"/"error": ...}.

func respondPublicError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondAdminError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondAdminData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}
