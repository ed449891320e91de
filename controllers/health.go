package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ServiceInfo describes the service at GET /.
func ServiceInfo(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        name,
			"version":     version,
			"description": "Generates professional documents for scam victims using OpenAI.",
			"endpoints": gin.H{
				"generate_documents": "POST /generate-documents/",
				"health":             "GET /health",
			},
		})
	}
}
