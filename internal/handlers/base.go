package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cineavis/internal/middleware"
)

// Render helper to inject common variables shared by every view.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError shows the blocking error banner; everything else is
// suppressed.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": "Erreur"})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func visitorID(c *gin.Context) string {
	id, exists := c.Get(middleware.VisitorKey)
	if !exists {
		return ""
	}
	s, _ := id.(string)
	return s
}
