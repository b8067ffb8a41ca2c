package middleware

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const VisitorKey = "visitor_id"

// Visitor assigns each browser an opaque id in its session cookie and puts
// it on the request context. The id scopes the visitor's transient comment
// state; it is not an account and carries no credentials.
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, _ := session.Get(VisitorKey).(string)
		if id == "" {
			id = uuid.NewString()
			session.Set(VisitorKey, id)
			if err := session.Save(); err != nil {
				log.Printf("Failed to save visitor session: %v", err)
			}
		}
		c.Set(VisitorKey, id)
		c.Next()
	}
}
