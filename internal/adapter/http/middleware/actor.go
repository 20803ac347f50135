// Package middleware bridges the external auth collaborator into request
// handling: the upstream proxy authenticates the user and forwards the
// identity headers this middleware turns into an entities.Actor.
package middleware

import (
	"iblind_pos/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// Actor extracts the authenticated identity from the X-User-* headers set by
// the auth collaborator. The core never mutates it; handlers read it back
// with ActorFromContext.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.UserRole(c.GetHeader("X-User-Role"))
		if role != entities.RoleAdmin && role != entities.RoleEspecialista {
			role = ""
		}
		c.Set(actorContextKey, entities.Actor{
			ID:   c.GetHeader("X-User-Id"),
			Name: c.GetHeader("X-User-Name"),
			Role: role,
		})
		c.Next()
	}
}

// ActorFromContext returns the actor attached by the Actor middleware.
func ActorFromContext(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}
