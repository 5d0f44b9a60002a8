package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/auth"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

const ContextActor = "actor"

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		raw, ok := bearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use the Bearer scheme.")
			c.Abort()
			return
		}

		actor, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through. A token that is present
// but invalid is still rejected.
func OptionalAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Set(ContextActor, identity.Anonymous())
			c.Next()
			return
		}

		raw, ok := bearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use the Bearer scheme.")
			c.Abort()
			return
		}

		actor, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

type UserLoader interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// RefreshActor rebuilds the actor from the stored user so role and staff
// changes apply before the token expires. Runs after AuthMiddleware.
func RefreshActor(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if !actor.IsAuthenticated() {
			httperr.Unauthorized(c, "missing_authorization_header", "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		user, err := users.GetUser(c.Request.Context(), actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			} else {
				httperr.Respond(c, err)
			}
			c.Abort()
			return
		}

		c.Set(ContextActor, identity.ActorFor(user))
		c.Next()
	}
}

// ActorFrom returns the anonymous actor when no middleware set one.
func ActorFrom(c *gin.Context) identity.Actor {
	if v, ok := c.Get(ContextActor); ok {
		if actor, ok := v.(identity.Actor); ok {
			return actor
		}
	}
	return identity.Anonymous()
}
