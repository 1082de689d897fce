package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthRequired validates the bearer token and injects the actor identity
// into the context. Websocket clients may pass the token as ?token=.
func AuthRequired(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader(constants.HeaderAuthorization), constants.BearerPrefix)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		actorID, name, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(constants.CtxActorID, actorID)
		c.Set(constants.CtxActorName, name)
		c.Next()
	}
}

// RequestLogger tags each request with an id (reusing a client supplied
// X-Request-ID) and logs it once handled.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.CtxRequestID, id)
		c.Header(constants.HeaderRequestID, id)

		start := time.Now()
		c.Next()

		fields := logging.Fields{
			constants.LogFieldRequestID: id,
			constants.LogFieldPath:      c.FullPath(),
			"method":                    c.Request.Method,
			"status":                    c.Writer.Status(),
			"duration_ms":               time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			logging.Error("request failed", c.Errors.Last(), fields)
			return
		}
		logging.Debug("request handled", fields)
	}
}
