package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

const (
	DecodedEmailKey = "decodedEmail"
	bearerPrefix    = "Bearer "
)

// VerifyToken decodes a bearer token into the caller's email when it can.
// It never aborts: a missing or bad token just leaves the request
// unauthenticated, and handlers that need an identity check for it.
func VerifyToken(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, bearerPrefix) {
			token := strings.TrimPrefix(authHeader, bearerPrefix)
			email, err := verifier.VerifyIDToken(c.Request.Context(), token)
			if err != nil {
				log.Printf("[%s] token verification failed: %v", RequestID(c), err)
			} else {
				c.Set(DecodedEmailKey, email)
			}
		}

		c.Next()
	}
}

// DecodedEmail returns the verified caller email set by VerifyToken.
func DecodedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(DecodedEmailKey)
	return email, email != ""
}
