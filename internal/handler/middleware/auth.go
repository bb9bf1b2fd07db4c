package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	jwtpkg "shadownet/burnerhub/pkg/jwt"
	"shadownet/burnerhub/pkg/response"
)

const ContextKeyUserClaims = "user_claims"

// JWTAuth rejects requests without a valid bearer access token.
func JWTAuth(jwtManager *jwtpkg.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwtManager)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		c.Set(ContextKeyUserClaims, claims)
		c.Next()
	}
}

// OptionalJWTAuth attaches claims when a valid token is present but lets
// anonymous requests through; handlers decide what anonymity means.
func OptionalJWTAuth(jwtManager *jwtpkg.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, jwtManager); ok {
			c.Set(ContextKeyUserClaims, claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwtManager *jwtpkg.Manager) (*jwtpkg.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtManager.Validate(parts[1])
	if err != nil || claims.TokenType != jwtpkg.TokenTypeAccess {
		return nil, false
	}
	return claims, true
}
