package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"news-api-be/internal/jwt"
)

// ClaimsContextKey is the gin context key under which the decoded token
// claims are stored for downstream handlers.
const ClaimsContextKey = "authClaims"

// AuthMiddleware verifies the bearer token on protected routes. A missing
// token short-circuits with 401; an invalid or expired one with 403. On
// success the decoded claims are attached to the request context and
// trusted as-is for the token lifetime.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Access denied. You are not authenticated.",
			})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Invalid or expired token.",
			})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the decoded claims attached by AuthMiddleware,
// or nil when the route is unauthenticated.
func ClaimsFromContext(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
