package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"wardrobe-ai/pkg/response"
)

// ContextKeySubject is where Auth stores the verified token subject.
const ContextKeySubject = "auth_subject"

// Auth verifies a bearer token when a JWT secret is configured. With no
// secret the instance runs single-user and every request passes through.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtSecret == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims := jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !parsed.Valid {
			m.l.Warnf(c.Request.Context(), "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Next()
	}
}
