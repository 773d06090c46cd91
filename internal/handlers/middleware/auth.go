package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/triafrota/tria-backend/internal/handlers/dto"
)

// AuthConfig parametriza a validação de tokens JWT
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// RequireAuth valida o token Bearer do cabeçalho Authorization e
// aborta com 401 quando ausente, expirado ou assinado com outra chave.
// Em caso de sucesso, grava user_id e role no contexto da requisição.
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}

		if uid, ok := claims["uid"].(float64); ok {
			c.Set("user_id", uint(uid))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}

		c.Next()
	}
}
