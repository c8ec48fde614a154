package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitalkey/vitalkey-api/internal/handler"
	"github.com/vitalkey/vitalkey-api/internal/model"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

const contextMedico = "medico"

// Authenticator resolves a bearer token to an active medico.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Medico, error)
}

type AuthMiddleware struct {
	authService Authenticator
}

func NewAuthMiddleware(authService Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the bearer token and stores the resolved medico in
// the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			handler.RespondError(c, apperrors.Unauthorized("cabeçalho de autorização ausente", nil))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			handler.RespondError(c, apperrors.Unauthorized("formato de autorização inválido", nil))
			return
		}

		medico, err := m.authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			handler.RespondError(c, err)
			return
		}

		c.Set(contextMedico, medico)
		c.Next()
	}
}

// MedicoFromContext returns the authenticated medico set by Authenticate.
func MedicoFromContext(c *gin.Context) (*model.Medico, bool) {
	v, ok := c.Get(contextMedico)
	if !ok {
		return nil, false
	}
	medico, ok := v.(*model.Medico)
	return medico, ok
}
