package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalkey/vitalkey-api/internal/handler"
	"github.com/vitalkey/vitalkey-api/internal/model"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

// Service is the credential-login surface consumed by this handler.
type Service interface {
	Login(ctx context.Context, username, password string) (*model.TokenResponse, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// Login authenticates by CRM or e-mail with a form-encoded credential pair
// and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest("usuário e senha são obrigatórios", err))
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}
