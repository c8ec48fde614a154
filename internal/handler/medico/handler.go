package medico

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalkey/vitalkey-api/internal/handler"
	"github.com/vitalkey/vitalkey-api/internal/middleware"
	"github.com/vitalkey/vitalkey-api/internal/model"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

// Service is the medico management surface consumed by this handler.
type Service interface {
	Create(ctx context.Context, req *model.CreateMedicoRequest) (*model.Medico, error)
	UpdateSelf(ctx context.Context, medico *model.Medico, req *model.UpdateMedicoRequest) (*model.Medico, error)
	SetStatus(ctx context.Context, id int64, ativo bool) (*model.Medico, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the open medico endpoints. The status toggle and the
// hard delete are intentionally unauthenticated, matching the exposed
// contract.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/medico", h.Create)
	r.PATCH("/medico/:id/status", h.SetStatus)
	r.DELETE("/medico/:id", h.Delete)
}

// RegisterProtectedRoutes wires the endpoints that require an authenticated
// medico.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/medico/me", h.GetMe)
	r.PATCH("/medico/me", h.UpdateMe)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateMedicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	medico, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, medico)
}

func (h *Handler) GetMe(c *gin.Context) {
	medico, ok := middleware.MedicoFromContext(c)
	if !ok {
		handler.RespondError(c, apperrors.Unauthorized("Token inválido", nil))
		return
	}
	c.JSON(http.StatusOK, medico)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	medico, ok := middleware.MedicoFromContext(c)
	if !ok {
		handler.RespondError(c, apperrors.Unauthorized("Token inválido", nil))
		return
	}

	var req model.UpdateMedicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.service.UpdateSelf(c.Request.Context(), medico, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	var req model.UpdateMedicoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest("campo ativo é obrigatório", err))
		return
	}

	medico, err := h.service.SetStatus(c.Request.Context(), id, *req.Ativo)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, medico)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest("id inválido", err)
	}
	return id, nil
}
