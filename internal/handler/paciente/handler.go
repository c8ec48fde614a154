package paciente

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalkey/vitalkey-api/internal/handler"
	"github.com/vitalkey/vitalkey-api/internal/model"
	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

// Service is the paciente management surface consumed by this handler.
type Service interface {
	Search(ctx context.Context, filters *model.PacienteFilters) ([]*model.Paciente, error)
	Get(ctx context.Context, id int64) (*model.Paciente, error)
	GetCompleto(ctx context.Context, id int64) (*model.PacienteCompleto, error)
	Create(ctx context.Context, req *model.CreatePacienteRequest) (*model.PacienteCompleto, error)
	Update(ctx context.Context, id int64, req *model.UpdatePacienteRequest) (*model.PacienteCompleto, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/pacientes", h.Search)
	r.GET("/paciente/:id", h.Get)
	r.POST("/paciente", h.Create)
	r.PATCH("/paciente/:id", h.Update)
	r.DELETE("/paciente/:id", h.Delete)
}

// RegisterProtectedRoutes wires the sensitive read path behind the guard.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/paciente/:id/privado", h.GetPrivado)
}

// Search lists active pacientes, optionally narrowed by exact id and
// case-insensitive substring on nome.
func (h *Handler) Search(c *gin.Context) {
	var filters model.PacienteFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.RespondError(c, apperrors.BadRequest("filtros inválidos", err))
		return
	}

	pacientes, err := h.service.Search(c.Request.Context(), &filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pacientes)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	paciente, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paciente)
}

func (h *Handler) GetPrivado(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	paciente, err := h.service.GetCompleto(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paciente)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	paciente, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, paciente)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	var req model.UpdatePacienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	paciente, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paciente)
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
