package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vitalkey/vitalkey-api/pkg/errors"
)

// ErrorResponse is the error payload shape for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{Code: status, Message: message}
}

// RespondError maps an application error to its HTTP status and renders it.
// Unknown error types become a 500 without leaking internals.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		c.AbortWithStatusJSON(appErr.StatusCode(), NewErrorResponse(appErr.StatusCode(), appErr.Message))
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse(http.StatusInternalServerError, "erro interno do servidor"))
}
