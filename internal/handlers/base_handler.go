package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string                     `json:"error"`
	Message string                     `json:"message,omitempty"`
	Details string                     `json:"details,omitempty"`
	Fields  validator.ValidationErrors `json:"fields,omitempty"`
}

// BaseHandler carries the shared logging and error mapping.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.FromContext(c, h.logger).Error(msg, args...)
}

// handleServiceError maps the service error taxonomy to HTTP. Every
// kind has a distinct outward signal; anything unexpected becomes a
// generic 500 without internal detail.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request validation failed",
			Fields:  validationErrs,
		})
		return
	}

	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthenticated",
			Message: "invalid credentials",
		})
		return
	}

	if repositories.IsDuplicateEmailError(err) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "duplicate_email",
			Message: "email is already registered",
		})
		return
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
		})
		return
	}

	if services.IsUpstreamError(err) {
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "upstream_failure",
			Message: "the generation service is unavailable",
		})
		return
	}

	h.LogError(c, err, "unhandled service error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an unexpected error occurred",
	})
}
