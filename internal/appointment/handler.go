package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/logging"
)

const (
	msgSent        = "Thank you! Your consultation request has been sent."
	msgFailed      = "An error occurred. Please try again later."
	msgConfigError = "Server configuration error. Could not send message."
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logging.OrNop(logger)}
}

// Schedule handles POST /schedule.
func (h *Handler) Schedule(c *gin.Context) {
	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email, phone and date are required"})
		return
	}

	_, err := h.service.Schedule(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": msgSent})
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email, phone and date are required"})
	case errors.Is(err, ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid email address"})
	case errors.Is(err, ErrMailerNotConfigured):
		h.logger.Error("smtp not configured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgConfigError})
	case errors.Is(err, ErrAuthFailed):
		h.logger.Error("smtp authentication failure, check credentials or app password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgFailed})
	default:
		h.logger.Error("schedule failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgFailed})
	}
}
