package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.LoggerFromContext(c, h.logger).Error(msg, args...)
}

func (h *BaseHandler) RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Data:    data,
	})
}

func (h *BaseHandler) RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Unrecognized errors are store failures: logged, returned as a generic
// internal error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPhone):
		h.RespondError(c, http.StatusBadRequest, "Invalid phone number format")
	case errors.Is(err, services.ErrValidationFailed):
		h.RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPhoneExists):
		h.RespondError(c, http.StatusConflict, "Phone number already registered")
	case errors.Is(err, services.ErrUserNotFound):
		h.RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrCourseLinkNotFound):
		h.RespondError(c, http.StatusNotFound, "Course link not found")
	case errors.Is(err, services.ErrUnauthorized):
		h.RespondError(c, http.StatusUnauthorized, "Unauthorized")
	default:
		h.LogError(c, err, "unexpected service error")
		h.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
