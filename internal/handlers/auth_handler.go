package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	registration services.RegistrationService
}

func NewAuthHandler(registration services.RegistrationService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  NewBaseHandler(logger),
		registration: registration,
	}
}

// Register creates a new student record and issues a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "registering user", "phone", req.Phone)

	user, err := h.registration.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := WriteSession(c, user); err != nil {
		h.LogError(c, err, "failed to write session cookie")
	}

	h.RespondSuccess(c, http.StatusCreated, user)
}

// Login authenticates by exact phone lookup and issues a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "logging in user", "phone", req.Phone)

	user, err := h.registration.Login(c.Request.Context(), req.Phone)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := WriteSession(c, user); err != nil {
		h.LogError(c, err, "failed to write session cookie")
	}

	h.RespondSuccess(c, http.StatusOK, user)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	ClearSession(c)
	h.RespondSuccess(c, http.StatusOK, nil)
}

// Session returns the current session snapshot, or data null when the
// caller holds no session.
func (h *AuthHandler) Session(c *gin.Context) {
	user := ReadSession(c)
	if user == nil {
		h.RespondSuccess(c, http.StatusOK, nil)
		return
	}
	h.RespondSuccess(c, http.StatusOK, user)
}
