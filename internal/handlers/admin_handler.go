package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	admin services.AdminService
}

func NewAdminHandler(admin services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		admin:       admin,
	}
}

// ===== USER DIRECTORY =====

// ListUsers returns every registered user, newest first. Non-admin
// callers get an empty list, not an error.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "listing users")

	users, err := h.admin.ListUsers(c.Request.Context(), SessionUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, users)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "creating user", "phone", req.Phone)

	user, err := h.admin.CreateUser(c.Request.Context(), SessionUserFromContext(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "updating user", "user_id", id)

	user, err := h.admin.UpdateUser(c.Request.Context(), SessionUserFromContext(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	h.LogRequest(c, "deleting user", "user_id", id)

	if err := h.admin.DeleteUser(c.Request.Context(), SessionUserFromContext(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, nil)
}

// ===== COURSE LINKS =====

func (h *AdminHandler) ListCourseLinks(c *gin.Context) {
	h.LogRequest(c, "listing course links")

	links, err := h.admin.ListCourseLinks(c.Request.Context(), SessionUserFromContext(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, links)
}

func (h *AdminHandler) CreateCourseLink(c *gin.Context) {
	var req models.CourseLinkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "creating course link", "plan_type", req.PlanType, "category", req.Category)

	link, err := h.admin.CreateCourseLink(c.Request.Context(), SessionUserFromContext(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusCreated, link)
}

func (h *AdminHandler) UpdateCourseLink(c *gin.Context) {
	id := c.Param("id")

	var req models.CourseLinkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.LogRequest(c, "updating course link", "link_id", id)

	link, err := h.admin.UpdateCourseLink(c.Request.Context(), SessionUserFromContext(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, link)
}

func (h *AdminHandler) DeleteCourseLink(c *gin.Context) {
	id := c.Param("id")

	h.LogRequest(c, "deleting course link", "link_id", id)

	if err := h.admin.DeleteCourseLink(c.Request.Context(), SessionUserFromContext(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondSuccess(c, http.StatusOK, nil)
}
