package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	courseLinks services.CourseLinkService
}

func NewDashboardHandler(courseLinks services.CourseLinkService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		courseLinks: courseLinks,
	}
}

// GetCourseLinks resolves the course links for the session's plan and
// category. A full resolver miss is a success with data null; the client
// renders a "coming soon" state.
func (h *DashboardHandler) GetCourseLinks(c *gin.Context) {
	session := SessionUserFromContext(c)
	if session == nil {
		h.RespondError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	h.LogRequest(c, "resolving course links",
		"plan_type", session.PlanType,
		"category", session.Category,
	)

	link, err := h.courseLinks.Resolve(c.Request.Context(), string(session.PlanType), session.Category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if link == nil {
		h.RespondSuccess(c, http.StatusOK, nil)
		return
	}

	h.RespondSuccess(c, http.StatusOK, link)
}

// ListPlans serves the plan catalog that drives the registration form.
func (h *DashboardHandler) ListPlans(c *gin.Context) {
	h.RespondSuccess(c, http.StatusOK, h.courseLinks.Catalog())
}
