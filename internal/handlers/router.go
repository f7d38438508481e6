package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	dashboardHandler *DashboardHandler
	adminHandler     *AdminHandler
	serviceManager   services.ServiceManager
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Registration(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.CourseLink(), logger),
		adminHandler:     NewAdminHandler(serviceManager.Admin(), logger),
		serviceManager:   serviceManager,
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", hm.authHandler.Register)
			auth.POST("/login", hm.authHandler.Login)
			auth.POST("/logout", hm.authHandler.Logout)
			auth.GET("/session", hm.authHandler.Session)
		}

		v1.GET("/plans", hm.dashboardHandler.ListPlans)

		dashboard := v1.Group("/dashboard")
		dashboard.Use(SessionMiddleware())
		{
			dashboard.GET("/course-links", hm.dashboardHandler.GetCourseLinks)
		}

		// Admin routes resolve the session when present; membership is
		// re-checked in the service on every call.
		admin := v1.Group("/admin")
		admin.Use(OptionalSessionMiddleware())
		{
			admin.GET("/users", hm.adminHandler.ListUsers)
			admin.POST("/users", hm.adminHandler.CreateUser)
			admin.PUT("/users/:id", hm.adminHandler.UpdateUser)
			admin.DELETE("/users/:id", hm.adminHandler.DeleteUser)

			admin.GET("/course-links", hm.adminHandler.ListCourseLinks)
			admin.POST("/course-links", hm.adminHandler.CreateCourseLink)
			admin.PUT("/course-links/:id", hm.adminHandler.UpdateCourseLink)
			admin.DELETE("/course-links/:id", hm.adminHandler.DeleteCourseLink)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "registration-service",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "registration-service",
		})
	})
}
