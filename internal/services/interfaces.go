package services

import (
	"context"

	"github.com/uca-prep/registration-service/internal/models"
)

// ===== SERVICE INTERFACES =====

type RegistrationService interface {
	// Register validates the request, enforces phone uniqueness, assigns
	// an application number and persists the user. The operator
	// notification is best effort and never fails the call.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// Login is an exact phone lookup; any match authenticates.
	Login(ctx context.Context, phone string) (*models.User, error)
}

type CourseLinkService interface {
	// Resolve finds the best-matching course link for a plan/category
	// pair using a three-tier fallback: exact match, then
	// (plan, "Default"), then ("Default", "Default"). A miss on all
	// tiers returns (nil, nil).
	Resolve(ctx context.Context, planType, category string) (*models.CourseLink, error)

	// Catalog returns the plan catalog in presentation order.
	Catalog() []models.PlanInfo
}

// AdminService gates every call on a fresh admin-membership check keyed
// by the session's email. Listing operations degrade to empty results
// for non-admins; mutating operations return ErrUnauthorized. The
// asymmetry mirrors the panel's established behavior.
type AdminService interface {
	IsAdmin(ctx context.Context, session *models.User) (bool, error)

	ListUsers(ctx context.Context, session *models.User) ([]*models.User, error)
	CreateUser(ctx context.Context, session *models.User, req *models.RegisterRequest) (*models.User, error)
	UpdateUser(ctx context.Context, session *models.User, id string, req *models.UserUpdateRequest) (*models.User, error)
	DeleteUser(ctx context.Context, session *models.User, id string) error

	ListCourseLinks(ctx context.Context, session *models.User) ([]*models.CourseLink, error)
	CreateCourseLink(ctx context.Context, session *models.User, req *models.CourseLinkCreateRequest) (*models.CourseLink, error)
	UpdateCourseLink(ctx context.Context, session *models.User, id string, req *models.CourseLinkUpdateRequest) (*models.CourseLink, error)
	DeleteCourseLink(ctx context.Context, session *models.User, id string) error
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Registration() RegistrationService
	CourseLink() CourseLinkService
	Admin() AdminService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
