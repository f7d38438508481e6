package repositories

import (
	"context"

	"github.com/uca-prep/registration-service/internal/models"
)

// CourseLinkRepository covers lookups and admin CRUD over course_links.
type CourseLinkRepository interface {
	Create(ctx context.Context, link *models.CourseLink) error
	GetByID(ctx context.Context, id string) (*models.CourseLink, error)

	// GetByPlanAndCategory returns the first row matching the exact pair,
	// or nil when no row matches. Duplicate pairs are possible in the
	// schema; first match wins.
	GetByPlanAndCategory(ctx context.Context, planType, category string) (*models.CourseLink, error)

	// List returns all course links ordered by plan type.
	List(ctx context.Context) ([]*models.CourseLink, error)

	Update(ctx context.Context, link *models.CourseLink) error
	Delete(ctx context.Context, id string) error
}
