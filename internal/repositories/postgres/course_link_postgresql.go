package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/repositories"
)

type courseLinkRepository struct {
	db *gorm.DB
}

func NewCourseLinkRepository(db *gorm.DB) repositories.CourseLinkRepository {
	return &courseLinkRepository{db: db}
}

func (r *courseLinkRepository) Create(ctx context.Context, link *models.CourseLink) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create course link: %w", err)
	}
	return nil
}

func (r *courseLinkRepository) GetByID(ctx context.Context, id string) (*models.CourseLink, error) {
	var link models.CourseLink
	if err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course link %s: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get course link: %w", err)
	}
	return &link, nil
}

// GetByPlanAndCategory returns nil without an error when no row matches;
// the resolver treats a miss as a fallthrough, not a failure.
func (r *courseLinkRepository) GetByPlanAndCategory(ctx context.Context, planType, category string) (*models.CourseLink, error) {
	var link models.CourseLink
	err := r.db.WithContext(ctx).
		Where("plan_type = ? AND category = ?", planType, category).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course link for (%s, %s): %w", planType, category, err)
	}
	return &link, nil
}

func (r *courseLinkRepository) List(ctx context.Context) ([]*models.CourseLink, error) {
	var links []*models.CourseLink
	if err := r.db.WithContext(ctx).
		Order("plan_type ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list course links: %w", err)
	}
	return links, nil
}

func (r *courseLinkRepository) Update(ctx context.Context, link *models.CourseLink) error {
	if err := r.db.WithContext(ctx).Save(link).Error; err != nil {
		return fmt.Errorf("failed to update course link: %w", err)
	}
	return nil
}

func (r *courseLinkRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.CourseLink{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete course link: %w", err)
	}
	return nil
}
