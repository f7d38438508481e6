package services

import (
	"context"
	"log/slog"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/repositories"
)

type courseLinkService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCourseLinkService(repo repositories.Repository, logger *slog.Logger) CourseLinkService {
	return &courseLinkService{
		repo:   repo,
		logger: logger,
	}
}

// Resolve walks the fallback tiers in strict precedence order. The first
// hit wins and later tiers are not queried. No tier caches: every call
// goes back to the store. Only store failures return an error; a full
// miss is (nil, nil) and the caller renders a "coming soon" state.
func (s *courseLinkService) Resolve(ctx context.Context, planType, category string) (*models.CourseLink, error) {
	link, err := s.repo.CourseLink().GetByPlanAndCategory(ctx, planType, category)
	if err != nil {
		return nil, err
	}
	if link != nil {
		return link, nil
	}

	link, err = s.repo.CourseLink().GetByPlanAndCategory(ctx, planType, models.DefaultCategory)
	if err != nil {
		return nil, err
	}
	if link != nil {
		return link, nil
	}

	return s.repo.CourseLink().GetByPlanAndCategory(ctx, models.DefaultPlan, models.DefaultCategory)
}

func (s *courseLinkService) Catalog() []models.PlanInfo {
	plans := models.Plans()
	catalog := make([]models.PlanInfo, 0, len(plans))
	for _, plan := range plans {
		catalog = append(catalog, models.PlanInfo{
			PlanType:   plan,
			Categories: models.CategoriesFor(plan),
		})
	}
	return catalog
}
