package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/repositories"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return count > 0, nil
}
