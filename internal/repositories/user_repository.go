package repositories

import (
	"context"

	"github.com/uca-prep/registration-service/internal/models"
)

// UserRepository covers the point queries the portal needs over the users table.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// List returns all users, newest registration first.
	List(ctx context.Context) ([]*models.User, error)

	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
