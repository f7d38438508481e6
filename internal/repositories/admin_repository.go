package repositories

import (
	"context"
)

// AdminRepository reads the out-of-band provisioned admins table.
type AdminRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
