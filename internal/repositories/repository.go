package repositories

import (
	"context"
)

// Repository aggregates the per-entity repositories behind one dependency.
type Repository interface {
	User() UserRepository
	CourseLink() CourseLinkRepository
	Admin() AdminRepository

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns repository lifecycle: connection checks on startup,
// health checks while serving, teardown on shutdown.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
