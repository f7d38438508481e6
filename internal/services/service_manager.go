package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uca-prep/registration-service/internal/notifier"
	"github.com/uca-prep/registration-service/internal/repositories"
	"github.com/uca-prep/registration-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	notifier  notifier.Notifier
	logger    *slog.Logger
	validator *validator.Validator

	registrationService RegistrationService
	courseLinkService   CourseLinkService
	adminService        AdminService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(repo repositories.Repository, n notifier.Notifier, logger *slog.Logger, v *validator.Validator) ServiceManager {
	return &serviceManager{
		repo:      repo,
		notifier:  n,
		logger:    logger,
		validator: v,
	}
}

func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if sm.repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.notifier == nil {
		return fmt.Errorf("notifier is required")
	}

	sm.registrationService = NewRegistrationService(sm.repo, sm.notifier, sm.logger, sm.validator)
	sm.courseLinkService = NewCourseLinkService(sm.repo, sm.logger)
	sm.adminService = NewAdminService(sm.repo, sm.notifier, sm.logger, sm.validator)

	sm.initialized = true
	sm.logger.Info("services initialized")

	return nil
}

func (sm *serviceManager) Registration() RegistrationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.registrationService
}

func (sm *serviceManager) CourseLink() CourseLinkService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.courseLinkService
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.adminService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.shutdown = true
	sm.logger.Info("services shut down")

	return nil
}
