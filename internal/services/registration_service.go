package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/notifier"
	"github.com/uca-prep/registration-service/internal/repositories"
	"github.com/uca-prep/registration-service/internal/validator"
)

type registrationService struct {
	repo      repositories.Repository
	notifier  notifier.Notifier
	logger    *slog.Logger
	validator *validator.Validator
}

func NewRegistrationService(repo repositories.Repository, n notifier.Notifier, logger *slog.Logger, v *validator.Validator) RegistrationService {
	return &registrationService{
		repo:      repo,
		notifier:  n,
		logger:    logger,
		validator: v,
	}
}

// generateApplicationNumber produces a human-shareable registration
// identifier. Not guaranteed unique; the phone number is the identity key.
func generateApplicationNumber() string {
	return fmt.Sprintf("UCA%d", rand.IntN(90000000)+10000000)
}

func (s *registrationService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	// Phone format is checked before any store access.
	if !validator.ValidPhone(req.Phone) {
		return nil, ErrInvalidPhone
	}
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	exists, err := s.repo.User().ExistsByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneExists
	}

	user := &models.User{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Institution:       req.Institution,
		PlanType:          models.PlanType(req.PlanType),
		Category:          req.Category,
		ApplicationNumber: generateApplicationNumber(),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		// The unique index on phone closes the check-then-insert window:
		// a concurrent registration that slipped past the check above
		// still surfaces as a conflict, not a duplicate row.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPhoneExists
		}
		return nil, err
	}

	s.notifyRegistration(ctx, user, "New Registration")

	return user, nil
}

func (s *registrationService) Login(ctx context.Context, phone string) (*models.User, error) {
	if !validator.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	user, err := s.repo.User().GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// notifyRegistration fires the operator notification. Failures are logged
// and swallowed; the registration result never depends on delivery.
func (s *registrationService) notifyRegistration(ctx context.Context, user *models.User, title string) {
	message := fmt.Sprintf(
		"🎉 %s 🎉\n\n"+
			"Application Number: %s\n"+
			"Name: %s %s\n"+
			"Phone: %s\n"+
			"Institution: %s\n"+
			"Plan: %s\n"+
			"Category: %s",
		title,
		user.ApplicationNumber,
		user.FirstName, user.LastName,
		user.Phone,
		user.Institution,
		user.PlanType,
		user.Category,
	)

	if err := s.notifier.Send(ctx, message); err != nil {
		s.logger.Error("failed to send registration notification",
			"error", err,
			"application_number", user.ApplicationNumber,
		)
	}
}
