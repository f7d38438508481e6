package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/notifier"
	"github.com/uca-prep/registration-service/internal/repositories"
	"github.com/uca-prep/registration-service/internal/validator"
)

type adminService struct {
	repo      repositories.Repository
	notifier  notifier.Notifier
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAdminService(repo repositories.Repository, n notifier.Notifier, logger *slog.Logger, v *validator.Validator) AdminService {
	return &adminService{
		repo:      repo,
		notifier:  n,
		logger:    logger,
		validator: v,
	}
}

// IsAdmin re-queries the admins table on every call. There is no cached
// membership flag; revoking a row takes effect on the next request.
func (s *adminService) IsAdmin(ctx context.Context, session *models.User) (bool, error) {
	if session == nil {
		return false, nil
	}
	return s.repo.Admin().ExistsByEmail(ctx, session.SessionEmail())
}

// ===== USER DIRECTORY =====

// ListUsers returns an empty list rather than an error for non-admin
// callers; mutating operations below return ErrUnauthorized instead.
func (s *adminService) ListUsers(ctx context.Context, session *models.User) ([]*models.User, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return []*models.User{}, nil
	}

	return s.repo.User().List(ctx)
}

func (s *adminService) CreateUser(ctx context.Context, session *models.User, req *models.RegisterRequest) (*models.User, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrUnauthorized
	}

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
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPhoneExists
		}
		return nil, err
	}

	s.notifyAdminRegistration(ctx, user)

	return user, nil
}

func (s *adminService) UpdateUser(ctx context.Context, session *models.User, id string, req *models.UserUpdateRequest) (*models.User, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Institution != nil {
		user.Institution = *req.Institution
	}
	if req.PlanType != nil {
		user.PlanType = models.PlanType(*req.PlanType)
	}
	if req.Category != nil {
		user.Category = *req.Category
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPhoneExists
		}
		return nil, err
	}

	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, session *models.User, id string) error {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrUnauthorized
	}

	return s.repo.User().Delete(ctx, id)
}

// ===== COURSE LINKS =====

func (s *adminService) ListCourseLinks(ctx context.Context, session *models.User) ([]*models.CourseLink, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return []*models.CourseLink{}, nil
	}

	return s.repo.CourseLink().List(ctx)
}

func (s *adminService) CreateCourseLink(ctx context.Context, session *models.User, req *models.CourseLinkCreateRequest) (*models.CourseLink, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	link := &models.CourseLink{
		PlanType:         req.PlanType,
		Category:         req.Category,
		MaterialsLink:    req.MaterialsLink,
		LiveSessionsLink: req.LiveSessionsLink,
	}

	if err := s.repo.CourseLink().Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *adminService) UpdateCourseLink(ctx context.Context, session *models.User, id string, req *models.CourseLinkUpdateRequest) (*models.CourseLink, error) {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrUnauthorized
	}

	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	link, err := s.repo.CourseLink().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseLinkNotFound
		}
		return nil, err
	}

	if req.MaterialsLink != nil {
		link.MaterialsLink = *req.MaterialsLink
	}
	if req.LiveSessionsLink != nil {
		link.LiveSessionsLink = *req.LiveSessionsLink
	}

	if err := s.repo.CourseLink().Update(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *adminService) DeleteCourseLink(ctx context.Context, session *models.User, id string) error {
	isAdmin, err := s.IsAdmin(ctx, session)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrUnauthorized
	}

	return s.repo.CourseLink().Delete(ctx, id)
}

func (s *adminService) notifyAdminRegistration(ctx context.Context, user *models.User) {
	message := fmt.Sprintf(
		"🎉 New Registration (Added by Admin) 🎉\n\n"+
			"Application Number: %s\n"+
			"Name: %s %s\n"+
			"Phone: %s\n"+
			"Institution: %s\n"+
			"Plan: %s\n"+
			"Category: %s",
		user.ApplicationNumber,
		user.FirstName, user.LastName,
		user.Phone,
		user.Institution,
		user.PlanType,
		user.Category,
	)

	if err := s.notifier.Send(ctx, message); err != nil {
		s.logger.Error("failed to send admin registration notification",
			"error", err,
			"application_number", user.ApplicationNumber,
		)
	}
}
