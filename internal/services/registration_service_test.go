package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/repositories"
	"github.com/uca-prep/registration-service/internal/validator"
)

// ===== IN-MEMORY FAKES =====

type fakeRepository struct {
	users  *fakeUserRepo
	links  *fakeCourseLinkRepo
	admins *fakeAdminRepo
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:  &fakeUserRepo{byID: map[string]*models.User{}},
		links:  &fakeCourseLinkRepo{},
		admins: &fakeAdminRepo{emails: map[string]bool{}},
	}
}

func (f *fakeRepository) User() repositories.UserRepository             { return f.users }
func (f *fakeRepository) CourseLink() repositories.CourseLinkRepository { return f.links }
func (f *fakeRepository) Admin() repositories.AdminRepository           { return f.admins }
func (f *fakeRepository) Ping(ctx context.Context) error                { return nil }
func (f *fakeRepository) Close() error                                  { return nil }

type fakeUserRepo struct {
	byID      map[string]*models.User
	createErr error
	existsErr error
	queried   bool
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.queried = true
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.byID)+1)
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.queried = true
	user, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	f.queried = true
	for _, user := range f.byID {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	f.queried = true
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, user := range f.byID {
		if user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	f.queried = true
	out := make([]*models.User, 0, len(f.byID))
	for _, user := range f.byID {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.queried = true
	if _, ok := f.byID[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.queried = true
	delete(f.byID, id)
	return nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Send(ctx context.Context, message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:   "Abebe",
		LastName:    "Kebede",
		Phone:       "0912345678",
		Institution: "Addis Ababa University",
		PlanType:    string(models.PlanFreshmanPlus),
		Category:    "Semester 1",
	}
}

// ===== REGISTER =====

var applicationNumberPattern = regexp.MustCompile(`^UCA\d{8}$`)

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newFakeRepository()
		n := &fakeNotifier{}
		service := NewRegistrationService(repo, n, testLogger(), validator.New())

		user, err := service.Register(ctx, validRegisterRequest())
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if !applicationNumberPattern.MatchString(user.ApplicationNumber) {
			t.Errorf("application number %q does not match UCA + 8 digits", user.ApplicationNumber)
		}
		if len(repo.users.byID) != 1 {
			t.Errorf("expected 1 stored user, got %d", len(repo.users.byID))
		}
		if len(n.messages) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(n.messages))
		}
		if !strings.Contains(n.messages[0], "New Registration") {
			t.Errorf("notification missing title: %q", n.messages[0])
		}
		if !strings.Contains(n.messages[0], user.ApplicationNumber) {
			t.Errorf("notification missing application number: %q", n.messages[0])
		}
		if !strings.Contains(n.messages[0], "Abebe Kebede") {
			t.Errorf("notification missing name: %q", n.messages[0])
		}
	})

	t.Run("invalid phone rejected before store access", func(t *testing.T) {
		repo := newFakeRepository()
		service := NewRegistrationService(repo, &fakeNotifier{}, testLogger(), validator.New())

		req := validRegisterRequest()
		req.Phone = "0812345678"

		_, err := service.Register(ctx, req)
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
		if repo.users.queried {
			t.Error("store was queried for a request with an invalid phone")
		}
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		service := NewRegistrationService(newFakeRepository(), &fakeNotifier{}, testLogger(), validator.New())

		req := validRegisterRequest()
		req.FirstName = ""

		_, err := service.Register(ctx, req)
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		repo := newFakeRepository()
		n := &fakeNotifier{}
		service := NewRegistrationService(repo, n, testLogger(), validator.New())

		if _, err := service.Register(ctx, validRegisterRequest()); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		_, err := service.Register(ctx, validRegisterRequest())
		if !errors.Is(err, ErrPhoneExists) {
			t.Fatalf("expected ErrPhoneExists, got %v", err)
		}
		if len(repo.users.byID) != 1 {
			t.Errorf("expected a single stored user, got %d", len(repo.users.byID))
		}
		if len(n.messages) != 1 {
			t.Errorf("expected no notification for the rejected attempt, got %d total", len(n.messages))
		}
	})

	t.Run("unique index conflict maps to phone exists", func(t *testing.T) {
		repo := newFakeRepository()
		repo.users.createErr = repositories.ErrDuplicate
		service := NewRegistrationService(repo, &fakeNotifier{}, testLogger(), validator.New())

		_, err := service.Register(ctx, validRegisterRequest())
		if !errors.Is(err, ErrPhoneExists) {
			t.Fatalf("expected ErrPhoneExists, got %v", err)
		}
	})

	t.Run("notifier failure does not fail registration", func(t *testing.T) {
		repo := newFakeRepository()
		n := &fakeNotifier{err: errors.New("telegram unreachable")}
		service := NewRegistrationService(repo, n, testLogger(), validator.New())

		user, err := service.Register(ctx, validRegisterRequest())
		if err != nil {
			t.Fatalf("Register failed on notifier error: %v", err)
		}
		if user == nil {
			t.Fatal("expected a registered user")
		}
		if len(repo.users.byID) != 1 {
			t.Errorf("expected the user to be stored, got %d rows", len(repo.users.byID))
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		repo := newFakeRepository()
		repo.users.existsErr = errors.New("connection reset")
		service := NewRegistrationService(repo, &fakeNotifier{}, testLogger(), validator.New())

		_, err := service.Register(ctx, validRegisterRequest())
		if err == nil || errors.Is(err, ErrPhoneExists) || errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected the store error to propagate, got %v", err)
		}
	})
}

// ===== LOGIN =====

func TestRegistrationService_Login(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository()
	service := NewRegistrationService(repo, &fakeNotifier{}, testLogger(), validator.New())

	registered, err := service.Register(ctx, validRegisterRequest())
	if err != nil {
		t.Fatalf("setup registration failed: %v", err)
	}

	t.Run("known phone", func(t *testing.T) {
		user, err := service.Login(ctx, "0912345678")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("expected user %q, got %q", registered.ID, user.ID)
		}
	})

	t.Run("unknown phone", func(t *testing.T) {
		_, err := service.Login(ctx, "0799999999")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		_, err := service.Login(ctx, "12345")
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})
}

func TestGenerateApplicationNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		number := generateApplicationNumber()
		if !applicationNumberPattern.MatchString(number) {
			t.Fatalf("generated %q, want UCA followed by 8 digits", number)
		}
	}
}
