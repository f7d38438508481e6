package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uca-prep/registration-service/internal/models"
	"github.com/uca-prep/registration-service/internal/services"
	"github.com/uca-prep/registration-service/internal/utils"
)

type fakeRegistrationService struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginErr     error
}

func (f *fakeRegistrationService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerUser, nil
}

func (f *fakeRegistrationService) Login(ctx context.Context, phone string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}

func testHandlerLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func authRouter(service services.RegistrationService) *gin.Engine {
	h := NewAuthHandler(service, testHandlerLogger())
	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/session", h.Session)
	return router
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	user := &models.User{
		ID:                "user-1",
		FirstName:         "Abebe",
		Phone:             "0912345678",
		ApplicationNumber: "UCA12345678",
	}

	t.Run("success issues session", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{registerUser: user})

		body, _ := json.Marshal(models.RegisterRequest{
			FirstName: "Abebe",
			LastName:  "Kebede",
			Phone:     "0912345678",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeEnvelope(t, w)
		if !resp.Success {
			t.Errorf("expected success envelope, got error %q", resp.Error)
		}
		sessionCookieFrom(t, w)
	})

	t.Run("malformed body", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{registerUser: user})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader([]byte("{not json"))))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Success {
			t.Error("expected error envelope")
		}
		if resp.Error != "Invalid request body" {
			t.Errorf("error = %q, want Invalid request body", resp.Error)
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{registerErr: services.ErrPhoneExists})

		body, _ := json.Marshal(models.RegisterRequest{Phone: "0912345678"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{registerErr: services.ErrInvalidPhone})

		body, _ := json.Marshal(models.RegisterRequest{Phone: "1234"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{loginUser: &models.User{ID: "user-1", Phone: "0912345678"}})

		body, _ := json.Marshal(models.LoginRequest{Phone: "0912345678"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		sessionCookieFrom(t, w)
	})

	t.Run("unknown phone", func(t *testing.T) {
		router := authRouter(&fakeRegistrationService{loginErr: services.ErrUserNotFound})

		body, _ := json.Marshal(models.LoginRequest{Phone: "0799999999"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router := authRouter(&fakeRegistrationService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := sessionCookieFrom(t, w)
	if cookie.MaxAge >= 0 {
		t.Errorf("expected expired cookie, got max age %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	router := authRouter(&fakeRegistrationService{})

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if !resp.Success {
			t.Error("expected success envelope")
		}
		if resp.Data != nil {
			t.Errorf("expected null data, got %v", resp.Data)
		}
	})

	t.Run("with session", func(t *testing.T) {
		writer := gin.New()
		writer.GET("/", func(c *gin.Context) {
			WriteSession(c, &models.User{ID: "user-9", Phone: "0712345678"})
		})
		seed := httptest.NewRecorder()
		writer.ServeHTTP(seed, httptest.NewRequest(http.MethodGet, "/", nil))

		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		req.AddCookie(sessionCookieFrom(t, seed))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		resp := decodeEnvelope(t, w)
		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("expected user object in data, got %T", resp.Data)
		}
		if data["id"] != "user-9" {
			t.Errorf("data id = %v, want user-9", data["id"])
		}
	})
}
