package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adira_backend/internal/auth"
	"adira_backend/internal/handlers"
	"adira_backend/internal/middleware"
	"adira_backend/internal/models"
	"adira_backend/internal/repositories"
	"adira_backend/internal/services"
	"adira_backend/internal/services/dto"
	"adira_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Заглушки сервисов: здесь проверяется контракт маршрутов
// (какие эндпоинты за каким middleware), а не бизнес-логика.

type stubAuthService struct{}

func (stubAuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return &dto.RegisterResponse{User: &dto.UserResponse{}}, nil
}

func (stubAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{}, nil
}

func (stubAuthService) RefreshToken(refreshToken string) (*dto.RefreshResponse, error) {
	return &dto.RefreshResponse{}, nil
}

func (stubAuthService) Logout(refreshToken string) error { return nil }

func (stubAuthService) VerifyEmail(token string) (*services.VerifyEmailResult, error) {
	return &services.VerifyEmailResult{}, nil
}

type stubUserService struct{}

func (stubUserService) GetProfile(userID string) (*dto.UserResponse, error) {
	return &dto.UserResponse{}, nil
}

func (stubUserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{}, nil
}

type stubProductService struct{}

func (stubProductService) List() ([]dto.ProductResponse, error) { return nil, nil }

func (stubProductService) Get(id string) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{}, nil
}

func (stubProductService) Create(req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{}, nil
}

func (stubProductService) Update(id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{}, nil
}

func (stubProductService) Delete(id string) error { return nil }

type emptyUserRepo struct{}

func (emptyUserRepo) Create(user *models.User) error { return nil }

func (emptyUserRepo) FindByID(id string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (emptyUserRepo) FindByLoginIdentity(identity string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (emptyUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (emptyUserRepo) ConsumeVerificationToken(token string) (bool, error) { return false, nil }

func (emptyUserRepo) UpdateProfile(user *models.User) error { return nil }

func newRoutesTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := auth.NewTokenIssuer("secret", time.Hour, 24*time.Hour)
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, stubAuthService{}),
		ProfileHandler: handlers.NewProfileHandler(base, stubUserService{}),
		ProductHandler: handlers.NewProductHandler(base, stubProductService{}),
	}

	router := gin.New()
	RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(issuer), middleware.RequireStaff(emptyUserRepo{}))
	return router
}

// Logout работает без Authorization-заголовка: учетные данные -
// refresh-токен в теле, истекший access не блокирует отзыв сессии
func TestLogoutDoesNotRequireAccessToken(t *testing.T) {
	t.Parallel()

	router := newRoutesTestRouter(t)

	body := bytes.NewReader([]byte(`{"refresh_token":"some-refresh"}`))
	req := httptest.NewRequest("POST", "/api/auth/logout/", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully logged out.")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	router := newRoutesTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/api/auth/profile/"},
		{"PATCH", "/api/auth/profile/"},
		{"GET", "/api/products/"},
		{"GET", "/api/products/p1/"},
		{"POST", "/api/products/"},
		{"PATCH", "/api/products/p1/"},
		{"DELETE", "/api/products/p1/"},
	}
	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestPublicRoutes(t *testing.T) {
	t.Parallel()

	router := newRoutesTestRouter(t)

	t.Run("healthz", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh without auth header", func(t *testing.T) {
		t.Parallel()
		body := bytes.NewReader([]byte(`{"refresh":"some-refresh"}`))
		req := httptest.NewRequest("POST", "/api/auth/token/refresh/", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
