package services

import (
	"fmt"
	"time"

	"adira_backend/internal/auth"
	"adira_backend/internal/email"
	"adira_backend/internal/logger"
	"adira_backend/internal/models"
	"adira_backend/internal/repositories"
	"adira_backend/internal/services/dto"
	"adira_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) (*VerifyEmailResult, error)
}

// VerifyEmailResult различает первое подтверждение и повторный
// заход по токену уже верифицированного пользователя
type VerifyEmailResult struct {
	AlreadyVerified bool
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	revokedRepo repositories.RevokedTokenRepository
	issuer      *auth.TokenIssuer
	provider    email.Provider
	baseURL     string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	revokedRepo repositories.RevokedTokenRepository,
	issuer *auth.TokenIssuer,
	provider email.Provider,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
		issuer:      issuer,
		provider:    provider,
		baseURL:     baseURL,
	}
}

// Register - регистрация нового пользователя.
// Создает неверифицированного пользователя, выдает токен верификации
// и отправляет письмо. Провал отправки не откатывает регистрацию.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if req.Password != req.Password2 {
		return nil, apperrors.ValidationError(map[string]interface{}{
			"password": "Password fields didn't match.",
		})
	}

	if reasons := auth.ValidatePassword(req.Password, req.Username, req.Email); len(reasons) > 0 {
		return nil, apperrors.ValidationError(map[string]interface{}{
			"password": reasons,
		})
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		// Формат уже проверен валидатором DTO
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]interface{}{
				"date_of_birth": "Must be a valid date in 2006-01-02 format",
			})
		}
		dob = &parsed
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateVerificationToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Токен верификации вставляется вместе с пользователем:
	// нет состояния "аккаунт есть, а подтвердить его нечем"
	user := &models.User{
		Username:               req.Username,
		Email:                  req.Email,
		PasswordHash:           hash,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		DateOfBirth:            dob,
		PhoneNumber:            req.PhoneNumber,
		EmailVerificationToken: &token,
		DateJoined:             time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrDuplicateUsername):
			return nil, apperrors.ErrUsernameAlreadyExists
		case apperrors.Is(err, repositories.ErrDuplicateEmail):
			return nil, apperrors.ErrEmailAlreadyExists
		case apperrors.Is(err, repositories.ErrDuplicateIdentity):
			return nil, apperrors.ErrIdentityAlreadyExists
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	emailSent := s.sendVerification(user, token)

	return &dto.RegisterResponse{
		User:      dto.NewUserResponse(user),
		Message:   "User registered successfully. Please check your email to verify your account.",
		EmailSent: emailSent,
	}, nil
}

// sendVerification отправляет письмо со ссылкой верификации.
// Токен уже лежит в БД: при проблемах с SMTP пользователь все равно
// сможет подтвердить email по переданной иным путем ссылке
func (s *AuthServiceImpl) sendVerification(user *models.User, token string) bool {
	verificationURL := fmt.Sprintf("%s/api/auth/verify-email/?token=%s", s.baseURL, token)

	if err := s.provider.SendVerification(user.Email, user.FirstName, verificationURL); err != nil {
		logger.Warn("Failed to send verification email", "error", err, "user_id", user.ID)
		return false
	}
	return true
}

// Login - аутентификация пользователя.
// Неизвестный аккаунт, неверный пароль и неподтвержденный email
// дают один и тот же ответ: состояние аккаунта снаружи не видно.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByLoginIdentity(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrAuthenticationFailed
	}

	pair, err := s.issuer.IssuePair(user)
	if err != nil {
		if apperrors.Is(err, auth.ErrNotVerified) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// RefreshToken - новый access по refresh-токену.
// Отозванный, просроченный и поддельный refresh неразличимы в ответе.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	revoked, err := s.revokedRepo.IsRevoked(claims.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if revoked {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	access, err := s.issuer.IssueAccess(user)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return &dto.RefreshResponse{Access: access}, nil
}

// Logout - отзыв refresh-токена.
// Некорректный токен дает ValidationError, а не 500
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return apperrors.NewBadRequestError("Token is invalid or expired")
	}

	revoked := &models.RevokedToken{
		JTI:    claims.ID,
		UserID: claims.Subject,
	}
	if claims.ExpiresAt != nil {
		revoked.ExpiresAt = claims.ExpiresAt.Time
	}

	if err := s.revokedRepo.Revoke(revoked); err != nil {
		return apperrors.InternalError(err)
	}

	// Попутная чистка истекших записей вместо фонового воркера
	if err := s.revokedRepo.CleanExpired(); err != nil {
		logger.Warn("Failed to clean expired revoked tokens", "error", err)
	}

	return nil
}

// VerifyEmail - подтверждение email по токену.
// Поиск и очистка токена атомарны; повторное использование
// уже потребленного токена дает NotFound
func (s *AuthServiceImpl) VerifyEmail(token string) (*VerifyEmailResult, error) {
	consumed, err := s.userRepo.ConsumeVerificationToken(token)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if consumed {
		return &VerifyEmailResult{AlreadyVerified: false}, nil
	}

	// UPDATE ничего не затронул. Если токен все же числится за
	// верифицированным пользователем (гонка/старое состояние) -
	// отвечаем идемпотентно "уже подтвержден"
	user, err := s.userRepo.FindByVerificationToken(token)
	if err == nil && user.EmailVerified {
		return &VerifyEmailResult{AlreadyVerified: true}, nil
	}

	return nil, apperrors.ErrInvalidVerificationToken
}
