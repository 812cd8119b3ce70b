package auth

import (
	"errors"
	"fmt"
	"time"

	"adira_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	// ErrNotVerified - пара токенов не выдается до подтверждения email
	ErrNotVerified = errors.New("email not verified")
	// ErrInvalidToken - подпись/формат/срок токена не прошли проверку
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongTokenType - access передан вместо refresh или наоборот
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims - полезная нагрузка наших JWT
type Claims struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	TokenType     string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair - access + refresh
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer выпускает и проверяет подписанные токены.
// Access stateless и короткоживущий; refresh несет jti
// и может быть отозван через список отозванных.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair выдает пару токенов. Для неверифицированного пользователя
// возвращает ErrNotVerified независимо от правильности пароля.
func (t *TokenIssuer) IssuePair(user *models.User) (*TokenPair, error) {
	if !user.EmailVerified {
		return nil, ErrNotVerified
	}

	access, err := t.sign(user, TokenTypeAccess, t.accessTTL, "")
	if err != nil {
		return nil, err
	}

	// jti нужен только refresh-токену: по нему работает отзыв
	refresh, err := t.sign(user, TokenTypeRefresh, t.refreshTTL, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess выдает новый access-токен (используется при refresh)
func (t *TokenIssuer) IssueAccess(user *models.User) (string, error) {
	if !user.EmailVerified {
		return "", ErrNotVerified
	}
	return t.sign(user, TokenTypeAccess, t.accessTTL, "")
}

// ParseAccess проверяет подпись и срок access-токена.
// Список отозванных не проверяется: access отзывается только
// истечением срока.
func (t *TokenIssuer) ParseAccess(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, TokenTypeAccess)
}

// ParseRefresh проверяет подпись и срок refresh-токена
func (t *TokenIssuer) ParseRefresh(tokenStr string) (*Claims, error) {
	return t.parse(tokenStr, TokenTypeRefresh)
}

func (t *TokenIssuer) sign(user *models.User, tokenType string, ttl time.Duration, jti string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username:      user.Username,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		TokenType:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *TokenIssuer) parse(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		// jwt.ErrTokenExpired и прочие остаются доступны через errors.Is
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}
