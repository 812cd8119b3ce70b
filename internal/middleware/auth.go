package middleware

import (
	"net/http"
	"strings"

	"adira_backend/internal/auth"
	"adira_backend/internal/logger"
	"adira_backend/internal/repositories"
	"adira_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT.
// Принимает только access-токены: refresh в заголовке Authorization
// отклоняется как неверный тип.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Authorization header missing or invalid"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidToken,
			})
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set("userID", claims.Subject)
		c.Set("claims", claims)

		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireStaff - middleware staff-доступа. Токен staff-флаг не несет:
// право проверяется по текущей записи пользователя в БД, так что
// снятие флага действует сразу, без ожидания истечения токена.
func RequireStaff(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Authentication required"),
			})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil || !auth.CanMutateProducts(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrStaffRequired,
			})
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
