package repositories

import (
	"errors"
	"time"

	"adira_backend/internal/models"

	"gorm.io/gorm"
)

// RevokedTokenRepository - список отозванных refresh-токенов (по jti)
type RevokedTokenRepository interface {
	// Revoke добавляет jti в список отозванных.
	// Повторный отзыв того же jti не является ошибкой
	Revoke(token *models.RevokedToken) error

	// IsRevoked проверяет, отозван ли jti
	IsRevoked(jti string) (bool, error)

	// CleanExpired удаляет записи, чьи refresh-токены уже истекли:
	// просроченный токен и так не пройдет проверку подписи по exp
	CleanExpired() error
}

type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository создает новый экземпляр RevokedTokenRepository
func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &revokedTokenRepository{db: db}
}

func (r *revokedTokenRepository) Revoke(token *models.RevokedToken) error {
	err := r.db.Create(token).Error
	if err != nil {
		// Конкурентный logout того же токена: запись уже есть,
		// результат тот же - токен отозван
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *revokedTokenRepository) CleanExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{}).Error
}
