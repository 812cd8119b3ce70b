package repositories

import (
	"errors"
	"strings"
	"time"

	"adira_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// Дубликаты ловятся по unique-констрейнтам БД,
	// а не через предварительный SELECT (иначе гонка)
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

// UserRepository определяет интерфейс хранилища учетных записей.
// Пароль сюда попадает только в виде bcrypt-хеша.
type UserRepository interface {
	// Create вставляет пользователя одной операцией, вместе с токеном
	// верификации; уникальность username/email обеспечивается
	// констрейнтами БД
	Create(user *models.User) error

	// FindByID находит пользователя по id
	FindByID(id string) (*models.User, error)

	// FindByLoginIdentity находит пользователя по username ИЛИ email
	FindByLoginIdentity(identity string) (*models.User, error)

	// FindByVerificationToken находит пользователя по токену верификации
	FindByVerificationToken(token string) (*models.User, error)

	// ConsumeVerificationToken атомарно подтверждает email и очищает
	// токен. Возвращает false, если токен никому не принадлежит
	// (в том числе уже использован)
	ConsumeVerificationToken(token string) (bool, error)

	// UpdateProfile обновляет только профильные поля:
	// пароль, verified и staff через этот путь не меняются
	UpdateProfile(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return classifyDuplicate(err)
		}
		return err
	}
	return nil
}

// classifyDuplicate определяет, какое из уникальных полей столкнулось.
// Имя индекса присутствует в тексте ошибки драйвера
func classifyDuplicate(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return ErrDuplicateUsername
	case strings.Contains(msg, "email"):
		return ErrDuplicateEmail
	default:
		return ErrDuplicateIdentity
	}
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByLoginIdentity(identity string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ? OR email = ?", identity, identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByVerificationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email_verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ConsumeVerificationToken(token string) (bool, error) {
	// Один UPDATE: поиск и очистка токена не разделяются,
	// два конкурентных запроса не подтвердят email с одного токена
	result := r.db.Model(&models.User{}).
		Where("email_verification_token = ? AND email_verified = ?", token, false).
		Updates(map[string]interface{}{
			"email_verified":           true,
			"email_verification_token": nil,
			"updated_at":               time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) UpdateProfile(user *models.User) error {
	result := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"date_of_birth": user.DateOfBirth,
		"phone_number":  user.PhoneNumber,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
