package models

import "time"

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time `gorm:"type:date"`
	PhoneNumber  string

	// Верификация email: verified=true всегда означает token=NULL
	EmailVerified          bool    `gorm:"not null;default:false"`
	EmailVerificationToken *string `gorm:"uniqueIndex"`

	// IsStaff дает право изменять каталог товаров
	IsStaff    bool      `gorm:"not null;default:false"`
	DateJoined time.Time `gorm:"not null"`
}

// RevokedToken - запись в списке отозванных refresh-токенов.
// Хранится jti, а не сам токен; просроченные записи вычищаются
// при каждом новом отзыве (без фоновых воркеров).
type RevokedToken struct {
	BaseModel
	JTI       string    `gorm:"uniqueIndex;not null"`
	UserID    string    `gorm:"index"`
	ExpiresAt time.Time `gorm:"not null"`
}
