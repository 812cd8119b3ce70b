package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateVerificationToken генерирует одноразовый токен верификации:
// 32 байта из crypto/rand в URL-safe кодировке
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

const minPasswordLength = 8

// Список самых частых паролей. Достаточно короткого набора:
// полный словарь здесь не нужен, правило отсекает очевидный мусор.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"admin123":    {},
	"welcome1":    {},
	"sunshine":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"trustno1":    {},
	"dragon123":   {},
	"monkey123":   {},
	"letmein1":    {},
	"abc12345":    {},
}

// ValidatePassword проверяет сложность пароля.
// Возвращает список причин отказа (пустой список - пароль принят):
// минимальная длина, не только цифры, не из списка частых паролей,
// не слишком похож на username/email.
func ValidatePassword(password string, identityFields ...string) []string {
	var reasons []string

	if len(password) < minPasswordLength {
		reasons = append(reasons, fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}

	if isEntirelyNumeric(password) {
		reasons = append(reasons, "This password is entirely numeric.")
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		reasons = append(reasons, "This password is too common.")
	}

	if tooSimilar(password, identityFields) {
		reasons = append(reasons, "The password is too similar to your other personal information.")
	}

	return reasons
}

func isEntirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// tooSimilar сравнивает пароль с идентификационными полями.
// Для email дополнительно проверяется локальная часть до '@'.
func tooSimilar(password string, fields []string) bool {
	p := strings.ToLower(password)

	var candidates []string
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		candidates = append(candidates, f)
		if at := strings.IndexByte(f, '@'); at > 0 {
			candidates = append(candidates, f[:at])
		}
	}

	for _, c := range candidates {
		if len(c) < 3 {
			continue
		}
		if strings.Contains(p, c) || strings.Contains(c, p) {
			return true
		}
	}
	return false
}
