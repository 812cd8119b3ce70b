package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Разрешенные символы username: буквы, цифры и @/./+/-/_
var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// registerCustomRules регистрирует кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска,
			// приложение не должно стартовать
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'username': допустимые символы имени пользователя
	mustRegister("username", validateUsername)
}

func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return usernameRe.MatchString(value)
}
