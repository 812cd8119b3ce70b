package apperrors

import (
	"net/http"
)

/*
Предопределенные доменные ошибки аутентификации и каталога.
Сообщения для логина/refresh намеренно обобщенные: несуществующий
аккаунт, неверный пароль и неподтвержденный email неотличимы снаружи.
*/

// ErrAuthenticationFailed - единый ответ на любой провал логина.
// Текст совпадает для неизвестного пользователя, неверного пароля
// и неподтвержденного email (защита от перебора аккаунтов).
var ErrAuthenticationFailed = New(
	CodeInvalidCredentials,
	"auth",
	"No active account found with the given credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный, просроченный или отозванный refresh-токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Token is invalid or expired",
	http.StatusUnauthorized,
)

// ErrUsernameAlreadyExists - username уже занят
var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with that username already exists",
	http.StatusConflict,
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with that email already exists",
	http.StatusConflict,
)

// ErrIdentityAlreadyExists - дубликат, когда не удалось определить поле
var ErrIdentityAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with that username or email already exists",
	http.StatusConflict,
)

// ErrInvalidVerificationToken - токен верификации не найден
// (в том числе уже использованный: он очищается при подтверждении)
var ErrInvalidVerificationToken = New(
	CodeNotFound,
	"auth",
	"Invalid verification token.",
	http.StatusNotFound,
)

// ErrStaffRequired - операция доступна только персоналу
var ErrStaffRequired = New(
	CodeForbidden,
	"auth",
	"You do not have permission to perform this action",
	http.StatusForbidden,
)

// ErrProductNotFound - товар не найден
var ErrProductNotFound = New(
	CodeNotFound,
	"products",
	"Product not found",
	http.StatusNotFound,
)

// ErrUserNotFound - пользователь не найден
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)
