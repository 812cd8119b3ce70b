package dto

// RegisterRequest - тело запроса регистрации.
// Пароль принимается дважды и в ответ никогда не попадает.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,max=150,username"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Password2   string `json:"password2" validate:"required"`
	FirstName   string `json:"first_name" validate:"max=150"`
	LastName    string `json:"last_name" validate:"max=150"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" validate:"max=32"`
}

// RegisterResponse - ответ 201: профиль + флаг отправки письма.
// Провал отправки не отменяет регистрацию, клиент просто предупрежден.
type RegisterResponse struct {
	User      *UserResponse `json:"user"`
	Message   string        `json:"message"`
	EmailSent bool          `json:"email_sent"`
}

// LoginRequest - username принимает и имя пользователя, и email
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - пара токенов (формат simplejwt: access/refresh)
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest - тело POST /api/auth/token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse - новый access-токен; refresh не ротируется
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutRequest - тело POST /api/auth/logout/
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
