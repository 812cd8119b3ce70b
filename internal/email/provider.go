package email

import "fmt"

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое текстовое письмо
	Send(to, subject, body string) error

	// SendVerification отправляет письмо верификации email
	SendVerification(to, firstName, verificationURL string) error
}

// Config содержит конфигурацию SMTP сервера
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Validate проверяет минимально необходимую конфигурацию
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// VerificationSubject - тема письма верификации
const VerificationSubject = "Verify your email address"

// VerificationBody строит текстовое тело письма верификации
func VerificationBody(firstName, verificationURL string) string {
	return fmt.Sprintf("Hi, %s, Please click the following link to verify your email address: %s", firstName, verificationURL)
}
