package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider - реализация Provider поверх gomail.
// Отправка синхронная: результат доставки возвращается вызывающему
// (регистрация сообщает клиенту, ушло письмо или нет).
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP отправитель
func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)

	return &SMTPProvider{
		config: config,
		dialer: d,
	}, nil
}

// Send отправляет простое текстовое письмо
func (s *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromEmail)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendVerification отправляет письмо со ссылкой верификации
func (s *SMTPProvider) SendVerification(to, firstName, verificationURL string) error {
	return s.Send(to, VerificationSubject, VerificationBody(firstName, verificationURL))
}
