package app

// MockEmailProvider используется для тестов и локальной разработки,
// когда SMTP не настроен.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, body string) error { return nil }

func (m *MockEmailProvider) SendVerification(to, firstName, verificationURL string) error {
	return nil
}
