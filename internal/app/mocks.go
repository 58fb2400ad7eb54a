package app

import "giglink_backend/internal/email"

// MockEmailProvider is used when no SMTP host is configured (local
// development, tests).
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error { return nil }

func (m *MockEmailProvider) SendWelcome(to, displayName string) error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
