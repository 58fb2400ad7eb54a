package email

// Provider is the outbound-email boundary. Notification content and
// delivery guarantees live behind it; the services only hand over messages.
type Provider interface {
	Send(email *Email) error
	SendWelcome(to, displayName string) error
	Close() error
}
