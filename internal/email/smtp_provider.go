package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through a plain SMTP relay via gomail.
type SMTPProvider struct {
	config *Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *Config) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.From
	}
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendWelcome(to, displayName string) error {
	if displayName == "" {
		displayName = "there"
	}
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to GigLink",
		Body:    fmt.Sprintf("Hi %s,\n\nYour GigLink account is ready. Complete your profile to start connecting.\n", displayName),
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
