package email

// Email is a single outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Config carries the SMTP settings from the application config.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}
