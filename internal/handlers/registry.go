package handlers

import (
	"giglink_backend/internal/services"
	"giglink_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Connection  *ConnectionHandler
	Feed        *FeedHandler
	Message     *MessageHandler
	Health      *HealthHandler
}

func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.Auth),
		User:        NewUserHandler(base, sc.User),
		Job:         NewJobHandler(base, sc.Job),
		Application: NewApplicationHandler(base, sc.Application),
		Connection:  NewConnectionHandler(base, sc.Connection),
		Feed:        NewFeedHandler(base, sc.Feed),
		Message:     NewMessageHandler(base, sc.Message),
		Health:      NewHealthHandler(base),
	}
}
