package services

import (
	"giglink_backend/internal/email"
	"giglink_backend/internal/repositories"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Auth        *AuthService
	User        *UserService
	Job         *JobService
	Application *ApplicationService
	Connection  *ConnectionService
	Feed        *FeedService
	Message     *MessageService
}

type Repositories struct {
	User        repositories.UserRepository
	Profile     repositories.ProfileRepository
	Job         repositories.JobRepository
	Application repositories.ApplicationRepository
	Connection  repositories.ConnectionRepository
	Post        repositories.PostRepository
	Message     repositories.MessageRepository
}

func NewServiceContainer(repos Repositories, emailSender email.Provider, discoverLimit int) *ServiceContainer {
	return &ServiceContainer{
		Auth:        NewAuthService(repos.User, repos.Profile, emailSender),
		User:        NewUserService(repos.User, repos.Profile),
		Job:         NewJobService(repos.Job),
		Application: NewApplicationService(repos.Application, repos.Job),
		Connection:  NewConnectionService(repos.Connection, repos.User, discoverLimit),
		Feed:        NewFeedService(repos.Post),
		Message:     NewMessageService(repos.Message, repos.User),
	}
}
