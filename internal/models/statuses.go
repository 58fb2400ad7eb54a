package models

type UserStatus string
type UserRole string
type JobStatus string
type ApplicationStatus string
type ConnectionStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	// UserRole is the account kind chosen at signup. It gates route groups
	// (e.g. only employers create jobs); it is never consulted when deciding
	// who may act on an application or connection — those roles are derived
	// from the record itself on every call.
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"

	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending      ApplicationStatus = "pending"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusAccepted     ApplicationStatus = "accepted"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusCompleted    ApplicationStatus = "completed"

	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// EmployerApplicationStatuses are the states an employer may move an
// application between. There is deliberately no ordering among them.
var EmployerApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusInterviewing,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

func IsApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusInterviewing,
		ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusCompleted:
		return true
	default:
		return false
	}
}
