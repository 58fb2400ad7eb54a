package apperrors

import (
	"net/http"
)

// Factories and predeclared variables for the marketplace domain errors.
// Services return these; handlers map them to HTTP via HandleError.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and friends)
// into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists is the generic 409 for duplicate creation.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory with a custom domain and message.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job posting not found",
	http.StatusNotFound,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Only the job owner may modify this posting",
	http.StatusForbidden,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrDuplicateApplication: one live application per (job, applicant).
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// ErrOwnJobApplication keeps an employer from applying to their own posting,
// which would make the applicant and employer roles collide on one record.
var ErrOwnJobApplication = New(
	CodeInvalidOperation,
	"application",
	"Cannot apply to your own job posting",
	http.StatusBadRequest,
)

var ErrNotApplicationParty = New(
	CodeForbidden,
	"application",
	"You are not a party to this application",
	http.StatusForbidden,
)

// --- Connections ---

var ErrConnectionNotFound = New(
	CodeNotFound,
	"connection",
	"Connection request not found",
	http.StatusNotFound,
)

var ErrSelfConnection = New(
	CodeValidationFailed,
	"connection",
	"Cannot connect to yourself",
	http.StatusBadRequest,
)

// ErrConnectionExists: one active record per unordered pair. Handlers attach
// the existing record via WithDetails so repeated requests are idempotent
// from the caller's perspective.
var ErrConnectionExists = New(
	CodeConflict,
	"connection",
	"A connection between these accounts already exists",
	http.StatusConflict,
)

var ErrNotConnectionTarget = New(
	CodeForbidden,
	"connection",
	"Only the recipient of a connection request may act on it",
	http.StatusForbidden,
)

// --- Messaging / feed ---

var ErrNotPostAuthor = New(
	CodeForbidden,
	"feed",
	"Only the author may delete this post",
	http.StatusForbidden,
)

var ErrMessageToSelf = New(
	CodeValidationFailed,
	"message",
	"Cannot send a message to yourself",
	http.StatusBadRequest,
)
