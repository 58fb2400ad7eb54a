package validator

import (
	"log"

	"giglink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum rules used by request DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-connection-action", validateConnectionAction)
	mustRegister("is-job-status", validateJobStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleWorker, models.UserRoleEmployer:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsApplicationStatus(models.ApplicationStatus(value))
}

func validateConnectionAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "accept", "reject":
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusOpen, models.JobStatusClosed:
		return true
	default:
		return false
	}
}
