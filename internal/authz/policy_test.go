package authz

import (
	"testing"

	"giglink_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

const (
	applicantID = "11111111-1111-1111-1111-111111111111"
	employerID  = "22222222-2222-2222-2222-222222222222"
	strangerID  = "33333333-3333-3333-3333-333333333333"
)

func TestApplicationRole(t *testing.T) {
	assert.Equal(t, RoleApplicant, ApplicationRole(applicantID, employerID, applicantID))
	assert.Equal(t, RoleEmployer, ApplicationRole(applicantID, employerID, employerID))
	assert.Equal(t, RoleNone, ApplicationRole(applicantID, employerID, strangerID))
}

func TestCanTransitionApplication(t *testing.T) {
	tests := []struct {
		name      string
		caller    string
		requested models.ApplicationStatus
		allowed   bool
		reason    string
	}{
		{"applicant may complete", applicantID, models.ApplicationStatusCompleted, true, ""},
		{"applicant may not accept own application", applicantID, models.ApplicationStatusAccepted, false, ReasonApplicantOnlyDone},
		{"applicant may not reject own application", applicantID, models.ApplicationStatusRejected, false, ReasonApplicantOnlyDone},
		{"employer may move to interviewing", employerID, models.ApplicationStatusInterviewing, true, ""},
		{"employer may accept", employerID, models.ApplicationStatusAccepted, true, ""},
		{"employer may reject", employerID, models.ApplicationStatusRejected, true, ""},
		{"employer may move back to pending", employerID, models.ApplicationStatusPending, true, ""},
		{"employer may not complete", employerID, models.ApplicationStatusCompleted, false, ReasonEmployerNotDone},
		{"third party may not transition", strangerID, models.ApplicationStatusInterviewing, false, ReasonNotParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanTransitionApplication(applicantID, employerID, tt.caller, tt.requested)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestCanWithdrawApplication(t *testing.T) {
	assert.True(t, CanWithdrawApplication(applicantID, applicantID).Allowed)

	d := CanWithdrawApplication(applicantID, employerID)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotApplicant, d.Reason)

	d = CanWithdrawApplication(applicantID, strangerID)
	assert.False(t, d.Allowed)
}

func TestCanActOnConnection(t *testing.T) {
	target := "aaaa"
	assert.True(t, CanActOnConnection(target, target).Allowed)

	d := CanActOnConnection(target, "bbbb")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotTarget, d.Reason)
}
