// Package authz is the single policy point for both relationship lifecycles
// (job applications and network connections). Roles are never stored: every
// function here derives the caller's role from the record it is acting on,
// fresh on each call. Services translate a Denied decision into a 403; the
// reasons below are the complete error vocabulary for both lifecycles.
package authz

import (
	"giglink_backend/internal/models"
)

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Denial reasons. Kept as constants so services and tests share one
// vocabulary instead of re-phrasing per endpoint.
const (
	ReasonNotParty          = "caller is not a party to this application"
	ReasonApplicantOnlyDone = "applicants may only mark their application as completed"
	ReasonEmployerNotDone   = "only the applicant may mark an application as completed"
	ReasonNotApplicant      = "only the applicant may withdraw an application"
	ReasonNotTarget         = "only the recipient of a connection request may act on it"
)

// Role is the caller's relationship to a specific application, derived from
// the record and its job on every call.
type Role int

const (
	RoleNone Role = iota
	RoleApplicant
	RoleEmployer
)

// ApplicationRole resolves the caller against an application's two parties.
// The applicant id is checked first; an employer applying to their own job is
// prevented at submission time, so the two ids never collide here.
func ApplicationRole(applicantID, employerID, callerID string) Role {
	switch callerID {
	case applicantID:
		return RoleApplicant
	case employerID:
		return RoleEmployer
	default:
		return RoleNone
	}
}

// CanTransitionApplication decides whether callerID may move an application
// between applicantID and the job owner employerID into requested.
//
// Employers move applications freely among pending, interviewing, accepted
// and rejected — there is intentionally no enforced ordering, and completed
// is not terminal. The completed status is reserved for the applicant
// signalling the work is done.
func CanTransitionApplication(applicantID, employerID, callerID string, requested models.ApplicationStatus) Decision {
	switch ApplicationRole(applicantID, employerID, callerID) {
	case RoleApplicant:
		if requested != models.ApplicationStatusCompleted {
			return Deny(ReasonApplicantOnlyDone)
		}
		return Allow()
	case RoleEmployer:
		if requested == models.ApplicationStatusCompleted {
			return Deny(ReasonEmployerNotDone)
		}
		return Allow()
	default:
		return Deny(ReasonNotParty)
	}
}

// CanWithdrawApplication: withdrawal is the applicant's terminal removal.
func CanWithdrawApplication(applicantID, callerID string) Decision {
	if callerID != applicantID {
		return Deny(ReasonNotApplicant)
	}
	return Allow()
}

// CanActOnConnection: only the target of a pending request may accept or
// reject it.
func CanActOnConnection(targetID, callerID string) Decision {
	if callerID != targetID {
		return Deny(ReasonNotTarget)
	}
	return Allow()
}
