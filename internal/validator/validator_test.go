package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionBody struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type actionBody struct {
	Action    string `json:"action" validate:"required,is-connection-action"`
	RequestID string `json:"request_id" validate:"required,uuid"`
}

type signupBody struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-user-role"`
}

func TestValidateApplicationStatus(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "interviewing", "accepted", "rejected", "completed"} {
		assert.NoError(t, v.Validate(&transitionBody{Status: status}), status)
	}

	err := v.Validate(&transitionBody{Status: "archived"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")

	// Empty value fails on required, not on the enum tag.
	err = v.Validate(&transitionBody{})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["status"])
}

func TestValidateConnectionAction(t *testing.T) {
	v := New()

	valid := &actionBody{Action: "accept", RequestID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}
	assert.NoError(t, v.Validate(valid))

	valid.Action = "reject"
	assert.NoError(t, v.Validate(valid))

	err := v.Validate(&actionBody{Action: "block", RequestID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "action")

	err = v.Validate(&actionBody{Action: "accept", RequestID: "not-a-uuid"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "request_id")
}

func TestValidateUserRole(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signupBody{Email: "a@b.dev", Role: "worker"}))
	assert.NoError(t, v.Validate(&signupBody{Email: "a@b.dev", Role: "employer"}))

	err := v.Validate(&signupBody{Email: "a@b.dev", Role: "admin"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "role")

	// Field names come from the json tags.
	err = v.Validate(&signupBody{Email: "not-an-email", Role: "worker"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "email")
}
