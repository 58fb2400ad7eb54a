package dto

import "giglink_backend/internal/models"

type RequestConnectionRequest struct {
	TargetID string `json:"target_id" validate:"required,uuid"`
}

type ConnectionActionRequest struct {
	Action    string `json:"action" validate:"required,is-connection-action"`
	RequestID string `json:"request_id" validate:"required,uuid"`
}

// ConnectionView is the symmetric projection of a directional record: the
// caller always sees the other party.
type ConnectionView struct {
	ID          string                  `json:"id"`
	UserID      string                  `json:"user_id"`
	RequesterID string                  `json:"requester_id"`
	Status      models.ConnectionStatus `json:"status"`
}
