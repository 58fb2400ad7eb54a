package services

import (
	"giglink_backend/internal/authz"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

// ConnectionService owns the network-connection lifecycle. Records are stored
// directionally but every accepted relationship is reported symmetrically;
// the pair_key index keeps concurrent requests for one pair down to a single
// active record.
type ConnectionService struct {
	connectionRepo repositories.ConnectionRepository
	userRepo       repositories.UserRepository
	discoverLimit  int
}

func NewConnectionService(
	connectionRepo repositories.ConnectionRepository,
	userRepo repositories.UserRepository,
	discoverLimit int,
) *ConnectionService {
	if discoverLimit <= 0 {
		discoverLimit = 50
	}
	return &ConnectionService{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		discoverLimit:  discoverLimit,
	}
}

// Request creates a pending connection from requesterID to targetID. When an
// active record for the pair already exists the conflict carries it in the
// error details, so the caller learns the existing record id instead of
// guessing.
func (s *ConnectionService) Request(requesterID, targetID string) (*models.Connection, error) {
	if requesterID == targetID {
		return nil, apperrors.ErrSelfConnection
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	conn := &models.Connection{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      models.ConnectionStatusPending,
	}

	if err := s.connectionRepo.Create(conn); err != nil {
		if apperrors.Is(err, repositories.ErrConnectionAlreadyExists) {
			existing, findErr := s.connectionRepo.FindActiveByPair(requesterID, targetID)
			if findErr != nil {
				return nil, apperrors.ErrConnectionExists
			}
			return nil, apperrors.ErrConnectionExists.WithDetails(existing)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("connection requested",
		"connection_id", conn.ID, "requester_id", requesterID, "target_id", targetID)
	return conn, nil
}

// Accept moves a pending request to accepted. Only the record's target may
// call this.
func (s *ConnectionService) Accept(connectionID, callerID string) (*models.Connection, error) {
	conn, err := s.connectionRepo.FindByID(connectionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if d := authz.CanActOnConnection(conn.TargetID, callerID); !d.Allowed {
		return nil, apperrors.ErrNotConnectionTarget
	}

	updated, err := s.connectionRepo.Accept(conn.ID)
	if err != nil {
		// Already accepted, or deleted between the read and the update.
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("connection accepted", "connection_id", conn.ID, "target_id", callerID)
	return updated, nil
}

// Reject deletes the record. Rejection is terminal by removal, so the pair
// is free to request again afterwards.
func (s *ConnectionService) Reject(connectionID, callerID string) error {
	conn, err := s.connectionRepo.FindByID(connectionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrConnectionNotFound
		}
		return apperrors.InternalError(err)
	}

	if d := authz.CanActOnConnection(conn.TargetID, callerID); !d.Allowed {
		return apperrors.ErrNotConnectionTarget
	}

	if err := s.connectionRepo.Delete(conn.ID); err != nil {
		if apperrors.Is(err, repositories.ErrConnectionNotFound) {
			return apperrors.ErrConnectionNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("connection rejected", "connection_id", conn.ID, "target_id", callerID)
	return nil
}

// ConnectionsOf lists userID's accepted connections as the other party on
// each record.
func (s *ConnectionService) ConnectionsOf(userID string) ([]dto.ConnectionView, error) {
	conns, err := s.connectionRepo.ListAcceptedFor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ConnectionView, 0, len(conns))
	for i := range conns {
		views = append(views, dto.ConnectionView{
			ID:          conns[i].ID,
			UserID:      conns[i].OtherParty(userID),
			RequesterID: conns[i].RequesterID,
			Status:      conns[i].Status,
		})
	}
	return views, nil
}

// PendingRequestsFor lists incoming requests awaiting userID's decision.
func (s *ConnectionService) PendingRequestsFor(userID string) ([]models.Connection, error) {
	conns, err := s.connectionRepo.ListPendingFor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return conns, nil
}

// Discover proposes accounts with no active record involving userID. The
// repository orders candidates deterministically, so repeated calls over an
// unchanged store return the same set.
func (s *ConnectionService) Discover(userID string) ([]models.User, error) {
	users, err := s.connectionRepo.DiscoverCandidates(userID, s.discoverLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
