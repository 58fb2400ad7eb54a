package repositories

import (
	"errors"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrConnectionNotFound      = errors.New("connection not found")
	ErrConnectionAlreadyExists = errors.New("connection already exists")
)

type ConnectionRepository interface {
	// Create is an atomic insert-if-absent keyed on pair_key; the unique
	// index arbitrates concurrent requests for the same unordered pair.
	Create(conn *models.Connection) error
	FindByID(id string) (*models.Connection, error)
	FindActiveByPair(a, b string) (*models.Connection, error)
	Accept(id string) (*models.Connection, error)
	Delete(id string) error
	ListAcceptedFor(userID string) ([]models.Connection, error)
	ListPendingFor(userID string) ([]models.Connection, error)
	// DiscoverCandidates returns accounts with no active record (either
	// direction) involving userID, excluding userID itself. The ordering is
	// fixed for a given store state so repeated calls return the same set.
	DiscoverCandidates(userID string, limit int) ([]models.User, error)
}

type ConnectionRepositoryImpl struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &ConnectionRepositoryImpl{db: db}
}

func (r *ConnectionRepositoryImpl) Create(conn *models.Connection) error {
	if conn.PairKey == "" {
		conn.PairKey = models.PairKeyFor(conn.RequesterID, conn.TargetID)
	}
	if err := r.db.Create(conn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConnectionAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ConnectionRepositoryImpl) FindByID(id string) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.First(&conn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *ConnectionRepositoryImpl) FindActiveByPair(a, b string) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.First(&conn, "pair_key = ?", models.PairKeyFor(a, b)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// Accept moves pending → accepted. The status predicate keeps a second
// accept (or an accept after reject) from silently succeeding.
func (r *ConnectionRepositoryImpl) Accept(id string) (*models.Connection, error) {
	result := r.db.Model(&models.Connection{}).
		Where("id = ? AND status = ?", id, models.ConnectionStatusPending).
		Update("status", models.ConnectionStatusAccepted)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrConnectionNotFound
	}
	return r.FindByID(id)
}

func (r *ConnectionRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Connection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

func (r *ConnectionRepositoryImpl) ListAcceptedFor(userID string) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.
		Where("status = ? AND (requester_id = ? OR target_id = ?)",
			models.ConnectionStatusAccepted, userID, userID).
		Order("updated_at DESC").Find(&conns).Error
	return conns, err
}

func (r *ConnectionRepositoryImpl) ListPendingFor(userID string) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.
		Where("status = ? AND target_id = ?", models.ConnectionStatusPending, userID).
		Order("created_at DESC").Find(&conns).Error
	return conns, err
}

func (r *ConnectionRepositoryImpl) DiscoverCandidates(userID string, limit int) ([]models.User, error) {
	var users []models.User
	related := r.db.Model(&models.Connection{}).
		Select("CASE WHEN requester_id = ? THEN target_id ELSE requester_id END", userID).
		Where("requester_id = ? OR target_id = ?", userID, userID)

	err := r.db.Model(&models.User{}).
		Where("id <> ?", userID).
		Where("id NOT IN (?)", related).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
