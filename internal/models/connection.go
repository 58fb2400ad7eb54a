package models

import "time"

// Connection is the network relationship record. It is stored directionally
// (requester → target) but queried symmetrically once accepted.
//
// PairKey is the lexicographically ordered "a:b" of the two account ids; its
// unique index is what makes request() an atomic insert-if-absent for the
// unordered pair. Every persisted row is active (pending or accepted) —
// rejection deletes the row, so the index never blocks a fresh request after
// a rejection.
type Connection struct {
	ID          string           `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RequesterID string           `gorm:"type:uuid;index;not null" json:"requester_id"`
	TargetID    string           `gorm:"type:uuid;index;not null" json:"target_id"`
	PairKey     string           `gorm:"uniqueIndex;not null" json:"-"`
	Status      ConnectionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// PairKeyFor builds the order-independent key for two account ids.
func PairKeyFor(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}

// OtherParty returns the counterpart of userID on this record.
func (c *Connection) OtherParty(userID string) string {
	if c.RequesterID == userID {
		return c.TargetID
	}
	return c.RequesterID
}
