package models

import "time"

// SettlementEvent is written once per transaction after the gateway accepts
// the debit. The unique index on TransactionID is what actually prevents a
// second settlement when two dispatches race past the idempotency guard.
type SettlementEvent struct {
	ID              uint      `gorm:"primaryKey"`
	TransactionID   string    `gorm:"size:64;not null;uniqueIndex"`
	SettledAt       time.Time `gorm:"not null"`
	SettlementLogID string    `gorm:"size:64;not null"`
	CreatedBy       int       `gorm:"not null"`
	AuthorizationID string    `gorm:"size:64;not null"`
	CreatedAt       time.Time
}
