package posgrest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"gorm.io/gorm"
)

type SettlementEventRepo struct {
	*repository[models.SettlementEvent]
}

func NewSettlementEventRepo(db *gorm.DB) *SettlementEventRepo {
	return &SettlementEventRepo{repository: New[models.SettlementEvent](db)}
}

// RecordSettlementEvent inserts the settlement event for a transaction. A
// second call for the same transaction leaves the first event in place and
// returns models.ErrSettlementExists.
func (r *SettlementEventRepo) RecordSettlementEvent(ctx context.Context, transactionID, settlementLogID string, createdBy int, authorizationID string) error {
	event := &models.SettlementEvent{
		TransactionID:   transactionID,
		SettledAt:       time.Now().UTC(),
		SettlementLogID: settlementLogID,
		CreatedBy:       createdBy,
		AuthorizationID: authorizationID,
	}

	err := r.CreateOnce(ctx, event, "transaction_id")
	if errors.Is(err, ErrAlreadyExists) {
		return models.ErrSettlementExists
	}
	if err != nil {
		return fmt.Errorf("error recording settlement event for %s: %w", transactionID, err)
	}
	return nil
}

// GetByTransactionID returns the recorded settlement event, if any.
func (r *SettlementEventRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.SettlementEvent, error) {
	event, err := r.FirstBy(ctx, "transaction_id", transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrSettlementNotFound
	}
	return event, err
}
