package service

import (
	"strings"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
)

// AlreadySettled reports whether the record carries a settlement marker. It is
// only a fast path: the unique settlement event per transaction in storage is
// what actually stops a second settlement.
func AlreadySettled(record *models.TransactionRecord) bool {
	return record != nil && strings.TrimSpace(record.SettlementEventID) != ""
}
