package models

import "strings"

const (
	SettlementRequestedTopic = "settlements.requested"
)

// SettlementRequestedEvent is the queue message that triggers a dispatch.
// Producers use either transaction_id or transactionId.
type SettlementRequestedEvent struct {
	TransactionID      string `json:"transaction_id"`
	TransactionIDCamel string `json:"transactionId"`
}

func (e SettlementRequestedEvent) ID() string {
	if id := strings.TrimSpace(e.TransactionID); id != "" {
		return id
	}
	return strings.TrimSpace(e.TransactionIDCamel)
}
