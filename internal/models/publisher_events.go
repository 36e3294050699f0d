package models

import "time"

const (
	SettlementCompletedTopic = "settlements.completed"
	SettlementsDLQTopic      = "settlements.dlq"
)

type SettlementCompletedEvent struct {
	TransactionID   string    `json:"transaction_id"`
	AuthorizationID string    `json:"authorization_id"`
	SettlementLogID string    `json:"settlement_log_id"`
	SettledAt       time.Time `json:"settled_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
