package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
)

type DebitRequest struct {
	TransactionID      string `json:"transaction_id"`
	TransactionIDCamel string `json:"transactionId"`
}

func (r *DebitRequest) Sanitize() {
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.TransactionIDCamel = strings.TrimSpace(r.TransactionIDCamel)
}

func (r *DebitRequest) ID() string {
	if r.TransactionID != "" {
		return r.TransactionID
	}
	return r.TransactionIDCamel
}

type DebitResponse struct {
	Success          bool   `json:"success"`
	Status           string `json:"status"`
	TransactionID    string `json:"transactionId,omitempty"`
	RequestID        string `json:"requestId"`
	AuthorizationID  string `json:"authorizationId,omitempty"`
	SettlementLogID  string `json:"settlementLogId,omitempty"`
	ErrorType        string `json:"errorType,omitempty"`
	Classification   string `json:"classification,omitempty"`
	Message          string `json:"message,omitempty"`
	GatewayStatus    int    `json:"gatewayStatus,omitempty"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

func FromOutcome(outcome models.DispatchOutcome, elapsed time.Duration) DebitResponse {
	return DebitResponse{
		Success:          !outcome.IsFailed(),
		Status:           string(outcome.Kind),
		TransactionID:    outcome.TransactionID,
		RequestID:        outcome.RequestID,
		AuthorizationID:  outcome.AuthorizationID,
		SettlementLogID:  outcome.SettlementLogID,
		ErrorType:        string(outcome.ErrorType),
		Classification:   string(outcome.Classification),
		Message:          outcome.Message,
		GatewayStatus:    outcome.StatusCode,
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
}

// HTTPStatus maps an outcome to the status of the synchronous response.
// Permanent failures answer 4xx, transient ones 5xx or 408.
func HTTPStatus(outcome models.DispatchOutcome) int {
	if !outcome.IsFailed() {
		return http.StatusOK
	}

	switch outcome.ErrorType {
	case models.ErrorTypeMalformedInput:
		return http.StatusBadRequest
	case models.ErrorTypeTransactionNotFound:
		return http.StatusNotFound
	case models.ErrorTypeGatewayRejection:
		if outcome.StatusCode >= 400 && outcome.StatusCode < 500 {
			return outcome.StatusCode
		}
		return http.StatusUnprocessableEntity
	case models.ErrorTypeGatewayServerError:
		return http.StatusBadGateway
	case models.ErrorTypeTransportFailure:
		if outcome.FailureKind == classifier.FailureTimeout {
			return http.StatusRequestTimeout
		}
	}

	if outcome.Classification == classifier.Permanent {
		return http.StatusUnprocessableEntity
	}
	return http.StatusServiceUnavailable
}

type SettlementResponse struct {
	TransactionID   string    `json:"transactionId"`
	SettlementLogID string    `json:"settlementLogId"`
	AuthorizationID string    `json:"authorizationId"`
	CreatedBy       int       `json:"createdBy"`
	SettledAt       time.Time `json:"settledAt"`
}

func FromSettlementEvent(event *models.SettlementEvent) SettlementResponse {
	return SettlementResponse{
		TransactionID:   event.TransactionID,
		SettlementLogID: event.SettlementLogID,
		AuthorizationID: event.AuthorizationID,
		CreatedBy:       event.CreatedBy,
		SettledAt:       event.SettledAt,
	}
}
