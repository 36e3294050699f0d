package models

import "github.com/jeffleon2/draftea-settlement-service/internal/classifier"

type OutcomeKind string

const (
	OutcomeAlreadySettled OutcomeKind = "already_settled"
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeFailed         OutcomeKind = "failed"
)

// ErrorType names where a failed dispatch went wrong.
type ErrorType string

const (
	ErrorTypeTransportFailure    ErrorType = "TransportFailure"
	ErrorTypeGatewayRejection    ErrorType = "GatewayRejection"
	ErrorTypeGatewayServerError  ErrorType = "GatewayServerError"
	ErrorTypeMalformedInput      ErrorType = "MalformedInput"
	ErrorTypeTransactionNotFound ErrorType = "TransactionNotFound"
	ErrorTypeStorageFailure      ErrorType = "StorageFailure"
)

// DispatchOutcome is the result of one dispatch. Only one of the kinds is
// meaningful at a time: AuthorizationID for success, the failure fields for
// failed.
type DispatchOutcome struct {
	Kind            OutcomeKind
	TransactionID   string
	RequestID       string
	SettlementLogID string
	AuthorizationID string

	Classification classifier.Classification
	ErrorType      ErrorType
	FailureKind    classifier.FailureKind
	Message        string
	// StatusCode is the gateway status when a response was received, 0 otherwise.
	StatusCode int
}

func AlreadySettled(transactionID, settlementLogID string) DispatchOutcome {
	return DispatchOutcome{
		Kind:            OutcomeAlreadySettled,
		TransactionID:   transactionID,
		SettlementLogID: settlementLogID,
	}
}

func Succeeded(transactionID, settlementLogID, authorizationID string) DispatchOutcome {
	return DispatchOutcome{
		Kind:            OutcomeSuccess,
		TransactionID:   transactionID,
		SettlementLogID: settlementLogID,
		AuthorizationID: authorizationID,
	}
}

func Failed(transactionID string, class classifier.Classification, errType ErrorType, message string, statusCode int) DispatchOutcome {
	return DispatchOutcome{
		Kind:           OutcomeFailed,
		TransactionID:  transactionID,
		Classification: class,
		ErrorType:      errType,
		Message:        message,
		StatusCode:     statusCode,
	}
}

// Malformed is the outcome for input rejected before any dispatch is attempted.
func Malformed(message string) DispatchOutcome {
	return Failed("", classifier.Permanent, ErrorTypeMalformedInput, message, 0)
}

func (o DispatchOutcome) IsFailed() bool {
	return o.Kind == OutcomeFailed
}

func (o DispatchOutcome) IsTransient() bool {
	return o.Kind == OutcomeFailed && o.Classification.IsTransient()
}
