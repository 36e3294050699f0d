package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
	"github.com/jeffleon2/draftea-settlement-service/internal/gateway"
	"github.com/jeffleon2/draftea-settlement-service/internal/metrics"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultStorageTimeout = 5 * time.Second

// TransactionStore reads transaction snapshots together with their settlement marker.
type TransactionStore interface {
	LookupTransaction(ctx context.Context, transactionID string) (*models.TransactionRecord, error)
}

// SettlementEventStore records settlement events. Implementations must reject
// a second event for the same transaction with models.ErrSettlementExists.
type SettlementEventStore interface {
	RecordSettlementEvent(ctx context.Context, transactionID, settlementLogID string, createdBy int, authorizationID string) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.SettlementEvent, error)
}

// GatewayClient submits one debit to the payment gateway.
type GatewayClient interface {
	Submit(ctx context.Context, requestID string, req gateway.SettlementRequest) (*gateway.Response, error)
}

type RequestBuilder interface {
	Build(record models.TransactionRecord) gateway.SettlementRequest
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// SettlementDispatcher turns a transaction id into at most one gateway debit.
//
// A dispatch reads the transaction, stops if it is already settled, builds the
// debit request, submits it once and, when the gateway accepts it, records the
// settlement event. Every path ends in a models.DispatchOutcome; nothing is
// retried here.
type SettlementDispatcher struct {
	Transactions   TransactionStore
	Events         SettlementEventStore
	Gateway        GatewayClient
	Builder        RequestBuilder
	Publisher      Publisher
	CreatedBy      int
	StorageTimeout time.Duration
	NewID          func() string
}

// NewSettlementDispatcher wires a dispatcher. The publisher may be nil, in
// which case no settlement completed event is emitted.
func NewSettlementDispatcher(
	transactions TransactionStore,
	events SettlementEventStore,
	gatewayClient GatewayClient,
	builder RequestBuilder,
	publisher Publisher,
	createdBy int,
	storageTimeout time.Duration,
) *SettlementDispatcher {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &SettlementDispatcher{
		Transactions:   transactions,
		Events:         events,
		Gateway:        gatewayClient,
		Builder:        builder,
		Publisher:      publisher,
		CreatedBy:      createdBy,
		StorageTimeout: storageTimeout,
		NewID:          uuid.NewString,
	}
}

// Dispatch settles one transaction. The request id generated here is sent to
// the gateway as X-Request-ID and becomes the settlement log id on success.
func (d *SettlementDispatcher) Dispatch(ctx context.Context, transactionID string) models.DispatchOutcome {
	requestID := d.newID()
	transactionID = strings.TrimSpace(transactionID)
	log := logrus.WithFields(logrus.Fields{
		"transaction_id": transactionID,
		"request_id":     requestID,
	})

	outcome := d.dispatch(ctx, log, requestID, transactionID)
	outcome.RequestID = requestID

	classification := string(outcome.Classification)
	if classification == "" {
		classification = "none"
	}
	metrics.DispatchTotal.WithLabelValues(string(outcome.Kind), classification).Inc()

	if outcome.IsFailed() {
		log.WithFields(logrus.Fields{
			"classification": outcome.Classification,
			"error_type":     outcome.ErrorType,
			"status_code":    outcome.StatusCode,
		}).Warnf("settlement failed: %s", outcome.Message)
	}

	return outcome
}

func (d *SettlementDispatcher) dispatch(ctx context.Context, log *logrus.Entry, requestID, transactionID string) models.DispatchOutcome {
	if transactionID == "" {
		return models.Malformed("transaction id is required")
	}

	record, err := d.lookup(ctx, transactionID)
	if errors.Is(err, models.ErrTransactionNotFound) {
		return models.Failed(transactionID, classifier.Permanent, models.ErrorTypeTransactionNotFound, "transaction not found", 0)
	}
	if err != nil {
		return models.Failed(transactionID, classifier.Transient, models.ErrorTypeStorageFailure, err.Error(), 0)
	}

	if AlreadySettled(record) {
		log.Infof("transaction already settled with log id %s, skipping gateway call", record.SettlementEventID)
		return models.AlreadySettled(transactionID, record.SettlementEventID)
	}

	request := d.Builder.Build(*record)

	log.Info("submitting debit to gateway")
	response, err := d.Gateway.Submit(ctx, requestID, request)
	if err != nil {
		return transportFailure(transactionID, err)
	}

	if response.StatusCode != http.StatusOK {
		return statusFailure(transactionID, response)
	}

	if !response.Accepted() {
		msg := fmt.Sprintf("gateway rejected debit with validation code %d", response.ValidationCode)
		if response.Message != "" {
			msg += ": " + response.Message
		} else if response.AuthorizationID == "" {
			msg += ": no authorization id"
		}
		return models.Failed(transactionID, classifier.Permanent, models.ErrorTypeGatewayRejection, msg, response.StatusCode)
	}

	settlementLogID := d.recordSettlement(ctx, log, transactionID, requestID, response.AuthorizationID)

	log.WithField("authorization_id", response.AuthorizationID).Info("✅ debit settled")
	return models.Succeeded(transactionID, settlementLogID, response.AuthorizationID)
}

func (d *SettlementDispatcher) lookup(ctx context.Context, transactionID string) (*models.TransactionRecord, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, d.StorageTimeout)
	defer cancel()

	record, err := d.Transactions.LookupTransaction(lookupCtx, transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, models.ErrTransactionNotFound
	}
	return record, nil
}

// recordSettlement persists the settlement event and announces it, returning
// the settlement log id on record. The debit has already been accepted at this
// point, so failures are logged and never change the outcome. Only the write
// that inserted the event publishes settlements.completed.
func (d *SettlementDispatcher) recordSettlement(ctx context.Context, log *logrus.Entry, transactionID, settlementLogID, authorizationID string) string {
	// the caller going away must not lose the record of an accepted debit
	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.StorageTimeout)
	defer cancel()

	err := d.Events.RecordSettlementEvent(persistCtx, transactionID, settlementLogID, d.CreatedBy, authorizationID)
	switch {
	case errors.Is(err, models.ErrSettlementExists):
		return d.existingSettlement(persistCtx, log, transactionID, authorizationID)
	case err != nil:
		metrics.PersistFailuresTotal.Inc()
		log.WithFields(logrus.Fields{
			"authorization_id":          authorizationID,
			"settlement_persist_failed": true,
		}).Errorf("debit accepted but settlement event not recorded: %s", err.Error())
		return settlementLogID
	}

	if d.Publisher == nil {
		return settlementLogID
	}
	event := models.SettlementCompletedEvent{
		TransactionID:   transactionID,
		AuthorizationID: authorizationID,
		SettlementLogID: settlementLogID,
		SettledAt:       time.Now().UTC(),
	}
	if err := d.Publisher.Publish(persistCtx, models.SettlementCompletedTopic, event); err != nil {
		log.Errorf("Error publishing settlement completed event: %s", err.Error())
	}
	return settlementLogID
}

// existingSettlement handles losing the insert race to a concurrent dispatch:
// the stored event wins and nothing is announced.
func (d *SettlementDispatcher) existingSettlement(ctx context.Context, log *logrus.Entry, transactionID, authorizationID string) string {
	stored, err := d.Events.GetByTransactionID(ctx, transactionID)
	if err != nil {
		log.WithField("authorization_id", authorizationID).
			Errorf("settlement event recorded by a concurrent dispatch but could not be read: %s", err.Error())
		return ""
	}

	log.WithFields(logrus.Fields{
		"authorization_id":         authorizationID,
		"stored_settlement_log_id": stored.SettlementLogID,
		"stored_authorization_id":  stored.AuthorizationID,
	}).Warn("settlement event already recorded by a concurrent dispatch")
	return stored.SettlementLogID
}

func (d *SettlementDispatcher) newID() string {
	if d.NewID == nil {
		return uuid.NewString()
	}
	return d.NewID()
}

func transportFailure(transactionID string, err error) models.DispatchOutcome {
	kind := classifier.KindOf(err)
	var transportErr *gateway.TransportError
	if errors.As(err, &transportErr) {
		kind = transportErr.Kind
	}

	class := classifier.Classify(classifier.Failure{Kind: kind, Message: err.Error()})
	outcome := models.Failed(transactionID, class, models.ErrorTypeTransportFailure, err.Error(), 0)
	outcome.FailureKind = kind
	return outcome
}

func statusFailure(transactionID string, response *gateway.Response) models.DispatchOutcome {
	message := response.Message
	if message == "" {
		message = response.RawBody
	}

	class := classifier.Classify(classifier.Failure{StatusCode: response.StatusCode, Message: message})
	errType := models.ErrorTypeGatewayServerError
	if class == classifier.Permanent {
		errType = models.ErrorTypeGatewayRejection
	}

	if message == "" {
		message = http.StatusText(response.StatusCode)
	}
	return models.Failed(transactionID, class, errType, fmt.Sprintf("gateway returned %d: %s", response.StatusCode, message), response.StatusCode)
}
