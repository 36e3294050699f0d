package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
	"github.com/jeffleon2/draftea-settlement-service/internal/gateway"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/jeffleon2/draftea-settlement-service/internal/service"
	"github.com/jeffleon2/draftea-settlement-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testRequestID = "req-0001"
	testCreatedBy = 1
)

type dispatcherMocks struct {
	transactions *mocks.MockTransactionStore
	events       *mocks.MockSettlementEventStore
	gateway      *mocks.MockGatewayClient
	publisher    *mocks.MockPublisher
}

func newDispatcher(t *testing.T) (*service.SettlementDispatcher, dispatcherMocks) {
	m := dispatcherMocks{
		transactions: mocks.NewMockTransactionStore(t),
		events:       mocks.NewMockSettlementEventStore(t),
		gateway:      mocks.NewMockGatewayClient(t),
		publisher:    mocks.NewMockPublisher(t),
	}
	builder := gateway.NewBuilder("121000358", "5428610017522")
	d := service.NewSettlementDispatcher(m.transactions, m.events, m.gateway, builder, m.publisher, testCreatedBy, time.Second)
	d.NewID = func() string { return testRequestID }
	return d, m
}

func unsettledRecord(id string) *models.TransactionRecord {
	stamp := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return &models.TransactionRecord{
		TransactionID: id,
		Amount:        decimal.RequireFromString("42.50"),
		Consumer: models.ConsumerInfo{
			ID:           "C-9",
			FirstName:    "Ada",
			LastName:     "Lovelace",
			PrimaryPhone: "5551234567",
		},
		Merchant: models.MerchantInfo{
			ID:      "M-1",
			SECCode: "POS",
		},
		Terminal: models.TerminalInfo{
			TerminalID:   "TERM-1",
			ApprovalCode: "APP-1",
		},
		Timestamp: &stamp,
	}
}

func TestDispatch_Success(t *testing.T) {
	d, m := newDispatcher(t)
	ctx := context.Background()

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.MatchedBy(func(req gateway.SettlementRequest) bool {
			return req.UniqueTranID == "T1" && req.AccountType == gateway.DefaultAccountType
		})).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A1").
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(mock.Anything, models.SettlementCompletedTopic, mock.AnythingOfType("models.SettlementCompletedEvent")).
		Return(nil).
		Once()

	outcome := d.Dispatch(ctx, "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "A1", outcome.AuthorizationID)
	assert.Equal(t, testRequestID, outcome.SettlementLogID)
	assert.Equal(t, testRequestID, outcome.RequestID)
}

func TestDispatch_Unauthorized(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 401, RawBody: "Unauthorized"}, nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsFailed())
	assert.Equal(t, classifier.Permanent, outcome.Classification)
	assert.Equal(t, models.ErrorTypeGatewayRejection, outcome.ErrorType)
	assert.Equal(t, 401, outcome.StatusCode)
	m.events.AssertNotCalled(t, "RecordSettlementEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_GatewayServerError(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 503}, nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsTransient())
	assert.Equal(t, models.ErrorTypeGatewayServerError, outcome.ErrorType)
	assert.Equal(t, 503, outcome.StatusCode)
}

func TestDispatch_Timeout(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(nil, &gateway.TransportError{Kind: classifier.FailureTimeout, Err: context.DeadlineExceeded}).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsTransient())
	assert.Equal(t, models.ErrorTypeTransportFailure, outcome.ErrorType)
	assert.Equal(t, classifier.FailureTimeout, outcome.FailureKind)
	assert.Zero(t, outcome.StatusCode)
	m.events.AssertNotCalled(t, "RecordSettlementEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_AlreadySettledSkipsGateway(t *testing.T) {
	d, m := newDispatcher(t)

	settled := unsettledRecord("T1")
	settled.SettlementEventID = "log-1"

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(settled, nil).
		Twice()

	for i := 0; i < 2; i++ {
		outcome := d.Dispatch(context.Background(), "T1")
		assert.Equal(t, models.OutcomeAlreadySettled, outcome.Kind)
		assert.Equal(t, "log-1", outcome.SettlementLogID)
	}

	m.gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_RedeliveryAfterSuccessCallsGatewayOnce(t *testing.T) {
	d, m := newDispatcher(t)

	settled := unsettledRecord("T1")
	settled.SettlementEventID = testRequestID

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()
	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(settled, nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil).
		Once()
	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A1").
		Return(nil).
		Once()
	m.publisher.EXPECT().
		Publish(mock.Anything, models.SettlementCompletedTopic, mock.Anything).
		Return(nil).
		Once()

	first := d.Dispatch(context.Background(), "T1")
	second := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, first.Kind)
	assert.Equal(t, models.OutcomeAlreadySettled, second.Kind)
}

func TestDispatch_ValidationCodeRejected(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 3, Message: "insufficient funds"}, nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsFailed())
	assert.Equal(t, classifier.Permanent, outcome.Classification)
	assert.Equal(t, models.ErrorTypeGatewayRejection, outcome.ErrorType)
	assert.Contains(t, outcome.Message, "insufficient funds")
}

func TestDispatch_MissingAuthorizationID(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1}, nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsFailed())
	assert.Equal(t, classifier.Permanent, outcome.Classification)
	assert.Contains(t, outcome.Message, "no authorization id")
}

func TestDispatch_PersistFailureStillSucceeds(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A1").
		Return(errors.New("connection reset")).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "A1", outcome.AuthorizationID)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_ConcurrentSettlementReportsStoredEvent(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A2"}, nil).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A2").
		Return(models.ErrSettlementExists).
		Once()

	m.events.EXPECT().
		GetByTransactionID(mock.Anything, "T1").
		Return(&models.SettlementEvent{TransactionID: "T1", SettlementLogID: "log-first", AuthorizationID: "A1"}, nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "log-first", outcome.SettlementLogID)
	assert.Equal(t, testRequestID, outcome.RequestID)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_ConcurrentSettlementUnreadable(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A2"}, nil).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A2").
		Return(models.ErrSettlementExists).
		Once()

	m.events.EXPECT().
		GetByTransactionID(mock.Anything, "T1").
		Return(nil, errors.New("connection reset")).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.Empty(t, outcome.SettlementLogID)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_StorageCallsAreBounded(t *testing.T) {
	d, m := newDispatcher(t)
	d.StorageTimeout = 2 * time.Second

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		RunAndReturn(func(ctx context.Context, _ string) (*models.TransactionRecord, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "lookup context has no deadline")
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
			return unsettledRecord("T1"), nil
		}).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A1").
		RunAndReturn(func(ctx context.Context, _ string, _ string, _ int, _ string) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "persist context has no deadline")
			return nil
		}).
		Once()

	m.publisher.EXPECT().
		Publish(mock.Anything, models.SettlementCompletedTopic, mock.Anything).
		Return(nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
}

func TestDispatch_PersistIgnoresCallerCancellation(t *testing.T) {
	d, m := newDispatcher(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()

	m.gateway.EXPECT().
		Submit(mock.Anything, testRequestID, mock.Anything).
		RunAndReturn(func(context.Context, string, gateway.SettlementRequest) (*gateway.Response, error) {
			cancel()
			return &gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil
		}).
		Once()

	m.events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", testRequestID, testCreatedBy, "A1").
		RunAndReturn(func(ctx context.Context, _ string, _ string, _ int, _ string) error {
			return ctx.Err()
		}).
		Once()

	m.publisher.EXPECT().
		Publish(mock.Anything, models.SettlementCompletedTopic, mock.Anything).
		Return(nil).
		Once()

	outcome := d.Dispatch(ctx, "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
}

func TestDispatch_TransactionNotFound(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "missing").
		Return(nil, models.ErrTransactionNotFound).
		Once()

	outcome := d.Dispatch(context.Background(), "missing")

	assert.True(t, outcome.IsFailed())
	assert.Equal(t, classifier.Permanent, outcome.Classification)
	assert.Equal(t, models.ErrorTypeTransactionNotFound, outcome.ErrorType)
	m.gateway.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_StorageFailureIsTransient(t *testing.T) {
	d, m := newDispatcher(t)

	m.transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(nil, errors.New("too many connections")).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.True(t, outcome.IsTransient())
	assert.Equal(t, models.ErrorTypeStorageFailure, outcome.ErrorType)
}

func TestDispatch_BlankTransactionID(t *testing.T) {
	d, _ := newDispatcher(t)

	outcome := d.Dispatch(context.Background(), "   ")

	assert.True(t, outcome.IsFailed())
	assert.Equal(t, classifier.Permanent, outcome.Classification)
	assert.Equal(t, models.ErrorTypeMalformedInput, outcome.ErrorType)
}

func TestDispatch_NilPublisher(t *testing.T) {
	transactions := mocks.NewMockTransactionStore(t)
	events := mocks.NewMockSettlementEventStore(t)
	gw := mocks.NewMockGatewayClient(t)
	d := service.NewSettlementDispatcher(transactions, events, gw, gateway.NewBuilder("1", "2"), nil, testCreatedBy, 0)

	transactions.EXPECT().
		LookupTransaction(mock.Anything, "T1").
		Return(unsettledRecord("T1"), nil).
		Once()
	gw.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&gateway.Response{StatusCode: 200, ValidationCode: 1, AuthorizationID: "A1"}, nil).
		Once()
	events.EXPECT().
		RecordSettlementEvent(mock.Anything, "T1", mock.AnythingOfType("string"), testCreatedBy, "A1").
		Return(nil).
		Once()

	outcome := d.Dispatch(context.Background(), "T1")

	assert.Equal(t, models.OutcomeSuccess, outcome.Kind)
	assert.NotEmpty(t, outcome.RequestID)
	assert.Equal(t, outcome.RequestID, outcome.SettlementLogID)
}
