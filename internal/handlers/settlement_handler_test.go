package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
	"github.com/jeffleon2/draftea-settlement-service/internal/handlers"
	"github.com/jeffleon2/draftea-settlement-service/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/jeffleon2/draftea-settlement-service/internal/models/dto"
	"github.com/jeffleon2/draftea-settlement-service/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(h *handlers.SettlementHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/debit", h.Debit)
	r.GET("/settlements/:transaction_id", h.GetSettlement)
	r.GET("/health", h.Health)
	return r
}

func postDebit(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/debit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeDebit(t *testing.T, w *httptest.ResponseRecorder) dto.DebitResponse {
	t.Helper()
	var resp dto.DebitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDebit_Success(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	outcome := models.Succeeded("T1", "req-1", "A1")
	outcome.RequestID = "req-1"
	dispatcher.EXPECT().
		Dispatch(mock.Anything, "T1").
		Return(outcome).
		Once()

	w := postDebit(newRouter(h), `{"transactionId":"T1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
	resp := decodeDebit(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "A1", resp.AuthorizationID)
}

func TestDebit_AcceptsSnakeCaseID(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	dispatcher.EXPECT().
		Dispatch(mock.Anything, "T1").
		Return(models.AlreadySettled("T1", "log-1")).
		Once()

	w := postDebit(newRouter(h), `{"transaction_id":" T1 "}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "already_settled", decodeDebit(t, w).Status)
}

func TestDebit_GatewayUnauthorized(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	dispatcher.EXPECT().
		Dispatch(mock.Anything, "T1").
		Return(models.Failed("T1", classifier.Permanent, models.ErrorTypeGatewayRejection, "gateway returned 401: Unauthorized", 401)).
		Once()

	w := postDebit(newRouter(h), `{"transactionId":"T1"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeDebit(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "GatewayRejection", resp.ErrorType)
}

func TestDebit_GatewayTimeout(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	outcome := models.Failed("T1", classifier.Transient, models.ErrorTypeTransportFailure, "deadline exceeded", 0)
	outcome.FailureKind = classifier.FailureTimeout
	dispatcher.EXPECT().
		Dispatch(mock.Anything, "T1").
		Return(outcome).
		Once()

	w := postDebit(newRouter(h), `{"transactionId":"T1"}`)

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.Equal(t, "transient", decodeDebit(t, w).Classification)
}

func TestDebit_InvalidBody(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	w := postDebit(newRouter(h), `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MalformedInput", decodeDebit(t, w).ErrorType)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestDebit_MissingTransactionID(t *testing.T) {
	dispatcher := mocks.NewMockSettlementDispatcher(t)
	h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

	w := postDebit(newRouter(h), `{"amount": 10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestGetSettlement(t *testing.T) {
	reader := mocks.NewMockSettlementReader(t)
	h := handlers.NewSettlementHandler(mocks.NewMockSettlementDispatcher(t), reader)

	settledAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reader.EXPECT().
		GetByTransactionID(mock.Anything, "T1").
		Return(&models.SettlementEvent{TransactionID: "T1", SettlementLogID: "log-1", AuthorizationID: "A1", CreatedBy: 1, SettledAt: settledAt}, nil).
		Once()
	reader.EXPECT().
		GetByTransactionID(mock.Anything, "T2").
		Return(nil, models.ErrSettlementNotFound).
		Once()
	reader.EXPECT().
		GetByTransactionID(mock.Anything, "T3").
		Return(nil, errors.New("db down")).
		Once()

	r := newRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settlements/T1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SettlementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A1", resp.AuthorizationID)
	assert.Equal(t, "log-1", resp.SettlementLogID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settlements/T2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settlements/T3", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealth(t *testing.T) {
	h := handlers.NewSettlementHandler(mocks.NewMockSettlementDispatcher(t), mocks.NewMockSettlementReader(t))

	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		value    string
		outcome  *models.DispatchOutcome
		expected policy.Decision
	}{
		{
			name:     "unparseable body",
			topic:    models.SettlementRequestedTopic,
			value:    "{not json",
			expected: policy.Acknowledge,
		},
		{
			name:     "missing transaction id",
			topic:    models.SettlementRequestedTopic,
			value:    `{"amount":"10.00"}`,
			expected: policy.Acknowledge,
		},
		{
			name:     "unknown topic",
			topic:    "payments.created",
			value:    `{"transactionId":"T1"}`,
			expected: policy.Acknowledge,
		},
		{
			name:     "success",
			topic:    models.SettlementRequestedTopic,
			value:    `{"transactionId":"T1"}`,
			outcome:  ptr(models.Succeeded("T1", "log-1", "A1")),
			expected: policy.Acknowledge,
		},
		{
			name:     "permanent failure",
			topic:    models.SettlementRequestedTopic,
			value:    `{"transaction_id":"T1"}`,
			outcome:  ptr(models.Failed("T1", classifier.Permanent, models.ErrorTypeGatewayRejection, "forbidden", 403)),
			expected: policy.Acknowledge,
		},
		{
			name:     "transient failure",
			topic:    models.SettlementRequestedTopic,
			value:    `{"transactionId":"T1"}`,
			outcome:  ptr(models.Failed("T1", classifier.Transient, models.ErrorTypeTransportFailure, "timeout", 0)),
			expected: policy.RequestRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := mocks.NewMockSettlementDispatcher(t)
			h := handlers.NewSettlementHandler(dispatcher, mocks.NewMockSettlementReader(t))

			if tt.outcome != nil {
				dispatcher.EXPECT().
					Dispatch(mock.Anything, "T1").
					Return(*tt.outcome).
					Once()
			}

			decision := h.HandleMessage(context.Background(), tt.topic, []byte(tt.value))

			assert.Equal(t, tt.expected, decision)
			if tt.outcome == nil {
				dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
			}
		})
	}
}

func ptr(o models.DispatchOutcome) *models.DispatchOutcome {
	return &o
}
