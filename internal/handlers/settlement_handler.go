package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-settlement-service/internal/metrics"
	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/jeffleon2/draftea-settlement-service/internal/models/dto"
	"github.com/jeffleon2/draftea-settlement-service/internal/policy"
	"github.com/sirupsen/logrus"
)

type SettlementDispatcher interface {
	Dispatch(ctx context.Context, transactionID string) models.DispatchOutcome
}

type SettlementReader interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*models.SettlementEvent, error)
}

type SettlementHandler struct {
	Dispatcher  SettlementDispatcher
	Settlements SettlementReader
}

func NewSettlementHandler(d SettlementDispatcher, r SettlementReader) *SettlementHandler {
	return &SettlementHandler{Dispatcher: d, Settlements: r}
}

// POST /debit
func (h *SettlementHandler) Debit(c *gin.Context) {
	start := time.Now()

	var req dto.DebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		outcome := models.Malformed("invalid request body")
		c.JSON(http.StatusBadRequest, dto.FromOutcome(outcome, time.Since(start)))
		return
	}
	req.Sanitize()

	if req.ID() == "" {
		outcome := models.Malformed("transaction id is required")
		c.JSON(http.StatusBadRequest, dto.FromOutcome(outcome, time.Since(start)))
		return
	}

	outcome := h.Dispatcher.Dispatch(c.Request.Context(), req.ID())
	c.Header("X-Request-ID", outcome.RequestID)
	c.JSON(dto.HTTPStatus(outcome), dto.FromOutcome(outcome, time.Since(start)))
}

// GET /settlements/:transaction_id
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	transactionID := strings.TrimSpace(c.Param("transaction_id"))

	event, err := h.Settlements.GetByTransactionID(c.Request.Context(), transactionID)
	if errors.Is(err, models.ErrSettlementNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "settlement not found"})
		return
	}
	if err != nil {
		logrus.Errorf("Error reading settlement for %s: %s", transactionID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromSettlementEvent(event))
}

// GET /health
func (h *SettlementHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleMessage processes one queued settlement request and tells the
// transport whether to acknowledge it. Messages that cannot be parsed or carry
// no transaction id are acknowledged without dispatching.
func (h *SettlementHandler) HandleMessage(ctx context.Context, topic string, value []byte) policy.Decision {
	decision := h.handleMessage(ctx, topic, value)
	metrics.MessagesTotal.WithLabelValues(decision.String()).Inc()
	return decision
}

func (h *SettlementHandler) handleMessage(ctx context.Context, topic string, value []byte) policy.Decision {
	if topic != models.SettlementRequestedTopic {
		logrus.Errorf("topic not allowed %s", topic)
		return policy.Acknowledge
	}

	var event models.SettlementRequestedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.Errorf("Error parsing settlement requested event %s", err.Error())
		return policy.Decide(models.Malformed("unparseable message body"))
	}

	transactionID := event.ID()
	if transactionID == "" {
		logrus.Error("settlement requested event without transaction id")
		return policy.Decide(models.Malformed("transaction id is required"))
	}

	outcome := h.Dispatcher.Dispatch(ctx, transactionID)
	return policy.Decide(outcome)
}
