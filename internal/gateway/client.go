package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
	"github.com/jeffleon2/draftea-settlement-service/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	debitPath = "/api/v1/echeck/debit"

	// AcceptedValidationCode is the ValidationCode of a debit the gateway accepted.
	AcceptedValidationCode = 1

	defaultConnectTimeout = 10 * time.Second
	defaultTimeout        = 30 * time.Second
	maxResponseBody       = 1 << 20
)

// Response is what the gateway answered. ValidationCode and AuthorizationID
// are only populated when the body was a JSON object.
type Response struct {
	StatusCode      int
	ValidationCode  int
	AuthorizationID string
	Message         string
	RawBody         string
}

// Accepted reports whether the debit was accepted and carries an authorization.
func (r *Response) Accepted() bool {
	return r.StatusCode == http.StatusOK &&
		r.ValidationCode == AcceptedValidationCode &&
		r.AuthorizationID != ""
}

type responseBody struct {
	AuthorizationID string `json:"AuthorizationId"`
	ValidationCode  int    `json:"ValidationCode"`
	Message         string `json:"message"`
}

type Config struct {
	BaseURL   string
	AuthToken string
	// ConnectTimeout bounds dialing; Timeout bounds the whole exchange.
	ConnectTimeout time.Duration
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// Client submits debits to the gateway. It makes exactly one attempt per
// call; retrying is left to whoever triggered the dispatch.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		connectTimeout, timeout := timeouts(cfg)

		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.DialContext = (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext
		transport.TLSHandshakeTimeout = connectTimeout

		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
		httpClient: httpClient,
	}
}

// timeouts applies the defaults and keeps the connect timeout within the
// total timeout.
func timeouts(cfg Config) (connect, total time.Duration) {
	connect = cfg.ConnectTimeout
	if connect <= 0 {
		connect = defaultConnectTimeout
	}
	total = cfg.Timeout
	if total <= 0 {
		total = defaultTimeout
	}
	if connect > total {
		logrus.Warnf("gateway connect timeout %v exceeds total timeout %v, using %v", connect, total, total)
		connect = total
	}
	return connect, total
}

// Submit posts the debit once. A non-nil error is always a *TransportError;
// any received response, whatever its status, is returned without error.
func (c *Client) Submit(ctx context.Context, requestID string, req SettlementRequest) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Kind: classifier.FailureNetwork, Err: fmt.Errorf("failed to encode debit request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+debitPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Kind: classifier.FailureNetwork, Err: fmt.Errorf("failed to create debit request: %w", err)}
	}

	httpReq.Header.Set("Accept", "text/plain")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	httpReq.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	metrics.GatewayRequestDuration.WithLabelValues(fmt.Sprint(resp.StatusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, newTransportError(fmt.Errorf("failed to read response body: %w", err))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		RawBody:    string(body),
	}

	var parsed responseBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		response.ValidationCode = parsed.ValidationCode
		response.AuthorizationID = strings.TrimSpace(parsed.AuthorizationID)
		response.Message = parsed.Message
	}

	return response, nil
}
