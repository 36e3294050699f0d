package classifier

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// Classification tells the caller whether a failure is worth retrying unchanged.
type Classification string

const (
	Transient Classification = "transient"
	Permanent Classification = "permanent"
)

func (c Classification) IsTransient() bool {
	return c == Transient
}

// FailureKind identifies a transport-level failure, where no response was received.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTimeout
	FailureConnection
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection"
	case FailureNetwork:
		return "network"
	default:
		return "none"
	}
}

// Failure is the input to Classify. Kind is set for transport failures,
// StatusCode for failed responses; Message is optional in both cases.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Message    string
}

var permanentStatusCodes = map[int]struct{}{
	http.StatusBadRequest:          {},
	http.StatusUnauthorized:        {},
	http.StatusForbidden:           {},
	http.StatusNotFound:            {},
	http.StatusMethodNotAllowed:    {},
	http.StatusConflict:            {},
	http.StatusUnprocessableEntity: {},
}

var permanentKeywords = []string{
	"unauthorized",
	"forbidden",
	"authentication",
	"invalid token",
	"bad request",
	"malformed",
	"invalid data",
	"validation failed",
	"not found",
	"conflict",
	"duplicate",
	"already exists",
}

// Classify maps a failure to Transient or Permanent. Rules are evaluated in
// order and the first match wins:
//  1. transport failure (timeout, connection, network) -> Transient
//  2. 5xx or 429 -> Transient
//  3. 400, 401, 403, 404, 405, 409, 422 -> Permanent
//  4. message contains a permanent keyword -> Permanent
//  5. anything else -> Transient
func Classify(f Failure) Classification {
	if f.Kind != FailureNone {
		return Transient
	}

	if IsServerStatus(f.StatusCode) {
		return Transient
	}

	if _, ok := permanentStatusCodes[f.StatusCode]; ok {
		return Permanent
	}

	if f.Message != "" {
		msg := strings.ToLower(f.Message)
		for _, keyword := range permanentKeywords {
			if strings.Contains(msg, keyword) {
				return Permanent
			}
		}
	}

	return Transient
}

// IsServerStatus reports whether the status is a 5xx or a 429 throttle.
func IsServerStatus(status int) bool {
	return (status >= 500 && status < 600) || status == http.StatusTooManyRequests
}

// KindOf inspects an error returned before any response was received and
// reports which transport failure it represents.
func KindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return FailureConnection
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureConnection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return FailureConnection
	}

	// connection dropped mid-exchange, TLS failures and the like
	return FailureNetwork
}
