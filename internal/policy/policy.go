package policy

import "github.com/jeffleon2/draftea-settlement-service/internal/models"

// Decision is what the queue transport should do with a message once its
// dispatch has finished.
type Decision int

const (
	// Acknowledge removes the message from the queue.
	Acknowledge Decision = iota
	// RequestRetry leaves the message for redelivery.
	RequestRetry
)

func (d Decision) String() string {
	switch d {
	case Acknowledge:
		return "acknowledge"
	case RequestRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Decide maps a dispatch outcome to a queue decision. Only transient failures
// are worth redelivering; settled, successful and permanently failed
// dispatches are acknowledged.
func Decide(outcome models.DispatchOutcome) Decision {
	if outcome.IsTransient() {
		return RequestRetry
	}
	return Acknowledge
}
