package gateway

import (
	"fmt"

	"github.com/jeffleon2/draftea-settlement-service/internal/classifier"
)

// TransportError is returned by Submit when no response was received.
type TransportError struct {
	Kind classifier.FailureKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway %s failure: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(err error) *TransportError {
	return &TransportError{Kind: classifier.KindOf(err), Err: err}
}
