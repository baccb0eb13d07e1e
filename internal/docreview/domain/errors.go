package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDocNotFound is returned when a document id is unknown to the engine
	// or the local store.
	ErrDocNotFound = errors.New("document not found")

	// ErrNotIndexed is returned when ask/search runs against a document whose
	// retrieval index has not been built yet.
	ErrNotIndexed = errors.New("document not indexed")

	// ErrUnrecognizedSummaryShape is returned when the engine's summary payload
	// is neither a string nor a sequence.
	ErrUnrecognizedSummaryShape = errors.New("summary is neither a string nor a sequence")
)

// PreconditionError reports a facade call made with a missing or empty
// required argument. No network call is issued for such requests.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %s is required", e.Field)
}

// TransportError reports a request that failed before a response was obtained.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError reports a non-success HTTP status from the engine, carrying the
// status code and response body.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("engine returned status %d: %s", e.Status, e.Body)
}
