package api

import (
	"errors"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// ErrorKind classifies a failed fetch.
type ErrorKind string

const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindIdentifier ErrorKind = "identifier"
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindStatus     ErrorKind = "status"
	ErrorKindDecode     ErrorKind = "decode"
	ErrorKindOther      ErrorKind = "other"
)

// TransportError wraps DNS, connection, TLS and timeout failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is returned for any non-2xx response. The body is never decoded.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP %s", e.Status)
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

// DecodeError reports a response body that does not match the expected record.
type DecodeError struct {
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s JSON response: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingFieldError is raised during decode when a required key is absent or null.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

// HashFieldError is raised during decode when a hash field is not a
// 64-character hex string.
type HashFieldError struct {
	Record string
	Field  string
	Value  string // raw JSON as received
}

func (e *HashFieldError) Error() string {
	return fmt.Sprintf("%s: field %q is not a %d-character hash: %s", e.Record, e.Field, chainhash.MaxHashStringSize, e.Value)
}

// IdentifierError rejects an identifier before any URL is built.
type IdentifierError struct {
	ID     string
	Reason string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.ID, e.Reason)
}

// Classify maps err onto the ErrorKind of the outermost typed error it wraps.
func Classify(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}

	var (
		idErr     *IdentifierError
		tErr      *TransportError
		statusErr *StatusError
		decodeErr *DecodeError
	)
	switch {
	case errors.As(err, &idErr):
		return ErrorKindIdentifier
	case errors.As(err, &statusErr):
		return ErrorKindStatus
	case errors.As(err, &decodeErr):
		return ErrorKindDecode
	case errors.As(err, &tErr):
		return ErrorKindTransport
	default:
		return ErrorKindOther
	}
}
