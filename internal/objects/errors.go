package objects

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the decoder and loader can report.
// Each kind is itself an error so callers can test with errors.Is.
type ErrorKind int

const (
	ErrHeaderFormat ErrorKind = iota + 1
	ErrSizeFormat
	ErrSizeMismatch
	ErrEncoding
	ErrTruncatedEntry
	ErrTruncatedHash
	ErrUnknownObjectType
	ErrStorageRead
	ErrDecompression
	ErrHashMismatch
	ErrInvalidHash
)

var errorKindMessages = map[ErrorKind]string{
	ErrHeaderFormat:      "invalid header format",
	ErrSizeFormat:        "invalid object size",
	ErrSizeMismatch:      "content size does not match header",
	ErrEncoding:          "invalid UTF-8",
	ErrTruncatedEntry:    "truncated tree entry",
	ErrTruncatedHash:     "truncated tree entry hash",
	ErrUnknownObjectType: "unknown object type",
	ErrStorageRead:       "failed to read object",
	ErrDecompression:     "failed to decompress object",
	ErrHashMismatch:      "hash mismatch",
	ErrInvalidHash:       "invalid object hash",
}

func (k ErrorKind) Error() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error carries a kind plus optional context (which field or object was being
// read) and the underlying cause.
type Error struct {
	Kind    ErrorKind
	Context string
	Err     error
}

func newError(kind ErrorKind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var objErr *Error
	if errors.As(err, &objErr) {
		return objErr.Kind
	}
	return 0
}
