package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a core analysis error. Every failure raised by the
// loader or one of the engines carries exactly one Kind.
type Kind string

const (
	// KindEmptyInput indicates the sales table contains zero rows.
	KindEmptyInput Kind = "EMPTY_INPUT"
	// KindMissingColumn indicates a required input column is absent.
	KindMissingColumn Kind = "MISSING_COLUMN"
	// KindUnknownStore indicates no records exist for the requested store.
	KindUnknownStore Kind = "UNKNOWN_STORE"
	// KindInsufficientHistory indicates too few records for a calculation.
	KindInsufficientHistory Kind = "INSUFFICIENT_HISTORY"
	// KindInvalidParameter indicates a caller-supplied parameter or input
	// value is out of range or unparseable.
	KindInvalidParameter Kind = "INVALID_PARAMETER"
)

// Error is a structured core error with a machine-readable kind
type Error struct {
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a new Error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new Error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewWithDetails creates a new Error carrying additional details
func NewWithDetails(kind Kind, message string, details interface{}) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// KindOf returns the kind of err, or "" if err carries no *Error.
// Wrapped errors are unwrapped via errors.As.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind anywhere in its chain
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Exit codes for the CLI layer. Zero is success; anything the core did not
// classify maps to 1.
const (
	ExitOK                  = 0
	ExitUnclassified        = 1
	ExitEmptyInput          = 2
	ExitMissingColumn       = 3
	ExitUnknownStore        = 4
	ExitInsufficientHistory = 5
	ExitInvalidParameter    = 6
)

// ExitCode maps an error to the process exit code documented for the CLI
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindEmptyInput:
		return ExitEmptyInput
	case KindMissingColumn:
		return ExitMissingColumn
	case KindUnknownStore:
		return ExitUnknownStore
	case KindInsufficientHistory:
		return ExitInsufficientHistory
	case KindInvalidParameter:
		return ExitInvalidParameter
	default:
		return ExitUnclassified
	}
}

// Helper constructors for the common failure shapes

// EmptyInput creates an error for a table with zero rows
func EmptyInput() *Error {
	return New(KindEmptyInput, "sales table contains no rows")
}

// MissingColumn creates an error for an absent required column
func MissingColumn(column string) *Error {
	return NewWithDetails(KindMissingColumn,
		fmt.Sprintf("required column %q not found", column), column)
}

// UnknownStore creates an error for a store with no records
func UnknownStore(storeID int) *Error {
	return NewWithDetails(KindUnknownStore,
		fmt.Sprintf("no records for store %d", storeID), storeID)
}

// InsufficientHistory creates an error for too few records
func InsufficientHistory(have, need int) *Error {
	return Newf(KindInsufficientHistory,
		"insufficient history: have %d records, need %d", have, need)
}

// InvalidParameter creates an error for an out-of-range parameter value
func InvalidParameter(name string, value interface{}) *Error {
	return NewWithDetails(KindInvalidParameter,
		fmt.Sprintf("invalid value for %s: %v", name, value), name)
}
