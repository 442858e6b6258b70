package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags every ledger error with its place in the taxonomy so that
// callers can branch exhaustively instead of matching strings.
type ErrorKind uint8

const (
	// KindInvalidArgument marks malformed input detectable without touching
	// state: missing references, types or money fields. A caller bug.
	KindInvalidArgument ErrorKind = iota + 1

	// KindIllegalState marks a structurally nonsensical request, such as a
	// transfer with fewer than two legs. A caller bug.
	KindIllegalState

	// KindTransferValidation marks a structurally valid but content-invalid
	// request: missing leg fields, mixed currencies, or a leg whose currency
	// does not match its account.
	KindTransferValidation

	// KindUnbalancedLegs marks legs that do not sum to zero.
	KindUnbalancedLegs

	// KindAccountNotFound marks a missing or blank account reference.
	KindAccountNotFound

	// KindInsufficientFunds marks a transfer that would drive a balance
	// below zero.
	KindInsufficientFunds

	// KindInfrastructure marks a storage collaborator failure, including a
	// uniqueness conflict on creation. The only kind a caller may retry.
	KindInfrastructure
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIllegalState:
		return "illegal_state"
	case KindTransferValidation:
		return "transfer_validation"
	case KindUnbalancedLegs:
		return "unbalanced_legs"
	case KindAccountNotFound:
		return "account_not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// Error is the ledger error type. Kind is always set; the payload fields are
// filled per kind: LegIndex for transfer validation, Imbalance for unbalanced
// legs, AccountRef and Shortfall for account-scoped failures.
type Error struct {
	Kind       ErrorKind
	Message    string
	AccountRef string
	LegIndex   int
	Imbalance  Money
	Shortfall  Money
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying storage error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewInvalidArgument creates a KindInvalidArgument error.
func NewInvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg, LegIndex: -1}
}

// NewIllegalState creates a KindIllegalState error.
func NewIllegalState(msg string) *Error {
	return &Error{Kind: KindIllegalState, Message: msg, LegIndex: -1}
}

// NewTransferValidation creates a KindTransferValidation error naming the
// offending leg. Pass -1 when the failure is not tied to a single leg.
func NewTransferValidation(legIndex int, msg string) *Error {
	if legIndex >= 0 {
		msg = fmt.Sprintf("leg %d: %s", legIndex, msg)
	}

	return &Error{Kind: KindTransferValidation, Message: msg, LegIndex: legIndex}
}

// NewUnbalancedLegs creates a KindUnbalancedLegs error carrying the nonzero
// imbalance the legs sum to.
func NewUnbalancedLegs(imbalance Money) *Error {
	return &Error{
		Kind:      KindUnbalancedLegs,
		Message:   fmt.Sprintf("legs do not sum to zero, off by %s", imbalance),
		Imbalance: imbalance,
		LegIndex:  -1,
	}
}

// NewAccountNotFound creates a KindAccountNotFound error for ref.
func NewAccountNotFound(ref string) *Error {
	return &Error{
		Kind:       KindAccountNotFound,
		Message:    fmt.Sprintf("account %q not found", ref),
		AccountRef: ref,
		LegIndex:   -1,
	}
}

// NewInsufficientFunds creates a KindInsufficientFunds error carrying the
// account and how far below zero it would end up.
func NewInsufficientFunds(ref string, shortfall Money) *Error {
	return &Error{
		Kind:       KindInsufficientFunds,
		Message:    fmt.Sprintf("account %q is short %s", ref, shortfall),
		AccountRef: ref,
		Shortfall:  shortfall,
		LegIndex:   -1,
	}
}

// NewInfrastructure creates a KindInfrastructure error wrapping the storage
// failure.
func NewInfrastructure(msg string, cause error) *Error {
	return &Error{Kind: KindInfrastructure, Message: msg, cause: cause, LegIndex: -1}
}

// KindOf returns the kind of err, or 0 when err is not a ledger Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// IsKind reports whether err is a ledger Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	return KindOf(err) == k
}
