package abiencode

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrValidation matches every *ValidationError regardless of its kind.
	ErrValidation = errors.New("abiencode: validation failed")

	// ErrLengthMismatch indicates the type and value lists differ in length.
	ErrLengthMismatch = errors.New("abiencode: type and value counts differ")

	// ErrEmptyTypes indicates an empty type list.
	ErrEmptyTypes = errors.New("abiencode: empty type list")

	// ErrTooManyArguments indicates the argument limit was exceeded.
	ErrTooManyArguments = errors.New("abiencode: too many arguments")

	// ErrUnknownType indicates a type tag that is not a supported elementary type.
	ErrUnknownType = errors.New("abiencode: unknown type")

	// ErrInvalidAddress indicates an address that does not decode to 20 bytes.
	ErrInvalidAddress = errors.New("abiencode: invalid address")

	// ErrBadChecksum indicates a mixed-case address with a wrong EIP-55 checksum.
	ErrBadChecksum = errors.New("abiencode: bad address checksum")

	// ErrIntegerRange indicates an integer outside the range of its type.
	ErrIntegerRange = errors.New("abiencode: integer out of range")

	// ErrShapeMismatch indicates a value whose Go shape cannot represent its type.
	ErrShapeMismatch = errors.New("abiencode: value does not match type")
)

// ValidationKind classifies a ValidationError.
type ValidationKind uint8

const (
	LengthMismatch ValidationKind = iota + 1
	EmptyTypes
	TooManyArguments
	UnknownType
	InvalidAddress
	BadChecksum
	IntegerRange
	ShapeMismatch
)

var kindNames = map[ValidationKind]string{
	LengthMismatch:   "length mismatch",
	EmptyTypes:       "empty type list",
	TooManyArguments: "too many arguments",
	UnknownType:      "unknown type",
	InvalidAddress:   "invalid address",
	BadChecksum:      "bad address checksum",
	IntegerRange:     "integer out of range",
	ShapeMismatch:    "value does not match type",
}

var kindSentinels = map[ValidationKind]error{
	LengthMismatch:   ErrLengthMismatch,
	EmptyTypes:       ErrEmptyTypes,
	TooManyArguments: ErrTooManyArguments,
	UnknownType:      ErrUnknownType,
	InvalidAddress:   ErrInvalidAddress,
	BadChecksum:      ErrBadChecksum,
	IntegerRange:     ErrIntegerRange,
	ShapeMismatch:    ErrShapeMismatch,
}

func (k ValidationKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ValidationError reports inputs that cannot be encoded.
// Index is -1 when the failure concerns the lists as a whole.
type ValidationError struct {
	Kind  ValidationKind
	Index int
	Type  string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Index >= 0 {
		return fmt.Sprintf("abiencode: argument %d (%s): %s", e.Index, e.Type, msg)
	}
	return "abiencode: " + msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation or the sentinel for e.Kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == kindSentinels[e.Kind]
}

// newValidationError builds a list-level ValidationError.
func newValidationError(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Index: -1, Err: fmt.Errorf(format, args...)}
}

// at attaches argument position information to e.
func (e *ValidationError) at(index int, typ string, value any) *ValidationError {
	e.Index = index
	e.Type = typ
	e.Value = value
	return e
}

// EncodingError indicates a failure inside the ABI packer or unpacker.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("abiencode: %s: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// InvocationError wraps the failure of one invocation in a Batch.
type InvocationError struct {
	Index int
	Name  string
	Err   error
}

func (e *InvocationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("abiencode: invocation %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("abiencode: invocation %d: %v", e.Index, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
