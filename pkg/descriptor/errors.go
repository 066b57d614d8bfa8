// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"errors"
	"fmt"
)

const (
	// KindMalformed tags grammar errors: a missing ';', an unterminated
	// parameter list or an unrecognized type tag.
	KindMalformed ErrorKind = iota + 1
	// KindPrecondition tags operations invoked on a descriptor outside
	// their domain, such as asking an int for its component type.
	KindPrecondition
	// KindUndefinedSize tags Size calls on descriptors that have no
	// operand-stack footprint.
	KindUndefinedSize
)

var (
	// ErrMalformedDescriptor is the sentinel error wrapped by MalformedDescriptorError.
	ErrMalformedDescriptor = errors.New("malformed descriptor")
	// ErrPreconditionViolation is the sentinel error wrapped by PreconditionError.
	ErrPreconditionViolation = errors.New("descriptor precondition violated")
	// ErrUndefinedSize is the sentinel error wrapped by UndefinedSizeError.
	ErrUndefinedSize = errors.New("undefined descriptor size")
)

type (
	// ErrorKind identifies which of the three codec failure classes an error
	// belongs to.
	ErrorKind int

	// MalformedDescriptorError is returned when a descriptor does not follow
	// the descriptor grammar.
	MalformedDescriptorError struct {
		Value Descriptor
		// Offset is the byte position at which scanning failed.
		Offset int
		Reason string
	}

	// PreconditionError is returned when an operation receives a descriptor
	// or name it is not defined for.
	PreconditionError struct {
		Value       Descriptor
		Operation   string
		Requirement string
	}

	// UndefinedSizeError is returned by Size for descriptors that do not
	// denote a single value type.
	UndefinedSizeError struct {
		Value Descriptor
	}
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindPrecondition:
		return "precondition"
	case KindUndefinedSize:
		return "undefined-size"
	default:
		return "unknown"
	}
}

// KindOf reports the codec error kind carried by err.
func KindOf(err error) (ErrorKind, bool) {
	switch {
	case errors.Is(err, ErrMalformedDescriptor):
		return KindMalformed, true
	case errors.Is(err, ErrPreconditionViolation):
		return KindPrecondition, true
	case errors.Is(err, ErrUndefinedSize):
		return KindUndefinedSize, true
	default:
		return 0, false
	}
}

// Error implements the error interface.
func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor %q: %s at offset %d", e.Value, e.Reason, e.Offset)
}

// Unwrap returns ErrMalformedDescriptor for errors.Is() compatibility.
func (e *MalformedDescriptorError) Unwrap() error { return ErrMalformedDescriptor }

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s %q: requires %s", e.Operation, e.Value, e.Requirement)
}

// Unwrap returns ErrPreconditionViolation for errors.Is() compatibility.
func (e *PreconditionError) Unwrap() error { return ErrPreconditionViolation }

// Error implements the error interface.
func (e *UndefinedSizeError) Error() string {
	if pretty, err := e.Value.Render(); err == nil {
		return fmt.Sprintf("no size defined for type %q (%s)", e.Value, pretty)
	}
	return fmt.Sprintf("no size defined for type %q", e.Value)
}

// Unwrap returns ErrUndefinedSize for errors.Is() compatibility.
func (e *UndefinedSizeError) Unwrap() error { return ErrUndefinedSize }

func malformed(d string, offset int, reason string) *MalformedDescriptorError {
	return &MalformedDescriptorError{Value: Descriptor(d), Offset: offset, Reason: reason}
}
