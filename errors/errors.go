package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // descriptor and handle construction
	PhaseAccess    Phase = "access"    // get/put and whole-range operations
	PhaseCursor    Phase = "cursor"    // repositioning
	PhaseRegion    Phase = "region"    // region slicing and copies
	PhaseAtomic    Phase = "atomic"    // atomic read-modify-write
	PhaseRelease   Phase = "release"   // handle teardown
	PhaseGrow      Phase = "grow"      // grow-policy requests
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds  Kind = "out_of_bounds"
	KindReadOnly     Kind = "read_only"
	KindReleased     Kind = "released"
	KindByteOrder    Kind = "byte_order"
	KindMisaligned   Kind = "misaligned"
	KindInvalidInput Kind = "invalid_input"
	KindAllocation   Kind = "allocation"
	KindNotFound     Kind = "not_found"
	KindMapping      Kind = "mapping"
	KindDeclined     Kind = "declined"
)

// Sentinels for errors.Is. They carry no Phase, so they match every phase.
var (
	ErrOutOfBounds  = &Error{Kind: KindOutOfBounds}
	ErrReadOnly     = &Error{Kind: KindReadOnly}
	ErrReleased     = &Error{Kind: KindReleased}
	ErrByteOrder    = &Error{Kind: KindByteOrder}
	ErrMisaligned   = &Error{Kind: KindMisaligned}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrAllocation   = &Error{Kind: KindAllocation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrMapping      = &Error{Kind: KindMapping}
	ErrDeclined     = &Error{Kind: KindDeclined}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Kinds must be equal; phases are compared only when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Phase == "" || e.Phase == t.Phase
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds reports an access of length bytes at offset that does not fit in [start, end).
func OutOfBounds(phase Phase, op string, offset, length, start, end int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("range [%d, %d) outside [%d, %d)", offset, offset+length, start, end),
		Value:  offset,
	}
}

// ArrayBounds reports an array window [offset, offset+length) that does not fit an array of size n.
func ArrayBounds(phase Phase, op string, offset, length, n int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("array window [%d, %d) outside array of length %d", offset, offset+length, n),
		Value:  offset,
	}
}

// CursorOrder reports a start/position/end triple that violates 0 <= start <= position <= end <= size.
func CursorOrder(op string, start, position, end, size int64) *Error {
	return &Error{
		Phase:  PhaseCursor,
		Kind:   KindOutOfBounds,
		Op:     op,
		Detail: fmt.Sprintf("need 0 <= start(%d) <= position(%d) <= end(%d) <= size(%d)", start, position, end, size),
		Value:  [3]int64{start, position, end},
	}
}

// ReadOnly creates a permission error for a mutating request against immutable storage
func ReadOnly(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindReadOnly,
		Op:     op,
		Detail: "resource is read-only",
	}
}

// Released creates a use-after-release error
func Released(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindReleased,
		Op:     op,
		Detail: "resource has been released",
	}
}

// ByteOrderMismatch creates an incompatible byte order error
func ByteOrderMismatch(declared, native string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindByteOrder,
		Detail: fmt.Sprintf("byte order %s is not the native order %s", declared, native),
		Value:  declared,
	}
}

// Misaligned creates an alignment error for atomic access
func Misaligned(op string, offset int64, align int) *Error {
	return &Error{
		Phase:  PhaseAtomic,
		Kind:   KindMisaligned,
		Op:     op,
		Detail: fmt.Sprintf("offset %d is not %d-byte aligned", offset, align),
		Value:  offset,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(size int64, cause error) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Value:  size,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
