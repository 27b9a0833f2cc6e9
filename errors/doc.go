// Package errors provides structured error types for the memory access layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the operation name, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
//		Op("GetInt64").
//		Value(int64(56)).
//		Detail("range [56, 64) outside [0, 60)").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseAccess, "GetInt64", 56, 8, 0, 60)
//	err := errors.Released(errors.PhaseAccess, "GetByte")
//
// All errors implement the standard error interface and support errors.Is/As.
// The package sentinels match any error of the same Kind regardless of phase:
//
//	if errors.Is(err, memerrors.ErrReleased) { ... }
package errors
