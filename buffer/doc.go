// Package buffer provides positional views over a resource.Descriptor.
//
// A Buffer reads primitives at a cursor position or at absolute offsets, and
// a WritableBuffer adds puts, whole-range fills and Int64 atomics. Every
// access is bounds checked against the view's [start, end) range and fails
// with a released error once the backing has been released. Regions and
// duplicates share the descriptor, so all of them observe a release.
//
// Views are not safe for concurrent use except for the Int64 atomics, which
// may be called from any number of goroutines on distinct views of the same
// backing.
package buffer
