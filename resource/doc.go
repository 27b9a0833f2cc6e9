// Package resource describes the storage behind every view.
//
// A Descriptor is the single record of where a backing's bytes live, the byte
// order they use and how many of them there are. It is created once, by one of
// four construction paths, and then shared read-only by every view that aliases
// the backing:
//
//	FromArray(arr)        Go heap array (any Primitive element type)
//	FromBuffer(External)  caller-owned []byte with declared order and mutability
//	FromMapping(data, ro) memory-mapped file region (used by package handle)
//	FromNative(data)      off-heap allocation (used by package handle)
//
// # Byte Order
//
// Only the native order is accepted; there is no byte-swapping path:
//
//	_, err := resource.FromBuffer(resource.External{Data: b, Order: resource.BigEndian})
//	// err is errors.KindByteOrder on little-endian hosts
//
// # Validity
//
// Mapped and native descriptors become invalid when their owning handle is
// released. Invalidate flips the flag exactly once; every view checks it before
// touching a byte.
package resource
