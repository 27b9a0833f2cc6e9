// Package memory provides bounds-checked positional access to heap arrays,
// caller-owned byte buffers, memory-mapped files and native (off-heap) memory
// through one cursor-based interface.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	memory/        Root package with the Reader/Writer view interfaces
//	├── resource/  Descriptor: storage reference, byte order, capacity, validity
//	├── buffer/    Cursor and typed get/put views, regions, atomics
//	├── handle/    Acquire/release of native allocations and file mappings
//	├── wasmmem/   Views over WebAssembly guest linear memory (wazero)
//	├── errors/    Structured error types
//	└── cmd/       memdump inspection tool
//
// # Quick Start
//
// Wrap heap storage; no release is required:
//
//	buf := buffer.Wrap(make([]int64, 8))
//	_ = buf.PutInt64(42)
//	buf.ResetPosition()
//	v, _ := buf.GetInt64()
//
// Allocate native memory and release it on every exit path:
//
//	err := handle.WithDirect(4096, handle.DefaultOptions(), func(h *handle.Handle) error {
//	    buf, err := h.GetWritable()
//	    if err != nil {
//	        return err
//	    }
//	    return buf.PutInt32(7)
//	})
//
// # Views and Regions
//
// Every view is a [start, position, end] cursor over a shared Descriptor.
// Region slicing never copies: writes through a region are visible through the
// parent and every sibling that overlaps it.
//
// # Byte Order
//
// All multi-byte primitives use the platform's native byte order. Storage that
// declares another order is rejected at construction time.
//
// # Thread Safety
//
// Views are NOT thread-safe. Only the Int64 atomic operations on WritableBuffer
// have a cross-goroutine contract; everything else must be externally
// synchronized or partitioned into non-overlapping regions.
package memory
