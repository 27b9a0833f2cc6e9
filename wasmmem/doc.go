// Package wasmmem exposes WebAssembly linear memory as buffer views.
//
// Guest memory is little-endian, so wrapping fails with errors.KindByteOrder
// on big-endian hosts instead of silently decoding the wrong values:
//
//	buf, err := wasmmem.Wrap(mod.ExportedMemory("memory"))
//	v, err := buf.GetInt32At(ptr)
//
// A view covers the memory size at wrap time. After memory.grow the runtime
// may move the bytes, so callers re-wrap with Rewrap, which releases the
// stale view when the size has changed.
package wasmmem
