// Package handle owns native allocations and file mappings.
//
// A Handle is the single owner of a backing that lives outside the Go heap.
// Views come from Get and GetWritable; Release invalidates all of them at
// once and frees the backing:
//
//	h, err := handle.MapFile("data.bin", 0, 4096, handle.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer h.Release()
//
//	buf, err := h.GetWritable()
//	...
//
// Use, WithDirect and WithFile scope a handle to a function and release it on
// every exit path.
//
// Every handle is tracked by a Registry (DefaultRegistry unless Options says
// otherwise). Closing a registry releases whatever is still outstanding and
// logs it as leaked. A Collector exports the registry counters to prometheus.
package handle
