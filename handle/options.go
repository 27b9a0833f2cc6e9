package handle

// Options configures handle acquisition.
type Options struct {
	// Registry tracks the handle. Nil means DefaultRegistry().
	Registry *Registry

	// Grow is consulted by Grow when a caller needs more capacity.
	// Nil means the handle never grows.
	Grow GrowPolicy

	// ReadOnly maps files without write access. Ignored for AllocateDirect.
	ReadOnly bool
}

// DefaultOptions returns the default acquisition options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry()
}
