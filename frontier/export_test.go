package frontier

// Verify exposes the internal heap invariant check to tests.
func (f *Frontier[K]) Verify() error { return f.verify() }

// ErrHeapInvariant exposes the internal invariant error to tests.
var ErrHeapInvariant = errHeapInvariant
