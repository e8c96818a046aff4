package domain

import "context"

// Reader defines the interface for reading the host load average.
// Implementations must be safe for concurrent use.
type Reader interface {
	Read(ctx context.Context) (LoadAverage, error)
}

// ReaderFunc adapts a plain function to the Reader interface
type ReaderFunc func(ctx context.Context) (LoadAverage, error)

// Read calls f(ctx)
func (f ReaderFunc) Read(ctx context.Context) (LoadAverage, error) {
	return f(ctx)
}
