//go:build !linux

package infrastructure

import (
	"context"
	"errors"

	"loadprobe/internal/loadavg/domain"
)

// Read implements domain.Reader; procfs only exists on linux
func (r *ProcfsReader) Read(ctx context.Context) (domain.LoadAverage, error) {
	return domain.LoadAverage{}, unsupported(errors.New("procfs requires linux"))
}
