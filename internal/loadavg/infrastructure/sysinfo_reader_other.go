//go:build !linux

package infrastructure

import (
	"context"
	"errors"

	"loadprobe/internal/loadavg/domain"
)

// Read implements domain.Reader; sysinfo(2) is linux only
func (r *SysinfoReader) Read(ctx context.Context) (domain.LoadAverage, error) {
	return domain.LoadAverage{}, unsupported(errors.New("sysinfo requires linux"))
}
