//go:build linux

package infrastructure

import (
	"context"

	"github.com/prometheus/procfs"

	"loadprobe/internal/loadavg/domain"
)

// Read implements domain.Reader
func (r *ProcfsReader) Read(ctx context.Context) (domain.LoadAverage, error) {
	fs, err := procfs.NewFS(r.mountPoint)
	if err != nil {
		return domain.LoadAverage{}, unsupported(err)
	}

	avg, err := fs.LoadAvg()
	if err != nil {
		return domain.LoadAverage{}, unsupported(err)
	}

	return domain.NewLoadAverage(avg.Load1, avg.Load5, avg.Load15), nil
}
