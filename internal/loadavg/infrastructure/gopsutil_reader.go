package infrastructure

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/shirou/gopsutil/v3/load"

	"loadprobe/internal/loadavg/domain"
)

// GopsutilReader reads the load average through gopsutil, which picks the
// native facility for the build platform
type GopsutilReader struct {
	avg func(ctx context.Context) (*load.AvgStat, error)
}

// NewGopsutilReader creates a reader backed by load.AvgWithContext
func NewGopsutilReader() *GopsutilReader {
	return &GopsutilReader{
		avg: load.AvgWithContext,
	}
}

// Read implements domain.Reader
func (r *GopsutilReader) Read(ctx context.Context) (avg domain.LoadAverage, err error) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			err = unsupported(fmt.Errorf("panic in gopsutil load: %v\nstack: %s", panicErr, debug.Stack()))
		}
	}()

	stat, err := r.avg(ctx)
	if err != nil {
		return domain.LoadAverage{}, unsupported(err)
	}
	if stat == nil {
		return domain.LoadAverage{}, unsupported(fmt.Errorf("gopsutil returned no load average"))
	}

	return domain.NewLoadAverage(stat.Load1, stat.Load5, stat.Load15), nil
}
