//go:build linux

package infrastructure

import (
	"context"

	"golang.org/x/sys/unix"

	"loadprobe/internal/loadavg/domain"
)

// sysinfo reports loads as fixed point values with 16 fractional bits
const sysinfoLoadScale = 1 << 16

// Read implements domain.Reader
func (r *SysinfoReader) Read(ctx context.Context) (domain.LoadAverage, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return domain.LoadAverage{}, unsupported(err)
	}

	return domain.NewLoadAverage(
		float64(info.Loads[0])/sysinfoLoadScale,
		float64(info.Loads[1])/sysinfoLoadScale,
		float64(info.Loads[2])/sysinfoLoadScale,
	), nil
}
