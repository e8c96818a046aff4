package infrastructure

import (
	"fmt"

	"loadprobe/internal/loadavg/domain"
)

// Names accepted by NewReader
const (
	SourceGopsutil = "gopsutil"
	SourceProcfs   = "procfs"
	SourceSysinfo  = "sysinfo"
)

// Sources lists the supported reader names, default first
func Sources() []string {
	return []string{SourceGopsutil, SourceProcfs, SourceSysinfo}
}

// NewReader creates the reader for the named source.
// procPath is only used by the procfs source.
func NewReader(source, procPath string) (domain.Reader, error) {
	switch source {
	case "", SourceGopsutil:
		return NewGopsutilReader(), nil
	case SourceProcfs:
		return NewProcfsReader(procPath), nil
	case SourceSysinfo:
		return NewSysinfoReader(), nil
	default:
		return nil, fmt.Errorf("unknown load average source %q", source)
	}
}

func unsupported(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrUnsupportedPlatform, err)
}
