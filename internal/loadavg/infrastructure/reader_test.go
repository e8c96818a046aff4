package infrastructure

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadprobe/internal/loadavg/domain"
)

func TestNewReader(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		expected    domain.Reader
		expectError bool
	}{
		{name: "default", source: "", expected: &GopsutilReader{}},
		{name: "gopsutil", source: SourceGopsutil, expected: &GopsutilReader{}},
		{name: "procfs", source: SourceProcfs, expected: &ProcfsReader{}},
		{name: "sysinfo", source: SourceSysinfo, expected: &SysinfoReader{}},
		{name: "unknown", source: "kstat", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewReader(tt.source, "")
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, reader)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, reader)
		})
	}
}

func TestNewProcfsReader_DefaultMountPoint(t *testing.T) {
	assert.Equal(t, "/proc", NewProcfsReader("").mountPoint)
	assert.Equal(t, "/host/proc", NewProcfsReader("/host/proc").mountPoint)
}

func TestGopsutilReader_Read(t *testing.T) {
	tests := []struct {
		name        string
		avg         func(ctx context.Context) (*load.AvgStat, error)
		expected    domain.LoadAverage
		expectError bool
	}{
		{
			name: "success",
			avg: func(ctx context.Context) (*load.AvgStat, error) {
				return &load.AvgStat{Load1: 0.5, Load5: 0.75, Load15: 1.2}, nil
			},
			expected: domain.LoadAverage{Last: 0.5, Last5: 0.75, Last15: 1.2},
		},
		{
			name: "facility error",
			avg: func(ctx context.Context) (*load.AvgStat, error) {
				return nil, errors.New("not implemented yet")
			},
			expectError: true,
		},
		{
			name: "nil stat",
			avg: func(ctx context.Context) (*load.AvgStat, error) {
				return nil, nil
			},
			expectError: true,
		},
		{
			name: "panic",
			avg: func(ctx context.Context) (*load.AvgStat, error) {
				panic("boom")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &GopsutilReader{avg: tt.avg}

			got, err := reader.Read(context.Background())
			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
				assert.Equal(t, domain.LoadAverage{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Load averages move slowly, so two immediate reads should be close.
func TestGopsutilReader_ReadTwice(t *testing.T) {
	reader := NewGopsutilReader()

	first, err := reader.Read(context.Background())
	if errors.Is(err, domain.ErrUnsupportedPlatform) {
		t.Skipf("load average not available: %v", err)
	}
	require.NoError(t, err)

	second, err := reader.Read(context.Background())
	require.NoError(t, err)

	assertValidLoadAverage(t, first)
	assertValidLoadAverage(t, second)
	assert.InDelta(t, first.Last15, second.Last15, 0.5)
	assert.InDelta(t, first.Last5, second.Last5, 1)
}

func assertValidLoadAverage(t *testing.T, avg domain.LoadAverage) {
	t.Helper()
	for _, v := range avg.Samples() {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "sample %v is not finite", v)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}
