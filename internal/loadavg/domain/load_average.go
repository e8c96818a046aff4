package domain

import "errors"

// SampleCount is the number of averages the OS facility reports: 1, 5 and 15 minutes.
const SampleCount = 3

// ErrUnsupportedPlatform is returned when the host does not expose a load average
// facility or the call into it fails. The condition does not change at runtime.
var ErrUnsupportedPlatform = errors.New("load average is not available on this platform")

// LoadAverage is a point-in-time snapshot of the scheduler run-queue averages
type LoadAverage struct {
	Last   float64
	Last5  float64
	Last15 float64
}

// NewLoadAverage builds a snapshot from up to three samples.
// Missing slots are left at zero, which is indistinguishable from an idle host.
func NewLoadAverage(samples ...float64) LoadAverage {
	var padded [SampleCount]float64
	copy(padded[:], samples)

	return LoadAverage{
		Last:   padded[0],
		Last5:  padded[1],
		Last15: padded[2],
	}
}

// Samples returns the averages in 1, 5, 15 minute order
func (l LoadAverage) Samples() [SampleCount]float64 {
	return [SampleCount]float64{l.Last, l.Last5, l.Last15}
}
