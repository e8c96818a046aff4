//go:build linux

package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSysinfoReader_Read(t *testing.T) {
	avg, err := NewSysinfoReader().Read(context.Background())
	require.NoError(t, err)
	assertValidLoadAverage(t, avg)
}
