package sortlab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMinRun(t *testing.T) {
	require.Equal(t, MinRun, ComputeMinRun(0))
	require.Equal(t, 1, ComputeMinRun(1))
	require.Equal(t, 64, ComputeMinRun(64))
	require.PanicsWithValue(t, "invalid run length: -1", func() { ComputeMinRun(-1) })
}
