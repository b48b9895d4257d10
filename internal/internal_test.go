package internal

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	require.NotPanics(t, func() { CheckRange(0, 4, 5) })
	require.NotPanics(t, func() { CheckRange(1, 3, 5) })
	require.NotPanics(t, func() { CheckRange(2, 1, 5) })
	require.NotPanics(t, func() { CheckRange(0, -1, 0) })

	require.PanicsWithValue(t, "invalid range: -1:2", func() { CheckRange(-1, 2, 5) })
	require.PanicsWithValue(t, "invalid range: 0:5", func() { CheckRange(0, 5, 5) })
	require.PanicsWithValue(t, "invalid range: 3:1", func() { CheckRange(3, 1, 5) })
}

func TestPanicError(t *testing.T) {
	require.NoError(t, PanicError(nil))

	err := PanicError("boom")
	require.Error(t, err)
	require.Contains(t, err.Error(), "panic: boom")

	var p interface{}
	func() {
		defer func() { p = recover() }()
		var s []int
		_ = s[1]
	}()
	err = PanicError(p)
	_, isRuntimeError := err.(runtime.Error)
	require.True(t, isRuntimeError)
}
