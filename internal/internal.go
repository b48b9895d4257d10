package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/pkg/errors"
)

// CheckRange panics unless left:right is an inclusive range of indices into
// a collection of the given size. An empty range, with left == right+1, is
// valid as long as left does not exceed size.
func CheckRange(left, right, size int) {
	if left < 0 || right >= size || left > right+1 {
		panic(fmt.Sprintf("invalid range: %v:%v", left, right))
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// PanicError turns a recovered panic value into an error that carries the
// stack of the panicking goroutine. It returns nil if p is nil. Runtime
// errors stay recognizable as runtime.Error.
func PanicError(p interface{}) error {
	if p == nil {
		return nil
	}
	err := errors.Errorf("panic: %v\n%s", p, debug.Stack())
	if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
		return runtimeError{err}
	}
	return err
}
