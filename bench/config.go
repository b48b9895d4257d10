package bench

import (
	"github.com/pkg/errors"

	"github.com/exascience/sortlab/sort"
)

// Config determines the input and the trials of a benchmark run.
type Config struct {
	// Size is the number of elements of the input.
	Size int
	// Limit bounds the input elements, which are drawn uniformly from
	// [0, Limit).
	Limit int
	// Trials is the number of timed runs per algorithm.
	Trials int
	// Seed seeds both the input generator and the quicksort pivots.
	Seed uint64
	// MinRun is the run length designator of the hybrid sort. See
	// sortlab.ComputeMinRun.
	MinRun int
	// Algorithms names the algorithms to run. All algorithms run if it
	// is empty.
	Algorithms []string
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Size:   1000,
		Limit:  1000000,
		Trials: 5,
		Seed:   1,
	}
}

// Validate checks the configuration and returns the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return errors.Errorf("invalid size: %d", c.Size)
	case c.Limit <= 0:
		return errors.Errorf("invalid limit: %d", c.Limit)
	case c.Trials <= 0:
		return errors.Errorf("invalid number of trials: %d", c.Trials)
	case c.MinRun < 0:
		return errors.Errorf("invalid run length: %d", c.MinRun)
	}
	for _, name := range c.Algorithms {
		if _, ok := sort.Lookup[int](name, nil, c.MinRun); !ok {
			return errors.Errorf("unknown algorithm: %q", name)
		}
	}
	return nil
}
