/*
Package bench times the algorithms of sortlab/sort against each other.

A Runner generates one random input, sorts a fresh copy of it with every
selected algorithm a number of times, verifies each result, and reports
the minimum, mean, and standard deviation of the observed times. The
minimum is the most reliable figure: it is the run least disturbed by the
rest of the system.
*/
package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	stdsort "sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/sortlab/internal"
	"github.com/exascience/sortlab/sort"
)

// Result summarizes the trials of one algorithm.
type Result struct {
	Algorithm string
	Size      int
	Trials    int
	Min       time.Duration
	Mean      time.Duration
	StdDev    time.Duration
}

// RandomInts returns size integers drawn uniformly from [0, limit).
func RandomInts(rng *rand.Rand, size, limit int) []int {
	result := make([]int, size)
	for i := range result {
		result[i] = rng.IntN(limit)
	}
	return result
}

// Runner runs benchmarks. It is not safe for concurrent use.
type Runner struct {
	cfg        Config
	log        *zap.Logger
	rng        *rand.Rand
	algorithms []sort.Algorithm[int]
	now        func() time.Time
}

// NewRunner validates cfg and returns a runner for it. A nil logger
// disables logging.
func NewRunner(cfg Config, log *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark configuration")
	}
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	r := &Runner{cfg: cfg, log: log, rng: rng, now: time.Now}
	if len(cfg.Algorithms) == 0 {
		r.algorithms = sort.Algorithms[int](rng, cfg.MinRun)
	} else {
		for _, name := range cfg.Algorithms {
			a, _ := sort.Lookup[int](name, rng, cfg.MinRun)
			r.algorithms = append(r.algorithms, a)
		}
	}
	return r, nil
}

// Run executes all trials and returns one result per algorithm, in the
// order the algorithms were selected. It stops between trials when ctx is
// done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	input := RandomInts(r.rng, r.cfg.Size, r.cfg.Limit)
	want := sort.MergeSort(input)
	r.log.Info("generated input",
		zap.Int("size", r.cfg.Size), zap.Int("limit", r.cfg.Limit), zap.Uint64("seed", r.cfg.Seed))

	results := make([]Result, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		result, err := r.runAlgorithm(ctx, a, input, want)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runAlgorithm(ctx context.Context, a sort.Algorithm[int], input, want []int) (Result, error) {
	data := make([]int, len(input))
	seconds := make([]float64, 0, r.cfg.Trials)
	for trial := 0; trial < r.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.Wrapf(err, "%s: trial %d", a.Name, trial)
		}
		copy(data, input)
		elapsed, got, err := r.timeTrial(a, data)
		if err != nil {
			return Result{}, errors.Wrapf(err, "%s: trial %d", a.Name, trial)
		}
		if !slices.Equal(got, want) {
			if len(got) != len(want) {
				return Result{}, errors.Errorf("%s: trial %d: output has %d elements, want %d",
					a.Name, trial, len(got), len(want))
			}
			return Result{}, errors.Errorf("%s: trial %d: output differs from the sorted input", a.Name, trial)
		}
		r.log.Debug("trial", zap.String("algorithm", a.Name), zap.Int("trial", trial), zap.Duration("elapsed", elapsed))
		seconds = append(seconds, elapsed.Seconds())
	}

	mean, stdDev := stat.MeanStdDev(seconds, nil)
	if len(seconds) < 2 {
		stdDev = 0
	}
	result := Result{
		Algorithm: a.Name,
		Size:      len(input),
		Trials:    len(seconds),
		Min:       toDuration(floats.Min(seconds)),
		Mean:      toDuration(mean),
		StdDev:    toDuration(stdDev),
	}
	r.log.Info("algorithm done",
		zap.String("algorithm", result.Algorithm),
		zap.Duration("min", result.Min),
		zap.Duration("mean", result.Mean),
		zap.Duration("stddev", result.StdDev))
	return result, nil
}

// timeTrial runs one trial. A panic in the algorithm is returned as an error.
func (r *Runner) timeTrial(a sort.Algorithm[int], data []int) (elapsed time.Duration, result []int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = internal.PanicError(p)
		}
	}()
	start := r.now()
	result = a.Apply(data)
	elapsed = r.now().Sub(start)
	return elapsed, result, nil
}

func toDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// WriteReport writes results to w as a table, fastest algorithm first.
// results itself is not reordered.
func WriteReport(w io.Writer, results []Result) error {
	ordered := slices.Clone(results)
	stdsort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Min < ordered[j].Min
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tTRIALS\tMIN\tMEAN\tSTDDEV")
	for _, r := range ordered {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%v\t%v\n",
			r.Algorithm, humanize.Comma(int64(r.Size)), r.Trials, r.Min, r.Mean, r.StdDev)
	}
	return errors.Wrap(tw.Flush(), "writing report")
}
