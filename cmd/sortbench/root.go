package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/exascience/sortlab/bench"
)

// Execute runs the sortbench command and exits with status 1 on failure.
// It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	conf := viper.New()
	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Times textbook sorting algorithms against each other",
		Long: `
sortbench sorts one random input of integers with bubble sort, insertion sort,
merge sort, quicksort, heap sort, and a Timsort-style hybrid sort. Every
algorithm sorts a fresh copy of the input several times, every result is
checked, and the minimum, mean, and standard deviation of the observed times
are reported, fastest algorithm first.

Every flag can also be set through an environment variable named after the
flag with the prefix SORTBENCH_, such as SORTBENCH_MIN_RUN, or in the file
given with --config.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, conf)
		},
	}

	defaults := bench.DefaultConfig()
	flags := cmd.Flags()
	flags.Int("size", defaults.Size, "Number of elements to sort.")
	flags.Int("limit", defaults.Limit, "Elements are drawn uniformly from [0, limit).")
	flags.Int("trials", defaults.Trials, "Number of timed runs per algorithm.")
	flags.Uint64("seed", defaults.Seed, "Seed for the input and the quicksort pivots.")
	flags.Int("min-run", defaults.MinRun,
		"Run length of the hybrid sort. 0 selects the default of 32.")
	flags.StringSlice("algorithms", nil,
		"Comma separated algorithms to run, out of bubble, insertion, merge, quick, heap, "+
			"and hybrid. Runs all of them if empty.")
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by values set with environment variables and flags.")
	flags.Bool("verbose", false, "Log every trial.")

	bindFlags(conf, flags)
	return cmd
}

func bindFlags(conf *viper.Viper, flags *flag.FlagSet) {
	if err := conf.BindPFlags(flags); err != nil {
		panic(err)
	}
	conf.SetEnvPrefix("SORTBENCH")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
}

func run(cmd *cobra.Command, conf *viper.Viper) error {
	if file := conf.GetString("config"); file != "" {
		conf.SetConfigFile(file)
		if err := conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", file)
		}
	}

	log, err := newLogger(conf.GetBool("verbose"))
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = log.Sync() }()

	cfg := bench.Config{
		Size:       conf.GetInt("size"),
		Limit:      conf.GetInt("limit"),
		Trials:     conf.GetInt("trials"),
		Seed:       conf.GetUint64("seed"),
		MinRun:     conf.GetInt("min-run"),
		Algorithms: splitNames(conf.GetStringSlice("algorithms")),
	}
	runner, err := bench.NewRunner(cfg, log)
	if err != nil {
		return err
	}
	results, err := runner.Run(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "benchmark failed")
	}
	return bench.WriteReport(cmd.OutOrStdout(), results)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// splitNames splits comma separated entries, as they arrive from
// environment variables, and drops empty names.
func splitNames(entries []string) []string {
	var names []string
	for _, entry := range entries {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
