package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-ricrob/lightsolver/internal/config"
	"github.com/go-ricrob/lightsolver/lights"
	"github.com/go-ricrob/lightsolver/solver"
)

var errParse = errors.New("cannot parse input")

type flags struct {
	config  string
	limit   int
	noLimit bool
	verbose bool
	trace   bool
}

func newRootCmd() *cobra.Command {
	f := new(flags)

	cmd := &cobra.Command{
		Use:   "lightsolver [start target]",
		Short: "Count the flips transforming a line of lights into another",
		Long: `lightsolver reads a start and a target line of lights ('1' lit, '0' unlit),
either as arguments or as two lines from stdin, and prints the number of flips
needed to transform start into target.

The last light can always be flipped. Any other light can only be flipped
if the light to its right is lit and all lights further right are unlit.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			start, target, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return solve(cmd, f, cfg, logger, start, target)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "YAML configuration file")
	cmd.Flags().IntVar(&f.limit, "limit", config.DefaultLimit, "maximum number of flips")
	cmd.Flags().BoolVar(&f.noLimit, "no-limit", false, "do not limit the number of flips")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print every intermediate line of lights to stderr")
	return cmd
}

// resolve merges the configuration file and the explicitly set flags.
func (f *flags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = f.limit
	}
	if f.noLimit {
		cfg.Limit = solver.NoLimit
	}
	if f.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func readInput(r io.Reader, args []string) (start, target lights.Lights, err error) {
	if len(args) == 0 {
		br := bufio.NewReader(r)
		args = make([]string, 2)
		for i := range args {
			line, err := br.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				return start, target, fmt.Errorf("read line %d: %w", i+1, err)
			}
			args[i] = line
		}
	}
	if start, err = lights.Parse(strings.TrimRight(args[0], " \t\r\n")); err != nil {
		return start, target, fmt.Errorf("%w due to %w", errParse, err)
	}
	if target, err = lights.Parse(strings.TrimRight(args[1], " \t\r\n")); err != nil {
		return start, target, fmt.Errorf("%w due to %w", errParse, err)
	}
	return start, target, nil
}

func solve(cmd *cobra.Command, f *flags, cfg *config.Config, logger *zap.Logger, start, target lights.Lights) error {
	opts := []solver.Option{solver.WithLimit(cfg.Limit), solver.WithLogger(logger)}
	if f.trace {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "%5d %s\n", 0, start)
		opts = append(opts, solver.WithProgress(func(step, idx int, state lights.Lights) {
			fmt.Fprintf(w, "%5d %s (flip %d)\n", step, state, idx)
		}))
	}

	result := solver.New(start, target, opts...).Run()
	out := cmd.OutOrStdout()
	switch result.Outcome {
	case solver.NoSolution:
		fmt.Fprintln(out, "no solution found")
	case solver.Aborted:
		return fmt.Errorf("solve aborted after %d steps: %w", result.Steps, result.Err)
	default:
		fmt.Fprintln(out, result.Steps)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
