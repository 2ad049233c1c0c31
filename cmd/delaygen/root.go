package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itohio/napdelay/cycles"
	"github.com/itohio/napdelay/dev"
	"github.com/itohio/napdelay/internal/gen"
)

const applicationName = "delaygen"

// newViper reads flags first, then DELAYGEN_* environment variables.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(applicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// NewRootCommand creates the delaygen command.
func NewRootCommand() *cobra.Command {
	model := dev.Model()

	cmd := &cobra.Command{
		Use:   applicationName,
		Short: "Solve busy-wait delays into nap counts at build time",
		Long: "delaygen reads a YAML table of named delays, converts each to CPU cycles, " +
			"solves the nap count that covers it and writes Go constants plus one " +
			"blocking function per delay.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := run(v, log); err != nil {
				log.Error("generation failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("table", "t", "delays.yaml", "delay table to read")
	flags.StringP("out", "o", "delays_gen.go", "Go file to write, - for stdout")
	flags.Uint32("clock", model.ClockHz, "core clock in Hz")
	flags.Uint32("atom", model.AtomCycles, "cycles per nap, call and return included")
	flags.Uint32("per-iteration", model.Loop.PerIteration, "loop cycles per continuing iteration")
	flags.Uint32("final", model.Loop.Final, "loop cycles of the terminating check")
	flags.String("solver", gen.DefaultSolver, "nap solver, one of "+strings.Join(cycles.SolverNames(), ", "))
	flags.String("config-import", gen.DefaultConfigImport, "import path of the clock config package")
	flags.String("dev-import", gen.DefaultDevImport, "import path of the nap loop package")
	flags.BoolP("verbose", "v", false, "log every solved delay")

	return cmd
}

func run(v *viper.Viper, log *zap.Logger) error {
	opts := gen.Options{
		Model: cycles.Model{
			ClockHz:    v.GetUint32("clock"),
			AtomCycles: v.GetUint32("atom"),
			Loop: cycles.Overhead{
				PerIteration: v.GetUint32("per-iteration"),
				Final:        v.GetUint32("final"),
			},
		},
		Solver:       v.GetString("solver"),
		ConfigImport: v.GetString("config-import"),
		DevImport:    v.GetString("dev-import"),
		Logger:       log,
	}

	tablePath := v.GetString("table")
	table, err := gen.Load(tablePath)
	if err != nil {
		return err
	}

	src, err := gen.Generate(table, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", tablePath, err)
	}

	out := v.GetString("out")
	if out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return err
	}
	log.Info("wrote delays",
		zap.String("table", tablePath),
		zap.String("out", out),
		zap.Int("delays", len(table.Delays)),
		zap.Uint32("clock", opts.Model.ClockHz),
		zap.String("solver", opts.Solver),
	)
	return nil
}
