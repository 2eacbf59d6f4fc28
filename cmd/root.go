package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnoverse/alice/suite"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger = zap.NewNop()
	config = suite.DefaultConfig()
)

// ExitError carries the process exit status of a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// errNotValid is returned when a command ran to completion but at least one
// entailment did not get the expected verdict.
var errNotValid = &ExitError{Code: 1, Err: errors.New("not every entailment was proved as expected")}

// ExitCode maps the error returned by Execute to a process exit status:
// 0 on success, 1 when an entailment was not proved as expected and 2 for
// parse, usage and configuration errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 2
}

var rootCmd = &cobra.Command{
	Use:   "alice [entailments...]",
	Short: "alice - an entailment prover for separation logic with list segments",
	Long: `alice decides entailments between symbolic heaps built from points-to
cells and acyclic list segments, such as

  And[Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,Nil)]

Exit status is 0 when every entailment is valid (or matches its expected
verdict), 1 when one is not, and 2 on parse, usage or configuration errors.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Args:             cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		if cmd.Name() == initCmd.Name() {
			return nil
		}
		config, err = suite.LoadConfig(cfgFile)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// alice ENTAILMENT... behaves like the prove subcommand
		return proveCmd.RunE(proveCmd, args)
	},
}

// Execute runs the command line. Pass the result to ExitCode.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", suite.DefaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Give up after this long")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every rule application")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
}
