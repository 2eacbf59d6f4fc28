package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/alice/internal/formatter"
	"github.com/gnoverse/alice/internal/parser"
	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/internal/sl"
)

var (
	showStats bool
	maxDepth  int
)

var proveCmd = &cobra.Command{
	Use:   "prove [entailments...]",
	Short: "Prove entailments given as arguments, or one per line on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := args
		if len(inputs) == 0 {
			var err error
			if inputs, err = readLines(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		p := prover.New(prover.WithLogger(logger), prover.WithMaxDepth(effectiveMaxDepth(cmd)))
		return runProve(ctx, cmd.OutOrStdout(), p, inputs)
	},
}

func init() {
	proveCmd.Flags().BoolVar(&showStats, "stats", false, "Show proof search statistics")
	proveCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Recursion limit, 0 for unbounded (default from configuration)")
}

// effectiveMaxDepth prefers the --max-depth flag over the configuration.
func effectiveMaxDepth(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup("max-depth"); f != nil && f.Changed {
		return maxDepth
	}
	return config.MaxDepth
}

// runProve parses every input before proving any of them.
func runProve(ctx context.Context, w io.Writer, p *prover.Prover, inputs []string) error {
	goals := make([]sl.Entailment, len(inputs))
	var parseErrs int
	for i, input := range inputs {
		goal, err := parser.Parse(input)
		if err != nil {
			fmt.Fprint(w, formatter.FormatParseError(fmt.Sprintf("argument %d", i+1), input, err))
			parseErrs++
			continue
		}
		goals[i] = goal
	}
	if parseErrs > 0 {
		return fmt.Errorf("%d of %d entailments could not be parsed", parseErrs, len(inputs))
	}

	allValid := true
	for i, goal := range goals {
		res := p.Prove(ctx, goal)
		if res.Verdict != prover.Valid {
			allValid = false
			logger.Debug("entailment not proved", zap.Int("argument", i+1), zap.Error(res.Err))
		}
		fmt.Fprint(w, formatter.FormatResult(fmt.Sprintf("argument %d", i+1), res, 0, formatter.Options{Stats: showStats}))
	}
	if !allValid {
		return errNotValid
	}
	return nil
}

// readLines returns the non-blank lines of r that are not '#' comments.
func readLines(r io.Reader) ([]string, error) {
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return nil, fmt.Errorf("no entailments given")
		}
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no entailments given")
	}
	return lines, nil
}
