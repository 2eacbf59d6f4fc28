package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gnoverse/alice/internal/formatter"
	"github.com/gnoverse/alice/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [names...]",
	Short: "List the inference rules in the order they are tried",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRules(cmd.OutOrStdout(), args)
	},
}

func printRules(w io.Writer, names []string) error {
	if len(names) == 0 {
		_, err := io.WriteString(w, formatter.FormatRules())
		return err
	}
	for _, name := range names {
		r, ok := rules.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown rule %q", name)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Name(), rules.Schema(r.Name())); err != nil {
			return err
		}
	}
	return nil
}
