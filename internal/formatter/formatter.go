// Package formatter renders proof results, parse errors and the rule table
// for the terminal.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoverse/alice/internal/parser"
	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/internal/rules"
)

const tabWidth = 8

var (
	validStyle   = color.New(color.FgGreen, color.Bold)
	invalidStyle = color.New(color.FgRed, color.Bold)
	unknownStyle = color.New(color.FgHiYellow, color.Bold)
	nameStyle    = color.New(color.FgYellow, color.Bold)
	goalStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgWhite)
)

// Options controls optional parts of a result report.
type Options struct {
	Stats bool
}

func verdictStyle(v prover.Verdict) *color.Color {
	switch v {
	case prover.Valid:
		return validStyle
	case prover.Invalid:
		return invalidStyle
	default:
		return unknownStyle
	}
}

// FormatResult renders one proof result. expect is the verdict the caller
// hoped for; zero means no expectation.
func FormatResult(name string, res prover.Result, expect prover.Verdict, opts Options) string {
	var b strings.Builder

	b.WriteString(verdictStyle(res.Verdict).Sprintf("%s: ", res.Verdict))
	b.WriteString(nameStyle.Sprint(name))
	b.WriteString("\n")
	b.WriteString(lineStyle.Sprint(" --> "))
	b.WriteString(goalStyle.Sprint(res.Goal.String()))
	b.WriteString("\n")

	mismatch := expect != 0 && expect != res.Verdict
	if res.Err != nil || mismatch || opts.Stats {
		b.WriteString(lineStyle.Sprint("  |\n"))
	}
	if mismatch {
		b.WriteString(lineStyle.Sprint("  = "))
		b.WriteString(messageStyle.Sprintf("expected %s\n", expect))
	}
	if res.Err != nil {
		b.WriteString(lineStyle.Sprint("  = "))
		b.WriteString(messageStyle.Sprintf("%s\n", res.Reason()))
	}
	if res.Detail != "" {
		b.WriteString(lineStyle.Sprint("  = "))
		b.WriteString(noteStyle.Sprintf("note: %s\n", res.Detail))
	}
	if opts.Stats {
		b.WriteString(formatStats(res.Stats))
	}
	b.WriteString("\n")
	return b.String()
}

func formatStats(s prover.Stats) string {
	var b strings.Builder
	b.WriteString(lineStyle.Sprint("  = "))
	b.WriteString(noteStyle.Sprintf("stats: %d goals, depth %d\n", s.Goals, s.Depth))

	var applied []string
	for _, r := range rules.Table {
		if n := s.Applications[r.Name()]; n > 0 {
			applied = append(applied, fmt.Sprintf("%s=%d", r.Name(), n))
		}
	}
	if len(applied) > 0 {
		b.WriteString(lineStyle.Sprint("  = "))
		b.WriteString(noteStyle.Sprintf("rules: %s\n", strings.Join(applied, ", ")))
	}
	return b.String()
}

// FormatParseError renders a syntax error under the offending input with a
// caret at the error column. Errors that are not *parser.Error are printed
// as plain messages.
func FormatParseError(name, input string, err error) string {
	var b strings.Builder
	b.WriteString(invalidStyle.Sprint("error: "))
	b.WriteString(nameStyle.Sprint(name))
	b.WriteString("\n")

	var perr *parser.Error
	if !errors.As(err, &perr) {
		b.WriteString(lineStyle.Sprint("  = "))
		b.WriteString(messageStyle.Sprintf("%s\n\n", err))
		return b.String()
	}

	line := expandTabs(input)
	b.WriteString(lineStyle.Sprint("  |\n"))
	b.WriteString(lineStyle.Sprint("  | "))
	b.WriteString(line + "\n")
	b.WriteString(lineStyle.Sprint("  | "))
	b.WriteString(strings.Repeat(" ", calculateVisualColumn(input, perr.Pos+1)))
	b.WriteString(messageStyle.Sprintf("^ %s\n\n", perr.Msg))
	return b.String()
}

// FormatSummary renders the closing line of a batch run.
func FormatSummary(passed, failed int) string {
	style := validStyle
	if failed > 0 {
		style = invalidStyle
	}
	return style.Sprintf("%d passed, %d failed\n", passed, failed)
}

// FormatRules lists the rule table in the order the prover tries it.
func FormatRules() string {
	var b strings.Builder
	for i, r := range rules.Table {
		b.WriteString(lineStyle.Sprintf("%2d  ", i+1))
		b.WriteString(nameStyle.Sprintf("%-16s", r.Name()))
		b.WriteString(noteStyle.Sprintf("%s\n", rules.Schema(r.Name())))
	}
	return b.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			n := tabWidth - (col % tabWidth)
			expanded.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			expanded.WriteRune(ch)
			col++
		}
	}
	return expanded.String()
}

// calculateVisualColumn converts a 1-based byte column of line into a
// 0-based screen column.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
