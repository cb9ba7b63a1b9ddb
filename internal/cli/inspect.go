package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/engine"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize an IR document",
		Long: `Decode an IR document and print its dialect, format version, package,
definition and node counts and its structural fingerprint.

The fingerprint ignores attributes and the wire dialect: a Classic file and
its V4 migration share one fingerprint.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(formatter, cmd, path)
	if err != nil {
		return err
	}

	doc, err := engine.Decode(data)
	if err != nil {
		return formatter.fail(ExitFailure, decodeErrorCode(err), fmt.Sprintf("cannot decode %s", path), err, issueOf(err))
	}

	summary, err := engine.Inspect(doc)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeEncodeFailed, "cannot fingerprint document", err, nil)
	}

	if formatter.Structured() {
		return formatter.Success(summary)
	}
	writeSummary(formatter.Writer, summary)
	return nil
}

func writeSummary(w io.Writer, s *engine.Summary) {
	rows := []struct {
		label string
		value any
	}{
		{"Dialect", s.Dialect},
		{"Format version", s.FormatVersion},
		{"Distribution", s.Kind},
		{"Package", s.Package},
		{"Dependencies", s.Dependencies},
		{"Modules", s.Stats.Modules},
		{"Types", s.Stats.Types},
		{"Values", s.Stats.Values},
		{"Type nodes", s.Stats.TypeNodes},
		{"Pattern nodes", s.Stats.PatternNodes},
		{"Value nodes", s.Stats.ValueNodes},
		{"Fingerprint", s.Fingerprint},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-15s %v\n", r.label+":", r.value)
	}
}
