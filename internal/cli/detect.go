package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/detect"
)

// DetectResult reports the dialect of a file.
type DetectResult struct {
	Path    string `json:"path" yaml:"path"`
	Dialect string `json:"dialect" yaml:"dialect"`
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Report the wire dialect of an IR file",
		Long: `Report whether an IR file is Classic or V4 without decoding it.

Detection looks at the format version envelope, or at the distribution tag
when the envelope is missing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDetect(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(formatter, cmd, path)
	if err != nil {
		return err
	}

	dialect, err := detect.DetectBytes(data)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeDetectFailed, fmt.Sprintf("cannot detect dialect of %s", path), err, issueOf(err))
	}

	if formatter.Structured() {
		return formatter.Success(DetectResult{Path: path, Dialect: dialect.String()})
	}
	fmt.Fprintln(formatter.Writer, dialect)
	return nil
}
