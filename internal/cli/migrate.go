package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/engine"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// MigrateOptions holds flags for the migrate command.
type MigrateOptions struct {
	*RootOptions
	Target   string
	Expanded bool
	Pretty   bool
	Output   string
}

// MigrateResult is the structured result of a migration written to a file.
type MigrateResult struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Output string `json:"output" yaml:"output"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MigrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Convert an IR document to another dialect",
		Long: `Decode an IR document in either dialect and write it in the target dialect.

Without --output the migrated document is written to standard output.
V4 output is compact unless --expanded is given, which writes every
optional field including empty attributes.`,
		Example: `  morphir-ir migrate morphir-ir.json --target v4 -o morphir-ir.v4.json
  morphir-ir migrate morphir-ir.v4.json --target classic --pretty`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Target, "target", "t", "latest", "target dialect (latest|v4|classic)")
	cmd.Flags().BoolVar(&opts.Expanded, "expanded", false, "write every optional V4 field")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "indent the output document")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runMigrate(opts *MigrateOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	target, err := codec.ParseDialect(opts.Target)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "invalid --target", err, nil)
	}
	if opts.Expanded && target != codec.V4 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, "--expanded applies to V4 output only", nil, nil)
	}

	data, err := readInput(formatter, cmd, path)
	if err != nil {
		return err
	}

	var encOpts []v4.EncodeOption
	if opts.Expanded {
		encOpts = append(encOpts, v4.Expanded())
	}
	res, err := engine.Migrate(data, target, encOpts...)
	switch {
	case engine.IsDetectError(err) || engine.IsDecodeError(err):
		return formatter.fail(ExitFailure, decodeErrorCode(err), fmt.Sprintf("cannot decode %s", path), err, issueOf(err))
	case err != nil:
		return formatter.fail(ExitCommandError, ErrCodeEncodeFailed, "cannot encode document", err, nil)
	}
	formatter.VerboseLog("Migrated %s -> %s", res.Source, res.Target)

	out := res.Output
	if opts.Pretty {
		if out, err = jsonv.Indent(out); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeEncodeFailed, "cannot indent output", err, nil)
		}
	}
	out = append(out, '\n')

	if opts.Output == "" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeWriteFailed, "cannot write output", err, nil)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, out, 0o644); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("cannot write %s", opts.Output), err, nil)
	}

	result := MigrateResult{
		Source: res.Source.String(),
		Target: res.Target.String(),
		Output: opts.Output,
		Bytes:  len(out),
	}
	if formatter.Structured() {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "\u2713 Migrated %s (%s -> %s) to %s\n", path, result.Source, result.Target, result.Output)
	return nil
}
