package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/engine"
)

// Issue locates a decode failure in the input document.
type Issue struct {
	Kind    string `json:"kind" yaml:"kind"`
	Path    string `json:"path" yaml:"path"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty"`
	Issue   *Issue `json:"issue,omitempty" yaml:"issue,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file decodes as Morphir IR",
		Long: `Decode an IR document in either dialect and report the first error.

The error names its kind, the JSON pointer of the offending node and the
tag of the enclosing node. Exit code 1 means the document is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(formatter, cmd, path)
	if err != nil {
		return err
	}

	doc, err := engine.Decode(data)
	if err != nil {
		return outputValidationFailure(formatter, path, err)
	}
	formatter.VerboseLog("Decoded %s document (format version %s)", doc.Dialect(), doc.FormatVersion())

	if formatter.Structured() {
		return formatter.Success(ValidationResult{Valid: true, Dialect: doc.Dialect().String()})
	}
	fmt.Fprintf(formatter.Writer, "\u2713 %s is valid (%s)\n", path, doc.Dialect())
	return nil
}

// issueOf extracts the location of a decode failure.
func issueOf(err error) *Issue {
	var ce *codec.Error
	if errors.As(err, &ce) {
		return &Issue{Kind: string(ce.Kind), Path: ce.Pointer(), Tag: ce.Tag, Message: ce.Message}
	}
	msg := err.Error()
	var ee *engine.Error
	if errors.As(err, &ee) && ee.Err != nil {
		msg = ee.Err.Error()
	}
	return &Issue{Kind: "INVALID_JSON", Message: msg}
}

// decodeErrorCode maps a facade error to a CLI error code.
func decodeErrorCode(err error) string {
	if engine.IsDetectError(err) {
		return ErrCodeDetectFailed
	}
	return ErrCodeDecodeFailed
}

// outputValidationFailure reports an invalid document.
func outputValidationFailure(formatter *OutputFormatter, path string, err error) error {
	issue := issueOf(err)
	code := decodeErrorCode(err)
	exitErr := NewExitError(ExitFailure, fmt.Sprintf("%s: %s is not valid IR", code, path))

	if formatter.Structured() {
		if encErr := formatter.Respond(CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Issue: issue},
			Error:  &CLIError{Code: code, Message: issue.Message},
		}); encErr != nil {
			return encErr
		}
		return exitErr
	}

	// Text format
	fmt.Fprintf(formatter.Writer, "\u2717 %s is not valid IR\n\n", path)
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, issue.Kind)
	if issue.Path != "" {
		fmt.Fprintf(formatter.Writer, "  at %s\n", issue.Path)
	}
	if issue.Tag != "" {
		fmt.Fprintf(formatter.Writer, "  in %s\n", issue.Tag)
	}
	fmt.Fprintf(formatter.Writer, "  %s\n", issue.Message)
	return exitErr
}
