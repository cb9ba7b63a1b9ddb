package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/detect"
	"github.com/roach88/morphir-ir/internal/engine"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// Harness executes scenarios.
type Harness struct {
	logger *slog.Logger
}

// New returns a Harness logging to logger. A nil logger discards.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a silent harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
//  1. Read the input document
//  2. Detect its dialect and decode it
//  3. If the scenario has a target, encode and re-decode the output
//  4. Evaluate assertions against the result
//
// Detect and decode failures are part of the result, not errors; an error
// is returned only when the input cannot be read or encoding fails.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	data, err := scenario.input()
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	actx := &AssertionContext{}
	if scenario.Target != "" {
		if actx.Target, err = codec.ParseDialect(scenario.Target); err != nil {
			return nil, fmt.Errorf("invalid target: %w", err)
		}
		if scenario.Expanded {
			actx.Options = append(actx.Options, v4.Expanded())
		}
	}

	result := NewResult()
	if err := h.execute(data, actx, result); err != nil {
		return nil, err
	}

	// Evaluate assertions against the result
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	h.logger.Info("scenario completed",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (h *Harness) execute(data []byte, actx *AssertionContext, result *Result) error {
	v, err := jsonv.Parse(data)
	if err != nil {
		result.fail(StageDetect, "", err)
		return nil
	}

	dialect, err := detect.Detect(v)
	if err != nil {
		result.fail(StageDetect, "", err)
		return nil
	}
	result.Source = dialect
	result.AddTrace(StageDetect, dialect, "")

	doc, err := engine.DecodeValue(v)
	if err != nil {
		result.fail(StageDecode, dialect, err)
		return nil
	}
	result.Document = doc
	result.AddTrace(StageDecode, dialect, doc.Kind()+" "+doc.PackageName().String())
	h.logger.Debug("input decoded", "dialect", dialect, "kind", doc.Kind())

	if actx.Target == "" {
		return nil
	}

	out, err := engine.Encode(doc, actx.Target, actx.Options...)
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", actx.Target, err)
	}
	result.Output = out
	result.AddTrace(StageEncode, actx.Target, "")

	redecoded, err := engine.Decode(out)
	if err != nil {
		result.AddTrace(StageRedecode, actx.Target, "failed")
		result.AddError(fmt.Sprintf("encoded output does not decode: %v", err))
		return nil
	}
	result.AddTrace(StageRedecode, redecoded.Dialect(), "")
	return nil
}

// fail records a detect or decode failure.
func (r *Result) fail(stage string, dialect codec.Dialect, err error) {
	issue := issueOf(err)
	r.Issue = issue
	detail := string(issue.Kind)
	if issue.Path != "" {
		detail += " " + issue.Path
	}
	r.AddTrace(stage, dialect, detail)
}

// invalidJSON is the issue kind of input that is not JSON at all.
const invalidJSON codec.ErrorKind = "INVALID_JSON"

func issueOf(err error) *DecodeIssue {
	var ce *codec.Error
	if errors.As(err, &ce) {
		return &DecodeIssue{Kind: ce.Kind, Path: ce.Pointer(), Tag: ce.Tag, Message: ce.Message}
	}
	return &DecodeIssue{Kind: invalidJSON, Message: err.Error()}
}

func (s *Scenario) input() ([]byte, error) {
	if s.Document != "" {
		return []byte(strings.TrimSpace(s.Document)), nil
	}
	return os.ReadFile(s.Input)
}
