package harness

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/engine"
	"github.com/roach88/morphir-ir/internal/traverse"
)

// AssertionContext carries the scenario settings assertions need.
type AssertionContext struct {
	// Target is the output dialect, empty for decode-only scenarios.
	Target codec.Dialect

	// Options are the V4 encode options used for the output.
	Options []v4.EncodeOption
}

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	// Header with assertion type
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)

	// Expected vs Actual (most important info)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	// Full trace for context
	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, event)
	}

	return buf.String()
}

// statFields maps count assertion fields to statistics.
var statFields = map[string]func(traverse.Stats) int{
	"modules":      func(s traverse.Stats) int { return s.Modules },
	"types":        func(s traverse.Stats) int { return s.Types },
	"values":       func(s traverse.Stats) int { return s.Values },
	"typeNodes":    func(s traverse.Stats) int { return s.TypeNodes },
	"patternNodes": func(s traverse.Stats) int { return s.PatternNodes },
	"valueNodes":   func(s traverse.Stats) int { return s.ValueNodes },
	"nodes":        traverse.Stats.Nodes,
}

// assertDialect checks the detected source dialect.
func assertDialect(result *Result, assertion Assertion) error {
	want, err := codec.ParseDialect(assertion.Dialect)
	if err != nil {
		return err
	}
	if result.Source != want {
		return &AssertionError{
			Type:     AssertDialect,
			Expected: want.String(),
			Actual:   orNone(result.Source.String()),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertDecodeError checks that decoding failed with the given kind and,
// if set, at the given path.
func assertDecodeError(result *Result, assertion Assertion) error {
	expected := assertion.Kind
	if assertion.Path != "" {
		expected += " at " + assertion.Path
	}
	if result.Issue == nil {
		return &AssertionError{
			Type:     AssertDecodeError,
			Expected: expected,
			Actual:   "document decoded",
			Trace:    result.Trace,
		}
	}
	if string(result.Issue.Kind) != assertion.Kind ||
		(assertion.Path != "" && result.Issue.Path != assertion.Path) {
		return &AssertionError{
			Type:     AssertDecodeError,
			Expected: expected,
			Actual:   fmt.Sprintf("%s at %s: %s", result.Issue.Kind, orNone(result.Issue.Path), result.Issue.Message),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertRoundTrip checks that the output is a fixpoint: decoding it and
// encoding it again with the same options reproduces it.
func assertRoundTrip(result *Result, actx *AssertionContext) error {
	if result.Output == nil {
		return missingOutput(AssertRoundTrip, result)
	}
	doc, err := engine.Decode(result.Output)
	if err != nil {
		return &AssertionError{Type: AssertRoundTrip, Expected: "output decodes", Actual: err.Error(), Trace: result.Trace}
	}
	again, err := engine.Encode(doc, actx.Target, actx.Options...)
	if err != nil {
		return &AssertionError{Type: AssertRoundTrip, Expected: "output re-encodes", Actual: err.Error(), Trace: result.Trace}
	}
	if !bytes.Equal(again, result.Output) {
		return &AssertionError{
			Type:     AssertRoundTrip,
			Expected: string(result.Output),
			Actual:   string(again),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertFingerprintStable checks that migration kept the structure.
func assertFingerprintStable(result *Result) error {
	if result.Output == nil || result.Document == nil {
		return missingOutput(AssertFingerprintStable, result)
	}
	out, err := engine.Decode(result.Output)
	if err != nil {
		return &AssertionError{Type: AssertFingerprintStable, Expected: "output decodes", Actual: err.Error(), Trace: result.Trace}
	}
	before, err := engine.Fingerprint(result.Document)
	if err != nil {
		return err
	}
	after, err := engine.Fingerprint(out)
	if err != nil {
		return err
	}
	if before != after {
		return &AssertionError{
			Type:     AssertFingerprintStable,
			Expected: before,
			Actual:   after,
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertCount checks a node statistic of the decoded input.
func assertCount(result *Result, assertion Assertion) error {
	stat, ok := statFields[assertion.Field]
	if !ok {
		return fmt.Errorf("unknown count field %q", assertion.Field)
	}
	if result.Document == nil {
		return missingOutput(AssertCount, result)
	}
	summary, err := engine.Inspect(result.Document)
	if err != nil {
		return err
	}
	if got := stat(summary.Stats); got != assertion.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%s = %d", assertion.Field, assertion.Count),
			Actual:   fmt.Sprintf("%s = %d", assertion.Field, got),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertOutputContains checks for a substring of the encoded output.
func assertOutputContains(result *Result, assertion Assertion) error {
	if result.Output == nil {
		return missingOutput(AssertOutputContains, result)
	}
	if !bytes.Contains(result.Output, []byte(assertion.Text)) {
		return &AssertionError{
			Type:     AssertOutputContains,
			Expected: fmt.Sprintf("output containing %s", assertion.Text),
			Actual:   string(result.Output),
			Trace:    result.Trace,
		}
	}
	return nil
}

func missingOutput(kind string, result *Result) error {
	actual := "no output"
	if result.Issue != nil {
		actual = fmt.Sprintf("input did not decode: %s", result.Issue.Message)
	}
	return &AssertionError{Type: kind, Expected: "a decoded document", Actual: actual, Trace: result.Trace}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// EvaluateAssertions runs all assertions and returns error messages.
// An input that fails to decode is itself an error unless a decode_error
// assertion expects it.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string

	expectsFailure := false
	for _, a := range assertions {
		if a.Type == AssertDecodeError {
			expectsFailure = true
		}
	}
	if result.Issue != nil && !expectsFailure {
		errs = append(errs, fmt.Sprintf("unexpected decode failure: %s at %s: %s",
			result.Issue.Kind, orNone(result.Issue.Path), result.Issue.Message))
	}

	for i, assertion := range assertions {
		var err error
		switch assertion.Type {
		case AssertDialect:
			err = assertDialect(result, assertion)
		case AssertDecodeError:
			err = assertDecodeError(result, assertion)
		case AssertRoundTrip:
			err = assertRoundTrip(result, actx)
		case AssertFingerprintStable:
			err = assertFingerprintStable(result)
		case AssertCount:
			err = assertCount(result, assertion)
		case AssertOutputContains:
			err = assertOutputContains(result, assertion)
		default:
			err = fmt.Errorf("unknown assertion type: %s", assertion.Type)
		}

		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d (%s): %v", i, assertion.Type, err))
		}
	}

	return errs
}
