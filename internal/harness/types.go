package harness

import (
	"strings"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/engine"
)

// Pipeline stages recorded in a trace.
const (
	StageDetect   = "detect"
	StageDecode   = "decode"
	StageEncode   = "encode"
	StageRedecode = "redecode"
)

// TraceEvent records one pipeline stage.
type TraceEvent struct {
	Stage   string `json:"stage" yaml:"stage"`
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// String renders the event as "stage dialect detail", omitting empty parts.
func (e TraceEvent) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Stage, e.Dialect, e.Detail} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// DecodeIssue locates a detect or decode failure.
type DecodeIssue struct {
	Kind    codec.ErrorKind `json:"kind" yaml:"kind"`
	Path    string          `json:"path" yaml:"path"`
	Tag     string          `json:"tag,omitempty" yaml:"tag,omitempty"`
	Message string          `json:"message" yaml:"message"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: the pipeline ran as far as the
	// scenario asked and every assertion held.
	Pass bool `json:"pass"`

	// Trace lists the pipeline stages in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Source is the detected dialect, empty if detection failed.
	Source codec.Dialect `json:"source,omitempty"`

	// Issue is set when detection or decoding failed.
	Issue *DecodeIssue `json:"issue,omitempty"`

	// Document is the decoded input.
	Document *engine.Document `json:"-"`

	// Output is the encoded document when the scenario has a target.
	Output []byte `json:"-"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a stage to the trace.
func (r *Result) AddTrace(stage string, dialect codec.Dialect, detail string) {
	r.Trace = append(r.Trace, TraceEvent{Stage: stage, Dialect: dialect.String(), Detail: detail})
}
