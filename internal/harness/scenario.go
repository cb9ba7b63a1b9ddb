package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/morphir-ir/internal/codec"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is the path of the input document. Relative paths are resolved
	// against the scenario file's directory by LoadScenario.
	Input string `yaml:"input,omitempty"`

	// Document is an inline input document. Exactly one of Input and
	// Document is set.
	Document string `yaml:"document,omitempty"`

	// Target is the dialect to migrate to ("v4", "classic", "latest").
	// Empty means decode only.
	Target string `yaml:"target,omitempty"`

	// Expanded selects expanded V4 output.
	Expanded bool `yaml:"expanded,omitempty"`

	// Assertions validate the outcome.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the outcome of a scenario.
type Assertion struct {
	// Type specifies the assertion type; see the Assert constants.
	Type string `yaml:"type"`

	// Dialect is the expected source dialect (used by dialect).
	Dialect string `yaml:"dialect,omitempty"`

	// Kind is the expected error kind (used by decode_error).
	Kind string `yaml:"kind,omitempty"`

	// Path is the expected JSON pointer (used by decode_error). Empty
	// skips the check.
	Path string `yaml:"path,omitempty"`

	// Field names the statistic (used by count).
	Field string `yaml:"field,omitempty"`

	// Count is the expected statistic value (used by count).
	Count int `yaml:"count,omitempty"`

	// Text is the expected substring (used by output_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertDialect           = "dialect"
	AssertDecodeError       = "decode_error"
	AssertRoundTrip         = "round_trip"
	AssertFingerprintStable = "fingerprint_stable"
	AssertCount             = "count"
	AssertOutputContains    = "output_contains"
)

// needsTarget lists the assertions that inspect the encoded output.
var needsTarget = []string{AssertRoundTrip, AssertFingerprintStable, AssertOutputContains}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative Input is resolved against the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving the input path relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve the input path BEFORE validation
	if scenario.Input != "" && !filepath.IsAbs(scenario.Input) && basePath != "" {
		scenario.Input = filepath.Join(basePath, scenario.Input)
	}

	// Validate required fields (now with resolved paths)
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("scenario name %q used by both %s and %s", s.Name, prev, p)
		}
		seen[s.Name] = p
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Input == "" && s.Document == "":
		return fmt.Errorf("one of input or document is required")
	case s.Input != "" && s.Document != "":
		return fmt.Errorf("input and document are mutually exclusive")
	}

	// Validate the input path exists
	if s.Input != "" {
		if _, err := os.Stat(s.Input); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", s.Input)
		}
	}

	if s.Target != "" {
		target, err := codec.ParseDialect(s.Target)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		if s.Expanded && target != codec.V4 {
			return fmt.Errorf("expanded applies to V4 output only")
		}
	} else if s.Expanded {
		return fmt.Errorf("expanded requires a target")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	// Validate assertions
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s.Target != ""); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, hasTarget bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	if slices.Contains(needsTarget, a.Type) && !hasTarget {
		return fmt.Errorf("assertions[%d]: %s requires a target", index, a.Type)
	}

	switch a.Type {
	case AssertDialect:
		if _, err := codec.ParseDialect(a.Dialect); err != nil {
			return fmt.Errorf("assertions[%d]: dialect: %w", index, err)
		}
	case AssertDecodeError:
		switch codec.ErrorKind(a.Kind) {
		case codec.ErrMalformedShape, codec.ErrUnknownFormatVersion, codec.ErrFieldTypeMismatch:
		default:
			return fmt.Errorf("assertions[%d]: unknown error kind %q for decode_error", index, a.Kind)
		}
	case AssertRoundTrip, AssertFingerprintStable:
	case AssertCount:
		if _, ok := statFields[a.Field]; !ok {
			return fmt.Errorf("assertions[%d]: unknown field %q for count", index, a.Field)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
