package traverse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/naming"
	"github.com/roach88/morphir-ir/internal/testutil"
)

type ca = ir.ClassicAttrs

func classicDoc(dist ir.ClassicDistribution) *ir.ClassicDocument {
	return &ir.ClassicDocument{FormatVersion: ir.DefaultClassicVersion, Distribution: dist}
}

func TestCursor(t *testing.T) {
	var c Cursor
	assert.Equal(t, "/", c.String())
	assert.Equal(t, 0, c.Depth())

	c.Enter("modules")
	c.Enter("ledger")
	assert.Equal(t, "/modules/ledger", c.String())
	assert.Equal(t, 2, c.Depth())

	path := c.Path()
	path[0] = "changed"
	assert.Equal(t, []string{"modules", "ledger"}, c.Path())

	c.Exit()
	c.Exit()
	c.Exit()
	assert.Equal(t, "/", c.String())
}

type refCollector struct {
	Defaults[ca, ca]
	refs []string
}

func (r *refCollector) VisitValue(w *Walker[ca, ca], v ir.ClassicValue) error {
	if ref, ok := v.(ir.ReferenceValue[ca, ca]); ok {
		r.refs = append(r.refs, ref.FQName.CanonicalString())
	}
	return w.ValueChildren(v)
}

func TestWalk_DefaultsEmbedding(t *testing.T) {
	rc := &refCollector{}
	require.NoError(t, Walk[ca, ca](classicDoc(testutil.SampleLibrary(testutil.Classic())), rc))

	assert.ElementsMatch(t, []string{
		testutil.FoldlFQ.CanonicalString(),
		testutil.SubtractFQ.CanonicalString(),
		testutil.AddFQ.CanonicalString(),
		testutil.AddFQ.CanonicalString(),
		testutil.BalanceFQ.CanonicalString(),
	}, rc.refs)
}

type lambdaSkipper struct {
	Defaults[ca, ca]
	values int
}

func (s *lambdaSkipper) VisitValue(w *Walker[ca, ca], v ir.ClassicValue) error {
	s.values++
	if _, ok := v.(ir.LambdaValue[ca, ca]); ok {
		return nil
	}
	return w.ValueChildren(v)
}

func TestWalk_VisitorControlsDescent(t *testing.T) {
	b := testutil.Classic()
	v := b.Apply(b.Var("f"), b.Lambda(b.Bind("x"), b.Apply(b.Var("g"), b.Var("x"))))

	s := &lambdaSkipper{}
	require.NoError(t, WalkValue[ca, ca](v, s))
	// Apply, f, Lambda; the lambda body is skipped.
	assert.Equal(t, 3, s.values)
	assert.Equal(t, 6, CountValue[ca, ca](v).ValueNodes)
}

func TestWalk_StopsAtFirstError(t *testing.T) {
	errStop := errors.New("stop")
	var at string
	visited := 0

	f := &Funcs[ir.TypeAttributes, ir.ValueAttributes]{
		Value: func(c *Cursor, v ir.V4Value) error {
			visited++
			if _, ok := v.(ir.HoleValue[ir.TypeAttributes, ir.ValueAttributes]); ok {
				at = c.String()
				return errStop
			}
			return nil
		},
	}

	doc := &ir.V4Document{FormatVersion: ir.DefaultV4Version, Distribution: testutil.SampleApplication(testutil.V4())}
	err := Walk[ir.TypeAttributes, ir.ValueAttributes](doc, f)
	require.ErrorIs(t, err, errStop)
	assert.Same(t, errStop, err)
	assert.Equal(t, "/distribution/def/modules/ledger/draft/values/todo/body", at)

	before := visited
	_ = Walk[ir.TypeAttributes, ir.ValueAttributes](doc, f)
	assert.Equal(t, before*2, visited)
}

func TestWalk_CursorPositions(t *testing.T) {
	b := testutil.Classic()
	v := b.Apply(b.Var("f"), ir.IfThenElseValue[ca, ca]{
		Condition: b.Var("c"),
		Then:      b.Unit(),
		Else:      b.Tuple(b.Unit(), b.Var("z")),
	})

	var paths []string
	err := WalkValue[ca, ca](v, &Funcs[ca, ca]{
		Value: func(c *Cursor, v ir.ClassicValue) error {
			if _, ok := v.(ir.VariableValue[ca, ca]); ok {
				paths = append(paths, c.String())
			}
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/function",
		"/argument/condition",
		"/argument/else-branch/elements/1",
	}, paths)
}

func TestCount(t *testing.T) {
	b := testutil.Classic()

	specs := Count(classicDoc(testutil.SampleSpecs(b)))
	assert.Equal(t, 3, specs.Modules)
	assert.Equal(t, 5, specs.Types)
	assert.Equal(t, 3, specs.Values)
	assert.Zero(t, specs.PatternNodes)
	assert.Zero(t, specs.ValueNodes)
	assert.Equal(t, specs.TypeNodes, specs.Nodes())

	lib := Count(classicDoc(testutil.SampleLibrary(b)))
	assert.Equal(t, 4, lib.Modules)
	assert.Greater(t, lib.ValueNodes, 0)
	assert.Greater(t, lib.PatternNodes, 0)

	app := Count(classicDoc(testutil.SampleApplication(b)))
	assert.Equal(t, 5, app.Modules)
	assert.Greater(t, app.Values, lib.Values)
}

func TestMapAttributes_ClassicToV4(t *testing.T) {
	toV4 := MapAttributes(
		func(ca) ir.TypeAttributes { return ir.TypeAttributes{} },
		func(ca) ir.ValueAttributes { return ir.ValueAttributes{} },
	)

	for name, dist := range map[string]ir.ClassicDistribution{
		"library":     testutil.SampleLibrary(testutil.Classic()),
		"application": testutil.SampleApplication(testutil.Classic()),
		"specs":       testutil.SampleSpecs(testutil.Classic()),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := TransformDocument(classicDoc(dist), toV4)
			require.NoError(t, err)

			var want ir.V4Distribution
			switch name {
			case "library":
				want = testutil.SampleLibrary(testutil.V4())
			case "application":
				want = testutil.SampleApplication(testutil.V4())
			default:
				want = testutil.SampleSpecs(testutil.V4())
			}
			assert.Equal(t, ir.DefaultClassicVersion, got.FormatVersion)
			if diff := cmp.Diff(want, got.Distribution, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("transformed tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type renamer struct {
	TransformDefaults[ca, ca, ca, ca]
	from, to string
}

func (renamer) TypeAttributes(a ca) ca  { return a }
func (renamer) ValueAttributes(a ca) ca { return a }

func (rn renamer) TransformValue(r *Rewriter[ca, ca, ca, ca], v ir.ClassicValue) (ir.ClassicValue, error) {
	if variable, ok := v.(ir.VariableValue[ca, ca]); ok && variable.Name.String() == rn.from {
		variable.Name = naming.ParseName(rn.to)
		return variable, nil
	}
	return r.RebuildValue(v)
}

func TestTransformValue_Override(t *testing.T) {
	b := testutil.Classic()
	v := b.Apply(b.Var("f"), b.Var("x"), b.Lambda(b.Bind("x"), b.Var("x")))
	want := b.Apply(b.Var("f"), b.Var("y"), b.Lambda(b.Bind("x"), b.Var("y")))

	got, err := TransformValue[ca, ca, ca, ca](v, renamer{from: "x", to: "y"})
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rename mismatch (-want +got):\n%s", diff)
	}
}

type failOnHole struct {
	TransformDefaults[ir.TypeAttributes, ir.ValueAttributes, ca, ca]
	err error
	at  *string
}

func (failOnHole) TypeAttributes(ir.TypeAttributes) ca   { return ca{} }
func (failOnHole) ValueAttributes(ir.ValueAttributes) ca { return ca{} }

func (f failOnHole) TransformValue(r *Rewriter[ir.TypeAttributes, ir.ValueAttributes, ca, ca], v ir.V4Value) (ir.ClassicValue, error) {
	if _, ok := v.(ir.HoleValue[ir.TypeAttributes, ir.ValueAttributes]); ok {
		*f.at = r.Cursor().String()
		return nil, f.err
	}
	return r.RebuildValue(v)
}

func TestTransformDocument_Error(t *testing.T) {
	errHole := errors.New("hole")
	var at string
	doc := &ir.V4Document{FormatVersion: ir.DefaultV4Version, Distribution: testutil.SampleApplication(testutil.V4())}

	_, err := TransformDocument[ir.TypeAttributes, ir.ValueAttributes, ca, ca](doc, failOnHole{err: errHole, at: &at})
	assert.Same(t, errHole, err)
	assert.Equal(t, "/distribution/def/modules/ledger/draft/values/todo/body", at)
}

func TestDeepApplyChain(t *testing.T) {
	const depth = 1000
	v := testutil.ApplyChain(testutil.Classic(), depth)

	assert.Equal(t, testutil.ApplyChainNodes(depth), CountValue[ca, ca](v).ValueNodes)

	got, err := TransformValue(v, MapAttributes(
		func(ca) ir.TypeAttributes { return ir.TypeAttributes{} },
		func(ca) ir.ValueAttributes { return ir.ValueAttributes{} },
	))
	require.NoError(t, err)
	assert.Equal(t, testutil.ApplyChain(testutil.V4(), depth), got)
	assert.Equal(t, testutil.ApplyChainNodes(depth), CountValue[ir.TypeAttributes, ir.ValueAttributes](got).ValueNodes)
}
