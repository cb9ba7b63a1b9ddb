package testutil

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/naming"
)

// Package and module names used by the sample distributions.
const (
	SDKPackage    = "morphir/s-d-k"
	SamplePackage = "acme/finance"
	SampleModule  = "ledger"
	DraftModule   = "ledger/draft"
)

// Fully qualified names referenced by the samples.
var (
	FloatFQ    = naming.FQNameOf(SDKPackage, "basics", "float")
	StringFQ   = naming.FQNameOf(SDKPackage, "string", "string")
	BoolFQ     = naming.FQNameOf(SDKPackage, "basics", "bool")
	IntFQ      = naming.FQNameOf(SDKPackage, "basics", "int")
	ListFQ     = naming.FQNameOf(SDKPackage, "list", "list")
	AddFQ      = naming.FQNameOf(SDKPackage, "basics", "add")
	SubtractFQ = naming.FQNameOf(SDKPackage, "basics", "subtract")
	FoldlFQ    = naming.FQNameOf(SDKPackage, "list", "foldl")

	AmountFQ  = naming.FQNameOf(SamplePackage, SampleModule, "amount")
	EntryFQ   = naming.FQNameOf(SamplePackage, SampleModule, "entry")
	AccountFQ = naming.FQNameOf(SamplePackage, SampleModule, "account")
	DebitFQ   = naming.FQNameOf(SamplePackage, SampleModule, "debit")
	CreditFQ  = naming.FQNameOf(SamplePackage, SampleModule, "credit")
	BalanceFQ = naming.FQNameOf(SamplePackage, SampleModule, "balance")
	SummaryFQ = naming.FQNameOf(SamplePackage, SampleModule, "summary")
)

// SampleLibrary builds a library that uses every node kind of the Classic
// dialect: all type, pattern and value variants, alias and custom type
// definitions of both access levels, and one dependency.
func SampleLibrary[TA, VA any](b Builder[TA, VA]) ir.Library[TA, VA] {
	return ir.Library[TA, VA]{
		Package:      naming.ParsePackageName(SamplePackage),
		Dependencies: []ir.Dependency[TA]{SDKDependency(b)},
		Definition: ir.PackageDefinition[TA, VA]{
			Modules: []ir.ModuleDefinitionEntry[TA, VA]{{
				Name:       naming.ParseModuleName(SampleModule),
				Access:     ir.Public,
				Definition: LedgerModule(b),
			}},
		},
	}
}

// SampleApplication extends SampleLibrary with the draft module, which
// holds the V4-only constructs, and one entry point.
func SampleApplication[TA, VA any](b Builder[TA, VA]) ir.Application[TA, VA] {
	lib := SampleLibrary(b)
	modules := append(lib.Definition.Modules, ir.ModuleDefinitionEntry[TA, VA]{
		Name:       naming.ParseModuleName(DraftModule),
		Access:     ir.Private,
		Definition: DraftModuleDefinition(b),
	})
	return ir.Application[TA, VA]{
		Package:      lib.Package,
		Dependencies: lib.Dependencies,
		Definition:   ir.PackageDefinition[TA, VA]{Modules: modules},
		EntryPoints: []ir.EntryPoint{{
			Name:   Name("main"),
			Target: SummaryFQ,
			Kind:   ir.EntryMain,
			Doc:    "Print an account summary",
		}},
	}
}

// SampleSpecs is a specs-only distribution of the SDK subset the samples use.
func SampleSpecs[TA, VA any](b Builder[TA, VA]) ir.Specs[TA, VA] {
	dep := SDKDependency(b)
	return ir.Specs[TA, VA]{
		Package:       dep.Name,
		Specification: dep.Specification,
	}
}

// SDKDependency is the specification of the SDK subset the samples use.
func SDKDependency[TA, VA any](b Builder[TA, VA]) ir.Dependency[TA] {
	float := b.TRef(FloatFQ)
	basics := ir.ModuleSpecification[TA]{
		Types: []ir.TypeSpecificationEntry[TA]{
			{Name: Name("float"), Specification: ir.OpaqueTypeSpecification[TA]{}},
			{Name: Name("int"), Specification: ir.OpaqueTypeSpecification[TA]{}},
			{Name: Name("bool"), Doc: "True or False", Specification: ir.CustomTypeSpecification[TA]{
				Constructors: []ir.Constructor[TA]{{Name: Name("true")}, {Name: Name("false")}},
			}},
		},
		Values: []ir.ValueSpecificationEntry[TA]{
			{Name: Name("add"), Specification: ir.ValueSpecification[TA]{
				Inputs: []ir.SpecInput[TA]{{Name: Name("a"), Type: float}, {Name: Name("b"), Type: float}},
				Output: float,
			}},
			{Name: Name("subtract"), Specification: ir.ValueSpecification[TA]{
				Inputs: []ir.SpecInput[TA]{{Name: Name("a"), Type: float}, {Name: Name("b"), Type: float}},
				Output: float,
			}},
		},
		Doc: "Basic arithmetic",
	}
	list := ir.ModuleSpecification[TA]{
		Types: []ir.TypeSpecificationEntry[TA]{
			{Name: Name("list"), Specification: ir.OpaqueTypeSpecification[TA]{Params: Names("a")}},
		},
		Values: []ir.ValueSpecificationEntry[TA]{
			{Name: Name("foldl"), Specification: ir.ValueSpecification[TA]{
				Inputs: []ir.SpecInput[TA]{
					{Name: Name("f"), Type: b.TFunc(b.TVar("b"), b.TVar("a"), b.TVar("b"))},
					{Name: Name("init"), Type: b.TVar("b")},
					{Name: Name("xs"), Type: b.TRef(ListFQ, b.TVar("a"))},
				},
				Output: b.TVar("b"),
			}},
		},
	}
	str := ir.ModuleSpecification[TA]{
		Types: []ir.TypeSpecificationEntry[TA]{
			{Name: Name("string"), Specification: ir.TypeAliasSpecification[TA]{Type: b.TRef(ListFQ, b.TRef(IntFQ))}},
		},
	}
	return ir.Dependency[TA]{
		Name: naming.ParsePackageName(SDKPackage),
		Specification: ir.PackageSpecification[TA]{Modules: []ir.ModuleSpecificationEntry[TA]{
			{Name: naming.ParseModuleName("basics"), Specification: basics},
			{Name: naming.ParseModuleName("list"), Specification: list},
			{Name: naming.ParseModuleName("string"), Specification: str},
		}},
	}
}

// LedgerModule is the main sample module.
func LedgerModule[TA, VA any](b Builder[TA, VA]) ir.ModuleDefinition[TA, VA] {
	float := b.TRef(FloatFQ)
	amount := b.TRef(AmountFQ)
	entryT := b.TRef(EntryFQ)
	account := b.TRef(AccountFQ)

	types := []ir.TypeDefinitionEntry[TA]{
		{Name: Name("amount"), Access: ir.Public, Doc: "A monetary amount", Definition: ir.TypeAliasDefinition[TA]{Type: float}},
		{Name: Name("entry"), Access: ir.Public, Definition: ir.CustomTypeDefinition[TA]{
			Access: ir.Public,
			Constructors: []ir.Constructor[TA]{
				{Name: Name("debit"), Args: []ir.ConstructorArg[TA]{{Name: Name("amount"), Type: amount}}},
				{Name: Name("credit"), Args: []ir.ConstructorArg[TA]{{Name: Name("amount"), Type: amount}}},
			},
		}},
		{Name: Name("account"), Access: ir.Public, Definition: ir.TypeAliasDefinition[TA]{Type: b.TRecord(
			b.TField("id", b.TRef(StringFQ)),
			b.TField("balance", amount),
			b.TField("entries", b.TRef(ListFQ, entryT)),
		)}},
		{Name: Name("named"), Access: ir.Public, Definition: ir.TypeAliasDefinition[TA]{
			Params: Names("a"),
			Type: ir.ExtensibleRecordType[TA]{Attrs: b.TA, Variable: Name("a"), Fields: []ir.Field[TA]{
				b.TField("name", b.TRef(StringFQ)),
			}},
		}},
		{Name: Name("handler"), Access: ir.Private, Definition: ir.TypeAliasDefinition[TA]{
			Params: Names("a"),
			Type:   b.TFunc(b.TTuple(b.TRef(StringFQ), b.TVar("a")), b.TUnit()),
		}},
		{Name: Name("audit token"), Access: ir.Private, Definition: ir.CustomTypeDefinition[TA]{
			Access:       ir.Private,
			Constructors: []ir.Constructor[TA]{{Name: Name("audit token")}},
		}},
	}

	// balance entries = foldl (\entry acc -> case entry of ...) 0 entries
	step := b.Lambda(b.Bind("entry"), b.Lambda(b.Bind("acc"), ir.PatternMatchValue[TA, VA]{
		Attrs:   b.VA,
		Subject: b.Var("entry"),
		Cases: []ir.MatchCase[TA, VA]{
			{
				Pattern: ir.ConstructorPattern[VA]{Attrs: b.VA, FQName: DebitFQ, Args: []ir.Pattern[VA]{b.Bind("amount")}},
				Body:    b.Apply(b.Ref(SubtractFQ), b.Var("acc"), b.Var("amount")),
			},
			{
				Pattern: ir.ConstructorPattern[VA]{Attrs: b.VA, FQName: CreditFQ, Args: []ir.Pattern[VA]{b.Bind("amount")}},
				Body:    b.Apply(b.Ref(AddFQ), b.Var("acc"), b.Var("amount")),
			},
		},
	}))
	balance := b.Def(amount,
		b.Apply(b.Ref(FoldlFQ), step, b.Lit(ir.FloatLiteral{Value: 0}), b.Var("entries")),
		b.Input("entries", b.TRef(ListFQ, entryT)),
	)

	// count xs = case xs of [] -> 0; _ :: rest -> 1 + count rest
	count := b.Def(b.TRef(IntFQ),
		ir.PatternMatchValue[TA, VA]{
			Attrs:   b.VA,
			Subject: b.Var("xs"),
			Cases: []ir.MatchCase[TA, VA]{
				{Pattern: ir.EmptyListPattern[VA]{Attrs: b.VA}, Body: b.Int(0)},
				{
					Pattern: ir.HeadTailPattern[VA]{Attrs: b.VA, Head: b.Wildcard(), Tail: b.Bind("rest")},
					Body:    b.Apply(b.Ref(AddFQ), b.Int(1), b.Apply(b.Var("count"), b.Var("rest"))),
				},
			},
		},
		b.Input("xs", b.TRef(ListFQ, b.TVar("a"))),
	)

	details := ir.RecordValue[TA, VA]{Attrs: b.VA, Fields: []ir.RecordEntry[TA, VA]{
		b.Entry("label", b.Var("label")),
		b.Entry("sizes", b.List(b.Apply(b.Var("count"), ir.FieldValue[TA, VA]{Attrs: b.VA, Record: b.Var("account"), Name: Name("entries")}), b.Int(-1))),
		b.Entry("grade", b.Lit(ir.CharLiteral{Value: 'a'})),
		b.Entry("ratio", b.Lit(ir.FloatLiteral{Value: 1.5})),
		b.Entry("exact", b.Lit(ir.DecimalLiteral{Value: "1.230"})),
		b.Entry("getter", ir.FieldFunctionValue[TA, VA]{Attrs: b.VA, Name: Name("balance")}),
		b.Entry("kind", b.Apply(b.Ctor(DebitFQ), b.Lit(ir.FloatLiteral{Value: 2.25}))),
		b.Entry("check", ir.PatternMatchValue[TA, VA]{
			Attrs:   b.VA,
			Subject: b.Tuple(b.Unit(), b.Var("label")),
			Cases: []ir.MatchCase[TA, VA]{
				{
					Pattern: ir.TuplePattern[VA]{Attrs: b.VA, Elements: []ir.Pattern[VA]{
						ir.UnitPattern[VA]{Attrs: b.VA},
						ir.LiteralPattern[VA]{Attrs: b.VA, Literal: ir.StringLiteral{Value: "summary"}},
					}},
					Body: b.Lit(ir.BoolLiteral{Value: true}),
				},
				{Pattern: b.Wildcard(), Body: b.Lit(ir.BoolLiteral{Value: false})},
			},
		}),
	}}

	summaryBody := ir.LetDefinitionValue[TA, VA]{
		Attrs:      b.VA,
		Name:       Name("total"),
		Definition: b.Def(amount, b.Apply(b.Ref(BalanceFQ), ir.FieldValue[TA, VA]{Attrs: b.VA, Record: b.Var("account"), Name: Name("entries")})),
		In: ir.LetRecursionValue[TA, VA]{
			Attrs:    b.VA,
			Bindings: []ir.LetBinding[TA, VA]{{Name: Name("count"), Definition: count}},
			In: ir.DestructureValue[TA, VA]{
				Attrs:   b.VA,
				Pattern: ir.TuplePattern[VA]{Attrs: b.VA, Elements: []ir.Pattern[VA]{b.Bind("label"), b.Bind("flag")}},
				Value:   b.Tuple(b.Str("summary"), b.Lit(ir.BoolLiteral{Value: true})),
				In: ir.IfThenElseValue[TA, VA]{
					Attrs:     b.VA,
					Condition: b.Var("flag"),
					Then: ir.UpdateRecordValue[TA, VA]{
						Attrs:  b.VA,
						Record: b.Var("account"),
						Fields: []ir.RecordEntry[TA, VA]{b.Entry("balance", b.Var("total"))},
					},
					Else: b.Tuple(b.Var("account"), details),
				},
			},
		},
	}

	values := []ir.ValueDefinitionEntry[TA, VA]{
		{Name: Name("balance"), Access: ir.Public, Doc: "Sum of all entries", Definition: balance},
		{Name: Name("summary"), Access: ir.Public, Definition: b.Def(b.TTuple(account, b.TUnit()), summaryBody, b.Input("account", account))},
		{Name: Name("identity"), Access: ir.Private, Definition: b.Def(
			b.TFunc(b.TVar("a"), b.TVar("a")),
			b.Lambda(b.Bind("x"), b.Var("x")),
		)},
	}

	return ir.ModuleDefinition[TA, VA]{Types: types, Values: values, Doc: "Double-entry ledger"}
}

// DraftModuleDefinition holds the constructs only V4 defines: holes,
// native and external values and bodies, and incomplete definitions.
func DraftModuleDefinition[TA, VA any](b Builder[TA, VA]) ir.ModuleDefinition[TA, VA] {
	float := b.TRef(FloatFQ)
	types := []ir.TypeDefinitionEntry[TA]{
		{Name: Name("pending"), Access: ir.Public, Definition: ir.IncompleteTypeDefinition[TA]{
			Params:         Names("a"),
			Incompleteness: ir.IncompleteHole{Reason: ir.Draft{}},
			Partial:        b.TVar("a"),
		}},
		{Name: Name("sketch"), Access: ir.Private, Definition: ir.IncompleteTypeDefinition[TA]{
			Incompleteness: ir.IncompleteDraft{},
		}},
	}
	values := []ir.ValueDefinitionEntry[TA, VA]{
		{Name: Name("todo"), Access: ir.Public, Definition: b.Def(float, ir.HoleValue[TA, VA]{
			Attrs:        b.VA,
			Reason:       ir.UnresolvedReference{Target: naming.FQNameOf(SamplePackage, SampleModule, "interest")},
			ExpectedType: float,
		})},
		{Name: Name("sqrt"), Access: ir.Public, Definition: ir.ValueDefinition[TA, VA]{
			Inputs: []ir.InputType[TA, VA]{b.Input("x", float)},
			Output: float,
			Body:   ir.NativeBody{Info: ir.NativeInfo{Hint: ir.NativeHint{Kind: ir.HintArithmetic}, Description: "square root"}},
		}},
		{Name: Name("now"), Access: ir.Public, Definition: ir.ValueDefinition[TA, VA]{
			Output: float,
			Body:   ir.ExternalBody{ExternalName: "Date.now", TargetPlatform: "javascript"},
		}},
		{Name: Name("later"), Access: ir.Private, Definition: ir.ValueDefinition[TA, VA]{
			Output: float,
			Body:   ir.IncompleteBody{Incompleteness: ir.IncompleteDraft{}},
		}},
		{Name: Name("mixed"), Access: ir.Private, Definition: b.Def(b.TUnit(), b.Tuple(
			ir.NativeValue[TA, VA]{Attrs: b.VA, FQName: AddFQ, Info: ir.NativeInfo{Hint: ir.NativeHint{Kind: ir.HintPlatformSpecific, Platform: "jvm"}}},
			ir.ExternalValue[TA, VA]{Attrs: b.VA, ExternalName: "Math.max", TargetPlatform: "javascript"},
			ir.HoleValue[TA, VA]{Attrs: b.VA, Reason: ir.TypeMismatch{Expected: "Float", Found: "String"}},
			ir.HoleValue[TA, VA]{Attrs: b.VA, Reason: ir.DeletedDuringRefactor{TxID: "tx-42"}},
			ir.HoleValue[TA, VA]{Attrs: b.VA, Reason: ir.Draft{}},
		))},
		{Name: Name("stub"), Access: ir.Private, Definition: ir.ValueDefinition[TA, VA]{
			Output: float,
			Body:   ir.IncompleteBody{Incompleteness: ir.IncompleteHole{Reason: ir.TypeMismatch{Expected: "Int", Found: "Float"}}},
		}},
	}
	return ir.ModuleDefinition[TA, VA]{Types: types, Values: values}
}
