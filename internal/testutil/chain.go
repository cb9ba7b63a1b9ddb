package testutil

import (
	"strings"

	"github.com/roach88/morphir-ir/internal/ir"
)

// ApplyChain builds a curried application spine of the given depth:
// Apply(Apply(...Apply(f, x)..., x), x). The function position nests, so
// the tree is depth Apply nodes deep.
//
// The chain has 2*depth+1 value nodes.
func ApplyChain[TA, VA any](b Builder[TA, VA], depth int) ir.Value[TA, VA] {
	args := make([]ir.Value[TA, VA], depth)
	for i := range args {
		args[i] = b.Var("x")
	}
	return b.Apply(b.Var("f"), args...)
}

// ApplyChainNodes is the value node count of ApplyChain(depth).
func ApplyChainNodes(depth int) int { return 2*depth + 1 }

// ApplyChainJSON renders ApplyChain(depth) in the Classic dialect without
// going through the codec, with null attributes:
//
//	["Apply",null,["Apply",null,["Variable",null,["f"]],["Variable",null,["x"]]],["Variable",null,["x"]]]
func ApplyChainJSON(depth int) []byte {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString(`["Apply",null,`)
	}
	sb.WriteString(`["Variable",null,["f"]]`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`,["Variable",null,["x"]]]`)
	}
	return []byte(sb.String())
}
