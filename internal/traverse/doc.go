// Package traverse walks and rebuilds IR trees.
//
// Two traversals are provided:
//
//   - A Walker drives a Visitor over a tree in pre-order. Each Visit method
//     decides whether to descend by calling the matching Walker "Children"
//     method; the embeddable Defaults always does. Funcs adapts plain
//     callbacks for the common case of observing nodes.
//   - A Rewriter drives a Transformer that builds a new tree, possibly with
//     another attribute instantiation. TransformDefaults rebuilds every node
//     unchanged apart from its attributes; MapAttributes builds a transformer
//     that only maps attributes.
//
// Both keep a Cursor with the JSON-pointer-like position of the current node
// and stop at the first error, which is returned unchanged.
package traverse
