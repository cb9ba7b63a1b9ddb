// Package classic reads and writes the Classic wire dialect: positional
// tagged arrays such as ["Variable", attrs, ["x"]], wrapped in the
// {"formatVersion": 3, "distribution": [...]} envelope.
//
// The codec is generic over the attribute types so the same tree code
// serves Classic documents (opaque JSON attributes) and Classic-shaped
// fragments embedded in V4 documents (typed V4 attributes). Decoding is
// strict about array arity and lenient about tag case.
package classic
