// Package engine is the library facade over the IR codecs.
//
// A Document holds a decoded tree in the dialect it was read from. The
// other dialect is produced on demand by conversion, so a caller can read
// any supported file and work with the attribute model it needs:
//
//	doc, err := engine.Decode(data)
//	if err != nil {
//		return err
//	}
//	tree := doc.V4()
//
// Decoding detects the dialect first and then runs exactly one decoder.
// Encoding always writes the requested dialect's canonical shape. All
// functions are synchronous and safe for concurrent use; a Document is
// immutable after construction.
//
// Fingerprints identify the structure of a distribution independent of
// dialect, format version and attributes. Two documents that differ only
// in source locations or in wire dialect share a fingerprint.
package engine
