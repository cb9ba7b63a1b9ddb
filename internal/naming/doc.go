// Package naming provides the identifier layer of the Morphir IR.
//
// Every other internal package refers to named entities through the types in
// this package; naming imports nothing internal.
//
// Key design constraints:
//   - Name segmentation is total: ParseName never fails, it returns an empty
//     Name when the input has no recognizable word
//   - Name words are lowercase ASCII letters or digits when produced by
//     ParseName; NameFromWords keeps wire words verbatim
//   - Words are interned in a process-wide, append-only table; Symbols are
//     stable for the life of the process and are never persisted
//   - FQName has two canonical string forms: "pkg:mod:local" (Classic) and
//     "pkg:mod#local" (V4)
package naming
