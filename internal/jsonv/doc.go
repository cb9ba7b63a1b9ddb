// Package jsonv provides an order-preserving generic JSON tree.
//
// The IR codecs decode from and encode to this tree rather than to
// map[string]any, because the wire formats are order-sensitive: V4 records,
// module maps and dependency maps keep the order in which they were written.
//
// Key design constraints:
//   - Object member order is preserved through Parse and Marshal
//   - Numbers keep their lexical form (no float64 round trip on decode)
//   - Duplicate object keys are rejected
//   - MarshalCanonical is the only form used for digests: RFC 8785 key order
//     (UTF-16 code units), no HTML escaping
package jsonv
