package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodeHoleReason reads ["UnresolvedReference", fqname],
// ["DeletedDuringRefactor", txID], ["TypeMismatch", expected, found] or
// ["Draft"].
func DecodeHoleReason(v jsonv.Value) (ir.HoleReason, error) {
	tag, f, err := codec.TaggedArray(v, codec.KindHoleReason)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "UnresolvedReference":
		if err := codec.Arity(tag, f, 1); err != nil {
			return nil, err
		}
		fq, err := DecodeFQName(f[0])
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		return ir.UnresolvedReference{Target: fq}, nil
	case "DeletedDuringRefactor":
		if err := codec.Arity(tag, f, 1); err != nil {
			return nil, err
		}
		tx, err := codec.AsString(f[0], "transaction id")
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		return ir.DeletedDuringRefactor{TxID: tx}, nil
	case "TypeMismatch":
		if err := codec.Arity(tag, f, 2); err != nil {
			return nil, err
		}
		expected, err := codec.AsString(f[0], "expected type")
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		found, err := codec.AsString(f[1], "found type")
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 2), tag)
		}
		return ir.TypeMismatch{Expected: expected, Found: found}, nil
	default: // Draft
		if err := codec.Arity(tag, f, 0); err != nil {
			return nil, err
		}
		return ir.Draft{}, nil
	}
}

// EncodeHoleReason writes a hole reason.
func EncodeHoleReason(r ir.HoleReason) jsonv.Value {
	switch reason := r.(type) {
	case ir.UnresolvedReference:
		return jsonv.Array{jsonv.String("UnresolvedReference"), EncodeFQName(reason.Target)}
	case ir.DeletedDuringRefactor:
		return jsonv.Array{jsonv.String("DeletedDuringRefactor"), jsonv.String(reason.TxID)}
	case ir.TypeMismatch:
		return jsonv.Array{jsonv.String("TypeMismatch"), jsonv.String(reason.Expected), jsonv.String(reason.Found)}
	case ir.Draft:
		return jsonv.Array{jsonv.String("Draft")}
	default:
		panic(unsupported("hole reason", r))
	}
}

// DecodeIncompleteness reads ["Hole", reason] or ["Draft"].
func DecodeIncompleteness(v jsonv.Value) (ir.Incompleteness, error) {
	tag, f, err := codec.TaggedArray(v, codec.KindIncompleteness)
	if err != nil {
		return nil, err
	}
	if tag == "Draft" {
		if err := codec.Arity(tag, f, 0); err != nil {
			return nil, err
		}
		return ir.IncompleteDraft{}, nil
	}
	if err := codec.Arity(tag, f, 1); err != nil {
		return nil, err
	}
	reason, err := DecodeHoleReason(f[0])
	if err != nil {
		return nil, codec.Tagged(codec.At(err, 1), tag)
	}
	return ir.IncompleteHole{Reason: reason}, nil
}

// EncodeIncompleteness writes an incompleteness marker.
func EncodeIncompleteness(inc ir.Incompleteness) jsonv.Value {
	switch i := inc.(type) {
	case ir.IncompleteHole:
		return jsonv.Array{jsonv.String("Hole"), EncodeHoleReason(i.Reason)}
	case ir.IncompleteDraft:
		return jsonv.Array{jsonv.String("Draft")}
	default:
		panic(unsupported("incompleteness", inc))
	}
}

// DecodeNativeInfo reads {"hint": hint, "description": text}. The hint is
// ["Arithmetic"] or ["PlatformSpecific", platform]; a bare string is
// accepted for hints without a payload.
func DecodeNativeInfo(v jsonv.Value) (ir.NativeInfo, error) {
	obj, err := codec.AsObject(v, "native info")
	if err != nil {
		return ir.NativeInfo{}, err
	}
	hv, ok := obj.Get("hint")
	if !ok {
		return ir.NativeInfo{}, codec.Malformed("native info is missing field %q", "hint")
	}
	hint, err := DecodeNativeHint(hv)
	if err != nil {
		return ir.NativeInfo{}, codec.At(err, "hint")
	}
	info := ir.NativeInfo{Hint: hint}
	if dv, ok := obj.Get("description"); ok && !jsonv.IsNull(dv) {
		if info.Description, err = codec.AsString(dv, "description"); err != nil {
			return ir.NativeInfo{}, codec.At(err, "description")
		}
	}
	return info, nil
}

// DecodeNativeHint reads ["Arithmetic"] or ["PlatformSpecific", platform].
// A bare string is accepted for hints without a payload.
func DecodeNativeHint(v jsonv.Value) (ir.NativeHint, error) {
	if s, ok := v.(jsonv.String); ok {
		v = jsonv.Array{s}
	}
	tag, f, err := codec.TaggedArray(v, codec.KindNativeHint)
	if err != nil {
		return ir.NativeHint{}, err
	}
	if ir.NativeHintKind(tag) != ir.HintPlatformSpecific {
		if err := codec.Arity(tag, f, 0); err != nil {
			return ir.NativeHint{}, err
		}
		return ir.NativeHint{Kind: ir.NativeHintKind(tag)}, nil
	}
	if err := codec.Arity(tag, f, 1); err != nil {
		return ir.NativeHint{}, err
	}
	platform, err := codec.AsString(f[0], "platform")
	if err != nil {
		return ir.NativeHint{}, codec.Tagged(codec.At(err, 1), tag)
	}
	return ir.NativeHint{Kind: ir.HintPlatformSpecific, Platform: platform}, nil
}

// EncodeNativeInfo writes native info. An empty description is omitted.
func EncodeNativeInfo(info ir.NativeInfo) jsonv.Value {
	hint := jsonv.Array{jsonv.String(string(info.Hint.Kind))}
	if info.Hint.Kind == ir.HintPlatformSpecific {
		hint = append(hint, jsonv.String(info.Hint.Platform))
	}
	obj := jsonv.Object{jsonv.M("hint", hint)}
	if info.Description != "" {
		obj = append(obj, jsonv.M("description", jsonv.String(info.Description)))
	}
	return obj
}
