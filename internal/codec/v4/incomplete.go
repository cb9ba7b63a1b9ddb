package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodeHoleReason reads {"UnresolvedReference": {"target": fqname}},
// {"DeletedDuringRefactor": {"tx-id": id}},
// {"TypeMismatch": {"expected": e, "found": f}} or {"Draft": {}}.
func DecodeHoleReason(v jsonv.Value) (ir.HoleReason, error) {
	if arr, ok := v.(jsonv.Array); ok {
		return classic.DecodeHoleReason(arr)
	}
	n, err := unwrap(v, codec.KindHoleReason)
	if err != nil {
		return nil, err
	}
	switch n.tag {
	case "UnresolvedReference":
		target, err := field(n, "target", DecodeFQName)
		if err != nil {
			return nil, err
		}
		return ir.UnresolvedReference{Target: target}, nil
	case "DeletedDuringRefactor":
		tx, err := field(n, "tx-id", asString)
		if err != nil {
			return nil, err
		}
		return ir.DeletedDuringRefactor{TxID: tx}, nil
	case "TypeMismatch":
		expected, err := field(n, "expected", asString)
		if err != nil {
			return nil, err
		}
		found, err := field(n, "found", asString)
		if err != nil {
			return nil, err
		}
		return ir.TypeMismatch{Expected: expected, Found: found}, nil
	default: // Draft
		return ir.Draft{}, nil
	}
}

// EncodeHoleReason writes a hole reason wrapper.
func EncodeHoleReason(r ir.HoleReason) jsonv.Value {
	switch reason := r.(type) {
	case ir.UnresolvedReference:
		return wrapper("UnresolvedReference", jsonv.Object{jsonv.M("target", EncodeFQName(reason.Target))})
	case ir.DeletedDuringRefactor:
		return wrapper("DeletedDuringRefactor", jsonv.Object{jsonv.M("tx-id", jsonv.String(reason.TxID))})
	case ir.TypeMismatch:
		return wrapper("TypeMismatch", jsonv.Object{
			jsonv.M("expected", jsonv.String(reason.Expected)),
			jsonv.M("found", jsonv.String(reason.Found)),
		})
	case ir.Draft:
		return wrapper("Draft", nil)
	default:
		panic(unsupported("hole reason", r))
	}
}

// DecodeIncompleteness reads {"Hole": {"reason": reason}} or {"Draft": {}}.
func DecodeIncompleteness(v jsonv.Value) (ir.Incompleteness, error) {
	if arr, ok := v.(jsonv.Array); ok {
		return classic.DecodeIncompleteness(arr)
	}
	n, err := unwrap(v, codec.KindIncompleteness)
	if err != nil {
		return nil, err
	}
	if n.tag == "Draft" {
		return ir.IncompleteDraft{}, nil
	}
	reason, err := field(n, "reason", DecodeHoleReason)
	if err != nil {
		return nil, err
	}
	return ir.IncompleteHole{Reason: reason}, nil
}

// EncodeIncompleteness writes an incompleteness wrapper.
func EncodeIncompleteness(inc ir.Incompleteness) jsonv.Value {
	switch i := inc.(type) {
	case ir.IncompleteHole:
		return wrapper("Hole", jsonv.Object{jsonv.M("reason", EncodeHoleReason(i.Reason))})
	case ir.IncompleteDraft:
		return wrapper("Draft", nil)
	default:
		panic(unsupported("incompleteness", inc))
	}
}

// DecodeNativeInfo reads {"hint": hint, "description": text}. The hint is
// {"Arithmetic": {}}, {"PlatformSpecific": {"platform": p}}, a bare tag
// string or a Classic array.
func DecodeNativeInfo(v jsonv.Value) (ir.NativeInfo, error) {
	var info ir.NativeInfo
	obj, err := codec.AsObject(v, "native info")
	if err != nil {
		return info, err
	}
	hv, ok := obj.Get("hint")
	if !ok {
		return info, codec.Malformed("native info is missing field %q", "hint")
	}
	if info.Hint, err = decodeNativeHint(hv); err != nil {
		return info, codec.At(err, "hint")
	}
	if dv, ok := obj.Get("description"); ok {
		if info.Description, err = optionalString(dv); err != nil {
			return info, codec.At(err, "description")
		}
	}
	return info, nil
}

func decodeNativeHint(v jsonv.Value) (ir.NativeHint, error) {
	if _, ok := v.(jsonv.Object); !ok {
		return classic.DecodeNativeHint(v)
	}
	n, err := unwrap(v, codec.KindNativeHint)
	if err != nil {
		return ir.NativeHint{}, err
	}
	if ir.NativeHintKind(n.tag) != ir.HintPlatformSpecific {
		return ir.NativeHint{Kind: ir.NativeHintKind(n.tag)}, nil
	}
	platform, err := field(n, "platform", asString)
	if err != nil {
		return ir.NativeHint{}, err
	}
	return ir.NativeHint{Kind: ir.HintPlatformSpecific, Platform: platform}, nil
}

// EncodeNativeInfo writes native info. An empty description is omitted.
func (e *Encoder) EncodeNativeInfo(info ir.NativeInfo) jsonv.Value {
	var hint jsonv.Value
	if info.Hint.Kind == ir.HintPlatformSpecific {
		hint = wrapper(string(info.Hint.Kind), jsonv.Object{jsonv.M("platform", jsonv.String(info.Hint.Platform))})
	} else {
		hint = wrapper(string(info.Hint.Kind), nil)
	}
	obj := jsonv.Object{jsonv.M("hint", hint)}
	if info.Description != "" || e.expanded {
		obj = append(obj, jsonv.M("description", jsonv.String(info.Description)))
	}
	return obj
}
