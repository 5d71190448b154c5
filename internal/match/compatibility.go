package match

import (
	"fmt"
	"go/types"
)

// Shape is the function signature a declaration expects.
type Shape int

const (
	// ShapePredicate is func(string) bool.
	ShapePredicate Shape = iota + 1
	// ShapeParse is func(string) (string, error).
	ShapeParse
)

// String returns the expected signature.
func (s Shape) String() string {
	switch s {
	case ShapePredicate:
		return "func(string) bool"
	case ShapeParse:
		return "func(string) (string, error)"
	default:
		return "unknown"
	}
}

// SignatureCompatibility represents how well a function fits a Shape.
type SignatureCompatibility int

const (
	// SignatureIncompatible means the function cannot be called for the shape.
	SignatureIncompatible SignatureCompatibility = iota
	// SignatureConvertible means parameter or result are defined types over
	// string/bool and need a conversion at the call site.
	SignatureConvertible
	// SignatureIdentical means the function has exactly the expected signature.
	SignatureIdentical
)

// String returns a human-readable name for the compatibility level.
func (c SignatureCompatibility) String() string {
	switch c {
	case SignatureIdentical:
		return "identical"
	case SignatureConvertible:
		return "convertible"
	case SignatureIncompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// SignatureResult contains detailed information about a signature check.
type SignatureResult struct {
	Compatibility SignatureCompatibility
	Reason        string     // Human-readable explanation
	Signature     string     // String representation of the checked signature
	ParamType     types.Type // Parameter type, when there is exactly one
	ResultType    types.Type // First result type, when present
}

// ScoreSignature determines whether sig can serve as a function of the given shape.
func ScoreSignature(sig *types.Signature, shape Shape) SignatureResult {
	if sig == nil {
		return SignatureResult{Compatibility: SignatureIncompatible, Reason: "not a function"}
	}

	res := SignatureResult{Signature: sig.String()}

	switch {
	case sig.Recv() != nil:
		return res.incompatible("methods are not supported")
	case sig.TypeParams().Len() > 0:
		return res.incompatible("generic functions are not supported")
	case sig.Variadic():
		return res.incompatible("variadic functions are not supported")
	case sig.Params().Len() != 1:
		return res.incompatible(fmt.Sprintf("takes %d parameters, want 1", sig.Params().Len()))
	}

	res.ParamType = sig.Params().At(0).Type()
	paramCompat := basicCompatibility(res.ParamType, types.String)
	if paramCompat == SignatureIncompatible {
		return res.incompatible(fmt.Sprintf("parameter of type %s is not a string", res.ParamType))
	}

	var resultCompat SignatureCompatibility

	switch shape {
	case ShapePredicate:
		if sig.Results().Len() != 1 {
			return res.incompatible(fmt.Sprintf("returns %d values, want 1", sig.Results().Len()))
		}

		res.ResultType = sig.Results().At(0).Type()
		resultCompat = basicCompatibility(res.ResultType, types.Bool)
		if resultCompat == SignatureIncompatible {
			return res.incompatible(fmt.Sprintf("result of type %s is not a bool", res.ResultType))
		}
	case ShapeParse:
		if sig.Results().Len() != 2 {
			return res.incompatible(fmt.Sprintf("returns %d values, want 2", sig.Results().Len()))
		}

		res.ResultType = sig.Results().At(0).Type()
		resultCompat = basicCompatibility(res.ResultType, types.String)
		if resultCompat == SignatureIncompatible {
			return res.incompatible(fmt.Sprintf("first result of type %s is not a string", res.ResultType))
		}

		errType := types.Universe.Lookup("error").Type()
		if !types.Identical(sig.Results().At(1).Type(), errType) {
			return res.incompatible("second result is not error")
		}
	default:
		return res.incompatible("unknown shape")
	}

	res.Compatibility = min(paramCompat, resultCompat)
	if res.Compatibility == SignatureIdentical {
		res.Reason = "signature is identical"
	} else {
		res.Reason = "signature needs conversions"
	}

	return res
}

func (r SignatureResult) incompatible(reason string) SignatureResult {
	r.Compatibility = SignatureIncompatible
	r.Reason = reason

	return r
}

// basicCompatibility checks t against a basic kind, accepting defined types
// whose underlying type is that kind as convertible.
func basicCompatibility(t types.Type, kind types.BasicKind) SignatureCompatibility {
	if types.Identical(t, types.Typ[kind]) {
		return SignatureIdentical
	}

	if b, ok := t.Underlying().(*types.Basic); ok && b.Kind() == kind {
		return SignatureConvertible
	}

	return SignatureIncompatible
}
