package hcl

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// fromCtyValue converts a known cty.Value into the plain Go types allowed
// in config.Model.Globals: string, bool, int64, or []any of those.
func fromCtyValue(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("null is not a valid global value")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known at load time")
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		i, acc := val.AsBigFloat().Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("number %s is not an integer", val.AsBigFloat().String())
		}
		return i, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goVal, err := fromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goVal)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
}
