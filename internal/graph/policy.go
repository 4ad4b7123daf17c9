package graph

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// InclusionPolicy decides which option values a builder copies into its descriptor.
type InclusionPolicy int

const (
	// PolicyTruthy includes a value only if it is truthy: nil, false, "",
	// numeric zero and NaN are treated the same as never having been set.
	PolicyTruthy InclusionPolicy = iota
	// PolicyExplicit includes every value that was set, zero values included.
	PolicyExplicit
)

// String returns the policy name used in configuration and graph files.
func (p InclusionPolicy) String() string {
	switch p {
	case PolicyTruthy:
		return "truthy"
	case PolicyExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("InclusionPolicy(%d)", int(p))
	}
}

// ParsePolicy converts "truthy" or "explicit" (case-insensitive) to a policy.
func ParsePolicy(s string) (InclusionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truthy", "":
		return PolicyTruthy, nil
	case "explicit":
		return PolicyExplicit, nil
	default:
		return PolicyTruthy, fmt.Errorf("unknown inclusion policy %q, valid options: truthy, explicit", s)
	}
}

// Includes reports whether a value that was set should reach the descriptor.
func (p InclusionPolicy) Includes(v any) bool {
	if p == PolicyExplicit {
		return !isNil(v)
	}
	return Truthy(v)
}

// Truthy reports whether v counts as set under PolicyTruthy.
// Containers and structs are truthy even when empty.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
