// Package graph holds the filter graph under construction: the Command that
// owns it, the registrar that binds filter names to builder factories, and the
// generic option builder every filter facade is made of.
package graph

import "reflect"

// Descriptor is one filter in the graph: the ffmpeg filter name and the
// options that were included when its builder was built.
type Descriptor struct {
	Name    string
	Options map[string]any
}

// NewDescriptor returns a descriptor with an empty, non-nil option map.
func NewDescriptor(name string) Descriptor {
	return Descriptor{Name: name, Options: map[string]any{}}
}

// Clone returns a copy that shares no mutable state with d. Slice, map and
// pointer values are copied too, so a caller reusing them after Build cannot
// change the graph.
func (d Descriptor) Clone() Descriptor {
	opts := make(map[string]any, len(d.Options))
	for k, v := range d.Options {
		opts[k] = cloneValue(v)
	}
	return Descriptor{Name: d.Name, Options: opts}
}

func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

func deepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(deepCopy(rv.Index(i)))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(deepCopy(rv.Elem()))
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(deepCopy(rv.Elem()))
		return out
	default:
		return rv
	}
}
