package mustache

import (
	"fmt"
	"reflect"
)

// normalizeContext returns a copy of data in which every nil leaf the
// engine would print as "<nil>" is the empty string instead. Templates
// written for mustache.js expect nothing at all.
//
// Values whose type has methods are left as they are so the engine can
// still call those methods by name. Nil fields or nil method results
// reached through such a value render as the engine prints them.
func normalizeContext(data map[string]interface{}) map[string]interface{} {
	n := &normalizer{active: make(map[visit]bool)}
	ctx := make(map[string]interface{}, len(data)+4)
	for k, v := range data {
		ctx[k] = n.value(reflect.ValueOf(v))
	}
	return ctx
}

// visit identifies a pointer, map or slice currently being converted.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type normalizer struct {
	// active holds the values on the current descent path. A value met
	// again is a cycle and is handed to the engine unconverted.
	active map[visit]bool
}

func (n *normalizer) value(v reflect.Value) interface{} {
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return n.value(v.Elem())
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return ""
		}
	}

	t := v.Type()
	if t.NumMethod() > 0 {
		return v.Interface()
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}
		key := visit{ptr: v.Pointer(), typ: t}
		if v.Kind() == reflect.Slice {
			key.len = v.Len()
		}
		if n.active[key] {
			return v.Interface()
		}
		n.active[key] = true
		defer delete(n.active, key)
		return n.container(v)
	case reflect.Array:
		return n.list(v)
	case reflect.Struct:
		return n.fields(v)
	}
	return v.Interface()
}

func (n *normalizer) container(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Ptr:
		return n.value(v.Elem())
	case reflect.Map:
		m := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = n.value(iter.Value())
		}
		return m
	}
	return n.list(v)
}

func (n *normalizer) list(v reflect.Value) []interface{} {
	s := make([]interface{}, v.Len())
	for i := range s {
		s[i] = n.value(v.Index(i))
	}
	return s
}

func (n *normalizer) fields(v reflect.Value) map[string]interface{} {
	t := v.Type()
	m := make(map[string]interface{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		m[f.Name] = n.value(v.Field(i))
	}
	return m
}
