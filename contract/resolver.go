// Package contract maps the logical property names used in patch paths to
// the physical members of Go struct types.
package contract

import (
	"reflect"
	"strings"
)

// Property describes a struct member addressable by a patch path.
type Property struct {
	// Name is the logical name of the member.
	Name string
	// Type is the declared type of the member.
	Type reflect.Type
	// Index is the field index sequence for reflect.Value.FieldByIndex.
	Index []int

	Readable bool
	Writable bool
}

// Resolver resolves a logical property name against a struct type.
type Resolver interface {
	ResolveProperty(t reflect.Type, name string) (Property, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(t reflect.Type, name string) (Property, bool)

// ResolveProperty calls f(t, name).
func (f ResolverFunc) ResolveProperty(t reflect.Type, name string) (Property, bool) {
	return f(t, name)
}

// DefaultResolver resolves exported fields by their encoding/json name. Field
// names declared through a json tag take precedence over the Go field name.
//
// An exact match always wins. Unless CaseSensitive is set, a case-insensitive
// match is tried next.
type DefaultResolver struct {
	CaseSensitive bool
}

// ResolveProperty implements Resolver.
func (r DefaultResolver) ResolveProperty(t reflect.Type, name string) (Property, bool) {
	if t == nil || t.Kind() != reflect.Struct {
		return Property{}, false
	}

	info := getTypeInfo(t)
	if i, ok := info.byName[name]; ok {
		return info.properties[i], true
	}
	if r.CaseSensitive {
		return Property{}, false
	}

	for _, p := range info.properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return Property{}, false
}

// Properties returns every property DefaultResolver can address on t, in
// declaration order.
func Properties(t reflect.Type) []Property {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	props := getTypeInfo(t).properties
	out := make([]Property, len(props))
	copy(out, props)
	return out
}
