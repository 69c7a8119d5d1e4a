// Package adapter implements patch primitives for each kind of container a
// target graph can hold, and the visitor that walks a path to the container
// addressed by its final segment.
package adapter

import (
	"reflect"

	"github.com/brunoga/jsonpatch/dynamic"
	"github.com/brunoga/jsonpatch/internal/core"
)

// Adapter performs patch primitives on one category of container. Failures
// are reported as false plus a human readable message; adapters never panic
// on bad input.
type Adapter interface {
	TryAdd(n Node, segment string, value any) (bool, string)
	TryGet(n Node, segment string) (any, bool, string)
	TryRemove(n Node, segment string) (bool, string)
	TryReplace(n Node, segment string, value any) (bool, string)
	TryTest(n Node, segment string, value any) (bool, string)
	// TryTraverse returns the node addressed by segment. A valid result with
	// an invalid Node means the member exists but holds nil.
	TryTraverse(n Node, segment string) (Node, bool, string)
}

var (
	objectType = reflect.TypeOf((*dynamic.Object)(nil)).Elem()
	anyType    = reflect.TypeOf((*any)(nil)).Elem()
)

// Node is a live reference to a container in the target graph.
//
// Values that are not addressable in place (map elements, the contents of
// interfaces) are copied into an addressable slot. The store hook copies the
// slot back into its parent and must run after every mutation.
type Node struct {
	value reflect.Value
	store func()
}

// Root returns the node for a patch target. Pointers are followed so that
// structs and slices reached through them can be mutated in place.
func Root(target any) Node {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return Node{}
	}
	if rv.Kind() == reflect.Pointer {
		return child(rv, nil)
	}
	return Node{value: rv}
}

// IsValid reports whether n references a container.
func (n Node) IsValid() bool {
	return n.value.IsValid()
}

// Value returns the container held by n.
func (n Node) Value() reflect.Value {
	return n.value
}

func (n Node) commit() {
	if n.store != nil {
		n.store()
	}
}

// replace swaps the container itself, as needed when a slice grows or a nil
// map is allocated.
func (n Node) replace(v reflect.Value) bool {
	if !n.value.CanSet() {
		return false
	}
	n.value.Set(v)
	n.commit()
	return true
}

// child returns the node for the value stored in slot. up propagates changes
// of slot to its own parent.
func child(slot reflect.Value, up func()) Node {
	switch slot.Kind() {
	case reflect.Interface:
		if slot.IsNil() {
			return Node{}
		}
		inner := slot.Elem()
		if inner.Kind() == reflect.Pointer {
			return child(inner, nil)
		}
		tmp := reflect.New(inner.Type()).Elem()
		tmp.Set(inner)
		if !slot.CanSet() {
			return Node{value: tmp}
		}
		return Node{value: tmp, store: func() {
			slot.Set(tmp)
			if up != nil {
				up()
			}
		}}
	case reflect.Pointer:
		if slot.IsNil() {
			return Node{}
		}
		if slot.Type().Implements(objectType) {
			return Node{value: slot}
		}
		return child(slot.Elem(), nil)
	}

	if slot.CanAddr() && !slot.Type().Implements(objectType) &&
		reflect.PointerTo(slot.Type()).Implements(objectType) {
		return Node{value: slot.Addr()}
	}
	return Node{value: slot, store: up}
}

// mapChild returns the node for the element stored under key in m.
func mapChild(m, key, elem reflect.Value, up func()) Node {
	tmp := reflect.New(m.Type().Elem()).Elem()
	tmp.Set(elem)
	return child(tmp, func() {
		m.SetMapIndex(key, tmp)
		if up != nil {
			up()
		}
	})
}

// memberChild returns the node for a member value of a dynamic object.
func memberChild(obj dynamic.Object, name string, value any, up func()) Node {
	tmp := reflect.New(anyType).Elem()
	if value != nil {
		tmp.Set(reflect.ValueOf(value))
	}
	return child(tmp, func() {
		obj.SetMember(name, tmp.Interface())
		if up != nil {
			up()
		}
	})
}

// equal reports whether current holds the same value as expected once
// expected is coerced to the type of current.
func equal(current reflect.Value, expected any) bool {
	for current.IsValid() && current.Kind() == reflect.Interface {
		if current.IsNil() {
			return expected == nil
		}
		current = current.Elem()
	}
	if !current.IsValid() {
		return expected == nil
	}

	want, ok := core.ConvertTo(expected, current.Type())
	if !ok {
		return false
	}
	return reflect.DeepEqual(current.Interface(), want.Interface())
}
