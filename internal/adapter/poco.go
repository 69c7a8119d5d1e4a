package adapter

import (
	"reflect"

	"github.com/brunoga/jsonpatch/contract"
	"github.com/brunoga/jsonpatch/internal/core"
)

// pocoAdapter handles structs. Members are looked up through a
// contract.Resolver; members that are unexported look exactly like missing
// ones.
type pocoAdapter struct {
	resolver contract.Resolver
}

func (a pocoAdapter) property(n Node, segment string) (contract.Property, reflect.Value, bool) {
	v := n.value
	if v.Kind() != reflect.Struct {
		return contract.Property{}, reflect.Value{}, false
	}

	p, ok := a.resolver.ResolveProperty(v.Type(), segment)
	if !ok {
		return contract.Property{}, reflect.Value{}, false
	}

	// Promoted fields behind a nil embedded pointer are unreachable.
	f, err := v.FieldByIndexErr(p.Index)
	if err != nil || !f.CanInterface() {
		return contract.Property{}, reflect.Value{}, false
	}

	return p, f, true
}

func (a pocoAdapter) set(n Node, segment string, value any) (bool, string) {
	p, f, ok := a.property(n, segment)
	if !ok {
		return false, TargetLocationNotFound(segment)
	}
	if !p.Writable || !f.CanSet() {
		return false, CannotUpdateProperty(segment)
	}

	converted, ok := core.ConvertTo(value, f.Type())
	if !ok {
		return false, InvalidValueForProperty(value)
	}

	f.Set(converted)
	n.commit()
	return true, ""
}

// TryAdd sets the member. Struct members always exist, so add behaves like
// replace.
func (a pocoAdapter) TryAdd(n Node, segment string, value any) (bool, string) {
	return a.set(n, segment, value)
}

func (a pocoAdapter) TryGet(n Node, segment string) (any, bool, string) {
	p, f, ok := a.property(n, segment)
	if !ok {
		return nil, false, TargetLocationNotFound(segment)
	}
	if !p.Readable {
		return nil, false, CannotReadProperty(segment)
	}
	return f.Interface(), true, ""
}

// TryRemove resets the member to its zero value.
func (a pocoAdapter) TryRemove(n Node, segment string) (bool, string) {
	p, f, ok := a.property(n, segment)
	if !ok {
		return false, TargetLocationNotFound(segment)
	}
	if !p.Writable || !f.CanSet() {
		return false, CannotUpdateProperty(segment)
	}

	f.Set(reflect.Zero(f.Type()))
	n.commit()
	return true, ""
}

func (a pocoAdapter) TryReplace(n Node, segment string, value any) (bool, string) {
	return a.set(n, segment, value)
}

func (a pocoAdapter) TryTest(n Node, segment string, value any) (bool, string) {
	p, f, ok := a.property(n, segment)
	if !ok {
		return false, TargetLocationNotFound(segment)
	}
	if !p.Readable {
		return false, CannotReadProperty(segment)
	}

	if !equal(f, value) {
		return false, ValueNotEqualToTestValue(f.Interface(), value, segment)
	}
	return true, ""
}

func (a pocoAdapter) TryTraverse(n Node, segment string) (Node, bool, string) {
	p, f, ok := a.property(n, segment)
	if !ok {
		return Node{}, false, TargetLocationNotFound(segment)
	}
	if !p.Readable {
		return Node{}, false, CannotReadProperty(segment)
	}
	return child(f, n.commit), true, ""
}
