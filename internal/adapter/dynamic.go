package adapter

import (
	"reflect"

	"github.com/brunoga/jsonpatch/dynamic"
	"github.com/brunoga/jsonpatch/internal/core"
)

// dynamicAdapter handles dynamic.Object property bags with the same
// semantics as dictionaryAdapter.
type dynamicAdapter struct{}

func object(n Node) dynamic.Object {
	return n.value.Interface().(dynamic.Object)
}

func (dynamicAdapter) TryAdd(n Node, segment string, value any) (bool, string) {
	if !object(n).SetMember(segment, value) {
		return false, CannotUpdateProperty(segment)
	}
	n.commit()
	return true, ""
}

func (dynamicAdapter) TryGet(n Node, segment string) (any, bool, string) {
	v, ok := object(n).GetMember(segment)
	if !ok {
		return nil, false, TargetLocationNotFound(segment)
	}
	return v, true, ""
}

func (dynamicAdapter) TryRemove(n Node, segment string) (bool, string) {
	if !object(n).DeleteMember(segment) {
		return false, TargetLocationNotFound(segment)
	}
	n.commit()
	return true, ""
}

// TryReplace keeps the runtime type of the existing member when it has one.
func (dynamicAdapter) TryReplace(n Node, segment string, value any) (bool, string) {
	obj := object(n)
	current, ok := obj.GetMember(segment)
	if !ok {
		return false, TargetLocationNotFound(segment)
	}

	if current != nil {
		converted, ok := core.ConvertTo(value, reflect.TypeOf(current))
		if !ok {
			return false, InvalidValueForProperty(value)
		}
		value = core.Interface(converted)
	}

	if !obj.SetMember(segment, value) {
		return false, CannotUpdateProperty(segment)
	}
	n.commit()
	return true, ""
}

func (dynamicAdapter) TryTest(n Node, segment string, value any) (bool, string) {
	current, ok := object(n).GetMember(segment)
	if !ok {
		return false, TargetLocationNotFound(segment)
	}

	if !equal(reflect.ValueOf(current), value) {
		return false, ValueNotEqualToTestValue(current, value, segment)
	}
	return true, ""
}

func (dynamicAdapter) TryTraverse(n Node, segment string) (Node, bool, string) {
	obj := object(n)
	v, ok := obj.GetMember(segment)
	if !ok {
		return Node{}, false, TargetLocationNotFound(segment)
	}
	return memberChild(obj, segment, v, n.commit), true, ""
}
