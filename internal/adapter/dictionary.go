package adapter

import (
	"reflect"

	"github.com/brunoga/jsonpatch/internal/core"
)

// dictionaryAdapter handles maps. Keys are matched exactly after the path
// segment is converted to the key type.
type dictionaryAdapter struct{}

func mapKey(m reflect.Value, segment string) (reflect.Value, string, bool) {
	key, err := core.MapKey(segment, m.Type().Key())
	if err != nil {
		return reflect.Value{}, InvalidPathSegment(segment), false
	}
	return key, "", true
}

// TryAdd inserts or overwrites the entry.
func (dictionaryAdapter) TryAdd(n Node, segment string, value any) (bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return false, msg
	}

	elem, ok := core.ConvertTo(value, m.Type().Elem())
	if !ok {
		return false, InvalidValueForProperty(value)
	}

	if m.IsNil() {
		if !n.replace(reflect.MakeMap(m.Type())) {
			return false, CannotUpdateProperty(segment)
		}
	}

	m.SetMapIndex(key, elem)
	n.commit()
	return true, ""
}

func (dictionaryAdapter) TryGet(n Node, segment string) (any, bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return nil, false, msg
	}

	elem := m.MapIndex(key)
	if !elem.IsValid() {
		return nil, false, TargetLocationNotFound(segment)
	}
	return core.Interface(elem), true, ""
}

func (dictionaryAdapter) TryRemove(n Node, segment string) (bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return false, msg
	}

	if !m.MapIndex(key).IsValid() {
		return false, TargetLocationNotFound(segment)
	}

	m.SetMapIndex(key, reflect.Value{})
	n.commit()
	return true, ""
}

func (dictionaryAdapter) TryReplace(n Node, segment string, value any) (bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return false, msg
	}

	if !m.MapIndex(key).IsValid() {
		return false, TargetLocationNotFound(segment)
	}

	elem, ok := core.ConvertTo(value, m.Type().Elem())
	if !ok {
		return false, InvalidValueForProperty(value)
	}

	m.SetMapIndex(key, elem)
	n.commit()
	return true, ""
}

func (dictionaryAdapter) TryTest(n Node, segment string, value any) (bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return false, msg
	}

	current := m.MapIndex(key)
	if !current.IsValid() {
		return false, TargetLocationNotFound(segment)
	}

	if !equal(current, value) {
		return false, ValueNotEqualToTestValue(core.Interface(current), value, segment)
	}
	return true, ""
}

// TryTraverse fails without a message for a missing key; callers report it
// against the whole path.
func (dictionaryAdapter) TryTraverse(n Node, segment string) (Node, bool, string) {
	m := n.value
	key, msg, ok := mapKey(m, segment)
	if !ok {
		return Node{}, false, msg
	}

	elem := m.MapIndex(key)
	if !elem.IsValid() {
		return Node{}, false, ""
	}

	return mapChild(m, key, elem, n.commit), true, ""
}
