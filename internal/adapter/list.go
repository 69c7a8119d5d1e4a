package adapter

import (
	"reflect"
	"strconv"

	"github.com/brunoga/jsonpatch/internal/core"
	"github.com/brunoga/jsonpatch/internal/pointer"
)

// listAdapter handles slices. Arrays can be traversed but never patched as
// their length is fixed.
type listAdapter struct{}

type operationKind int

const (
	opRead operationKind = iota
	opInsert
)

func checkList(list reflect.Value) (string, bool) {
	if list.Kind() == reflect.Array {
		return PatchNotSupportedForArrays(list.Type()), false
	}
	return "", true
}

// position resolves segment to an index of list. Inserts accept the length
// of the list and "-"; everything else must address an existing element.
func position(list reflect.Value, segment string, kind operationKind) (int, string, bool) {
	if segment == pointer.EndOfList {
		if kind == opInsert {
			return list.Len(), "", true
		}
		return 0, IndexOutOfBounds(segment), false
	}

	// Atoi also accepts "+1" and "01"; such segments address the same index.
	i, err := strconv.Atoi(segment)
	if err != nil {
		return 0, InvalidIndexValue(segment), false
	}

	limit := list.Len()
	if kind == opInsert {
		limit++
	}
	if i < 0 || i >= limit {
		return 0, IndexOutOfBounds(segment), false
	}

	return i, "", true
}

func (listAdapter) TryAdd(n Node, segment string, value any) (bool, string) {
	list := n.value
	if msg, ok := checkList(list); !ok {
		return false, msg
	}

	i, msg, ok := position(list, segment, opInsert)
	if !ok {
		return false, msg
	}

	elem, ok := core.ConvertTo(value, list.Type().Elem())
	if !ok {
		return false, InvalidValueForProperty(value)
	}

	if !list.CanSet() {
		return false, CannotUpdateProperty(segment)
	}

	// Grow into a new backing array and shift the tail.
	grown := reflect.MakeSlice(list.Type(), list.Len()+1, list.Len()+1)
	reflect.Copy(grown, list.Slice(0, i))
	grown.Index(i).Set(elem)
	reflect.Copy(grown.Slice(i+1, grown.Len()), list.Slice(i, list.Len()))

	n.replace(grown)
	return true, ""
}

func (listAdapter) TryGet(n Node, segment string) (any, bool, string) {
	list := n.value
	if msg, ok := checkList(list); !ok {
		return nil, false, msg
	}

	i, msg, ok := position(list, segment, opRead)
	if !ok {
		return nil, false, msg
	}

	return core.Interface(list.Index(i)), true, ""
}

func (listAdapter) TryRemove(n Node, segment string) (bool, string) {
	list := n.value
	if msg, ok := checkList(list); !ok {
		return false, msg
	}

	i, msg, ok := position(list, segment, opRead)
	if !ok {
		return false, msg
	}

	if !list.CanSet() {
		return false, CannotUpdateProperty(segment)
	}

	newLen := list.Len() - 1
	shrunk := reflect.MakeSlice(list.Type(), newLen, newLen)
	reflect.Copy(shrunk, list.Slice(0, i))
	if i < newLen {
		reflect.Copy(shrunk.Slice(i, newLen), list.Slice(i+1, list.Len()))
	}

	n.replace(shrunk)
	return true, ""
}

func (listAdapter) TryReplace(n Node, segment string, value any) (bool, string) {
	list := n.value
	if msg, ok := checkList(list); !ok {
		return false, msg
	}

	i, msg, ok := position(list, segment, opRead)
	if !ok {
		return false, msg
	}

	elem, ok := core.ConvertTo(value, list.Type().Elem())
	if !ok {
		return false, InvalidValueForProperty(value)
	}

	slot := list.Index(i)
	if !slot.CanSet() {
		return false, CannotUpdateProperty(segment)
	}
	slot.Set(elem)
	n.commit()
	return true, ""
}

func (listAdapter) TryTest(n Node, segment string, value any) (bool, string) {
	list := n.value
	if msg, ok := checkList(list); !ok {
		return false, msg
	}

	i, msg, ok := position(list, segment, opRead)
	if !ok {
		return false, msg
	}

	current := list.Index(i)
	if !equal(current, value) {
		return false, ValueNotEqualToTestValue(core.Interface(current), value, segment)
	}
	return true, ""
}

func (listAdapter) TryTraverse(n Node, segment string) (Node, bool, string) {
	list := n.value

	i, err := strconv.Atoi(segment)
	if err != nil {
		return Node{}, false, InvalidIndexValue(segment)
	}
	if i < 0 || i >= list.Len() {
		return Node{}, false, IndexOutOfBounds(segment)
	}

	return child(list.Index(i), n.commit), true, ""
}
