package core

import (
	"encoding/json"
	"reflect"
)

// ConvertTo coerces value into a reflect.Value of targetType. It returns false
// if value cannot represent a targetType.
//
// A nil value is only accepted by nillable kinds, where it becomes the zero
// value. Values assignable to targetType are used as is. Anything else goes
// through an encoding/json round trip, which handles decoded JSON inputs such
// as float64 numbers for integer fields and map[string]any for structs.
func ConvertTo(value any, targetType reflect.Type) (reflect.Value, bool) {
	if value == nil {
		if !Nillable(targetType) {
			return reflect.Value{}, false
		}
		return reflect.Zero(targetType), true
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(targetType) {
		if targetType.Kind() == reflect.Interface && v.Type() != targetType {
			// Keep the dynamic type behind the interface.
			out := reflect.New(targetType).Elem()
			out.Set(v)
			return out, true
		}
		return v, true
	}

	data, err := json.Marshal(value)
	if err != nil {
		return reflect.Value{}, false
	}
	out := reflect.New(targetType)
	if err := json.Unmarshal(data, out.Interface()); err != nil {
		return reflect.Value{}, false
	}
	return out.Elem(), true
}

// Nillable reports whether nil is a valid value for t.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// Interface returns the value held by v, or nil for an invalid value.
func Interface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
