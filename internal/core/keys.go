package core

import (
	"fmt"
	"reflect"
	"strconv"
)

// MapKey converts a path segment into a key of type keyType.
func MapKey(segment string, keyType reflect.Type) (reflect.Value, error) {
	key := reflect.New(keyType).Elem()

	switch keyType.Kind() {
	case reflect.String:
		key.SetString(segment)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(segment, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid map key %q: %v", segment, err)
		}
		key.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(segment, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid map key %q: %v", segment, err)
		}
		key.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(segment, keyType.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid map key %q: %v", segment, err)
		}
		key.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(segment)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid map key %q: %v", segment, err)
		}
		key.SetBool(b)
	case reflect.Interface:
		if !reflect.TypeOf(segment).AssignableTo(keyType) {
			return reflect.Value{}, fmt.Errorf("unsupported map key type: %v", keyType)
		}
		key.Set(reflect.ValueOf(segment))
	default:
		return reflect.Value{}, fmt.Errorf("unsupported map key type: %v", keyType)
	}

	return key, nil
}
