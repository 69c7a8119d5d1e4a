package contract

import (
	"reflect"
	"sync"
)

type typeInfo struct {
	properties []Property
	byName     map[string]int
}

var (
	typeCache sync.Map // map[reflect.Type]*typeInfo
)

func getTypeInfo(typ reflect.Type) *typeInfo {
	if info, ok := typeCache.Load(typ); ok {
		return info.(*typeInfo)
	}

	info := &typeInfo{
		byName: make(map[string]int),
	}
	if typ.Kind() == reflect.Struct {
		for _, field := range reflect.VisibleFields(typ) {
			if !field.IsExported() {
				continue
			}
			// Embedded structs without an explicit name are flattened, the
			// same way encoding/json promotes their fields.
			if field.Anonymous && field.Tag.Get("json") == "" && indirect(field.Type).Kind() == reflect.Struct {
				continue
			}
			tag := parseTag(field)
			if tag.ignore {
				continue
			}
			name, ok := jsonName(field)
			if !ok {
				continue
			}
			if _, dup := info.byName[name]; dup {
				continue
			}

			info.byName[name] = len(info.properties)
			info.properties = append(info.properties, Property{
				Name:     name,
				Type:     field.Type,
				Index:    field.Index,
				Readable: true,
				Writable: !tag.readOnly,
			})
		}
	}

	actual, _ := typeCache.LoadOrStore(typ, info)
	return actual.(*typeInfo)
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
