package contract

import (
	"reflect"
	"strings"
)

// TagName is the struct tag key read by DefaultResolver. Supported options
// are "-" (the field is not addressable by patches) and "readonly" (the field
// can be read, moved or copied from, but never written).
const TagName = "jsonpatch"

type structTag struct {
	ignore   bool
	readOnly bool
}

func parseTag(field reflect.StructField) structTag {
	tag := field.Tag.Get(TagName)
	if tag == "" {
		return structTag{}
	}

	st := structTag{}
	for _, part := range strings.Split(tag, ",") {
		switch strings.TrimSpace(part) {
		case "-":
			st.ignore = true
		case "readonly":
			st.readOnly = true
		}
	}

	return st
}

// jsonName returns the name encoding/json would use for field, and false if
// encoding/json skips it.
func jsonName(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, true
	}
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name, true
	}
	return name, true
}
