// Package dynamic defines free-form property bags that patches can address
// by member name.
package dynamic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a dynamically extensible property bag. Patch operations treat it
// like a string-keyed map whose members may be created and deleted at will.
type Object interface {
	// GetMember returns the value of the named member and whether it exists.
	GetMember(name string) (any, bool)
	// SetMember creates or overwrites the named member. It returns false if
	// the object refuses the value.
	SetMember(name string, value any) bool
	// DeleteMember removes the named member and reports whether it existed.
	DeleteMember(name string) bool
}

// Expando is an Object that remembers the order in which members were first
// set. The zero value is an empty, usable Expando.
type Expando struct {
	keys   []string
	values map[string]any
}

var _ Object = (*Expando)(nil)

// NewExpando returns an empty Expando.
func NewExpando() *Expando {
	return &Expando{}
}

// GetMember implements Object.
func (e *Expando) GetMember(name string) (any, bool) {
	v, ok := e.values[name]
	return v, ok
}

// SetMember implements Object. It never refuses a value.
func (e *Expando) SetMember(name string, value any) bool {
	if e.values == nil {
		e.values = make(map[string]any)
	}
	if _, ok := e.values[name]; !ok {
		e.keys = append(e.keys, name)
	}
	e.values[name] = value
	return true
}

// DeleteMember implements Object.
func (e *Expando) DeleteMember(name string) bool {
	if _, ok := e.values[name]; !ok {
		return false
	}
	delete(e.values, name)
	for i, k := range e.keys {
		if k == name {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of members.
func (e *Expando) Len() int {
	return len(e.keys)
}

// Keys returns member names in insertion order.
func (e *Expando) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// MarshalJSON encodes the members as a JSON object in insertion order.
func (e *Expando) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.values[k])
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the members with those of a JSON object, keeping
// the order in which they appear in data.
func (e *Expando) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expando: expected JSON object, got %v", tok)
	}

	e.keys = nil
	e.values = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("member %q: %w", key, err)
		}
		e.SetMember(key, v)
	}
	_, err = dec.Token()
	return err
}
