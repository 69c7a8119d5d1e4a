package jsonpatch

import (
	"bytes"
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// MarshalJSON encodes d as an RFC 6902 JSON array. An empty document encodes
// as [].
func (d Document) MarshalJSON() ([]byte, error) {
	ops := d.Operations
	if ops == nil {
		ops = []Operation{}
	}
	return json.Marshal(ops)
}

// UnmarshalJSON replaces the operations of d with the ones in data, which
// must be a JSON array. The configuration of d is kept.
func (d *Document) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return fmt.Errorf("%w: expected a JSON array", ErrMalformedDocument)
	}

	var ops []Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	d.Operations = ops
	return nil
}

// Parse decodes a JSON patch document and configures it with opts.
func Parse(data []byte, opts ...Option) (*Document, error) {
	d := New(opts...)
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseYAML decodes a patch document written in YAML. Values go through the
// same JSON representation as Parse produces.
func ParseYAML(data []byte, opts ...Option) (*Document, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return Parse(j, opts...)
}

// ToYAML encodes d as a YAML sequence of operations.
func (d Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}
