package jsonpatch

import "strings"

// OperationType defines the allowed JSON Patch operation types.
type OperationType string

const (
	OperationTypeAdd     OperationType = "add"
	OperationTypeRemove  OperationType = "remove"
	OperationTypeReplace OperationType = "replace"
	OperationTypeMove    OperationType = "move"
	OperationTypeCopy    OperationType = "copy"
	OperationTypeTest    OperationType = "test"

	// OperationTypeInvalid is returned by ParseOperationType for anything
	// that is not an RFC 6902 operation name.
	OperationTypeInvalid OperationType = ""
)

// ParseOperationType returns the operation type named by op. Names are
// matched case-insensitively.
func ParseOperationType(op string) OperationType {
	switch t := OperationType(strings.ToLower(op)); t {
	case OperationTypeAdd, OperationTypeRemove, OperationTypeReplace,
		OperationTypeMove, OperationTypeCopy, OperationTypeTest:
		return t
	}
	return OperationTypeInvalid
}

// Supported reports whether documents apply operations of type t with the
// default configuration. The test operation is rejected unless a document is
// built with EnableTestOperation.
func Supported(t OperationType) bool {
	switch t {
	case OperationTypeAdd, OperationTypeRemove, OperationTypeReplace,
		OperationTypeMove, OperationTypeCopy:
		return true
	}
	return false
}

// Operation represents a single operation in a Document. Operations are
// treated as read-only once they are part of a document.
type Operation struct {
	Op    OperationType `json:"op"`
	Path  string        `json:"path"`
	From  string        `json:"from,omitempty"`  // Used for "move", "copy"
	Value any           `json:"value,omitempty"` // Used for "add", "replace", "test"
}

// Type returns the normalised operation type of o.
func (o Operation) Type() OperationType {
	return ParseOperationType(string(o.Op))
}
