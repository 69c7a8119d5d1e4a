package jsonpatch

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when a patch document cannot be decoded
// into a list of operations.
var ErrMalformedDocument = errors.New("the JSON patch document was malformed and could not be parsed")

// PatchError describes the failure of a single operation. Operations applied
// before the failing one are not rolled back.
type PatchError struct {
	// AffectedObject is the patch target.
	AffectedObject any
	// Operation is the operation that failed.
	Operation Operation
	// Path is the location that could not be resolved or changed. For move
	// and copy it is the "from" location when the source was at fault.
	Path string
	// Message is a human readable description of the failure.
	Message string
}

func (e *PatchError) Error() string {
	return e.Message
}

// ErrorHandler receives every failed operation when passed to ApplyTo.
type ErrorHandler func(*PatchError)

const testOperationNotSupported = "The test operation is not supported."

func invalidOperation(op OperationType) string {
	return fmt.Sprintf("Invalid JsonPatch operation '%s'.", op)
}

func invalidValueForPath(path string) string {
	return fmt.Sprintf("The provided string '%s' is an invalid path.", path)
}

func targetLocationAtPathNotFound(op OperationType, path string) string {
	return fmt.Sprintf("For operation '%s', the target location specified by path '%s' was not found.", op, path)
}

func cannotCopyProperty(from string) string {
	return fmt.Sprintf("The property at path '%s' could not be copied.", from)
}
