package adapter

import (
	"fmt"
	"reflect"
)

// IndexOutOfBounds reports a list index outside the list.
func IndexOutOfBounds(segment string) string {
	return fmt.Sprintf("The index value provided by path segment '%s' is out of bounds of the array size.", segment)
}

// InvalidIndexValue reports a segment that is not a list index.
func InvalidIndexValue(segment string) string {
	return fmt.Sprintf("The path segment '%s' is invalid for an array index.", segment)
}

// InvalidValueForProperty reports a value that cannot be converted to the
// type of its destination.
func InvalidValueForProperty(value any) string {
	return fmt.Sprintf("The value '%v' is invalid for target location.", value)
}

// TargetLocationNotFound reports a missing or inaccessible member.
func TargetLocationNotFound(segment string) string {
	return fmt.Sprintf("The target location specified by path segment '%s' was not found.", segment)
}

// CannotUpdateProperty reports a member or container that cannot be written.
func CannotUpdateProperty(segment string) string {
	return fmt.Sprintf("The property at '%s' could not be updated.", segment)
}

// CannotReadProperty reports a member that cannot be read.
func CannotReadProperty(segment string) string {
	return fmt.Sprintf("The property at '%s' could not be read.", segment)
}

// InvalidPathSegment reports a segment that is not a valid map key.
func InvalidPathSegment(segment string) string {
	return fmt.Sprintf("The provided path segment '%s' cannot be converted to the target type.", segment)
}

// PatchNotSupportedForArrays reports an attempt to patch a fixed-size array.
func PatchNotSupportedForArrays(t reflect.Type) string {
	return fmt.Sprintf("The type '%v' which is an array is not supported for json patch operations as it has a fixed size.", t)
}

// ValueNotEqualToTestValue reports a failed test operation.
func ValueNotEqualToTestValue(current, value any, segment string) string {
	return fmt.Sprintf("The current value '%v' at path '%s' is not equal to the test value '%v'.", current, segment, value)
}
