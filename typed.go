package jsonpatch

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/brunoga/jsonpatch/contract"
	"github.com/brunoga/jsonpatch/dynamic"
	"github.com/brunoga/jsonpatch/internal/core"
	"github.com/brunoga/jsonpatch/internal/pointer"
)

var objectType = reflect.TypeOf((*dynamic.Object)(nil)).Elem()

// Typed builds a Document for targets of type T. Paths and values are
// checked against T as operations are appended and misuse panics, so
// mistakes surface where the patch is written rather than where it is
// applied.
//
// Locations below interfaces and dynamic objects cannot be checked
// statically and are accepted as is.
type Typed[T any] struct {
	doc *Document
}

// NewTyped returns an empty Typed document configured with opts.
func NewTyped[T any](opts ...Option) *Typed[T] {
	return &Typed[T]{doc: New(opts...)}
}

// Document returns the underlying untyped document.
func (t *Typed[T]) Document() *Document {
	return t.doc
}

// Operations returns the operations appended so far.
func (t *Typed[T]) Operations() []Operation {
	return t.doc.Operations
}

// Add appends an operation that adds value at path.
func (t *Typed[T]) Add(path string, value any) *Typed[T] {
	if err := t.checkValue(path, value); err != nil {
		panic(fmt.Sprintf("invalid Add operation: %v", err))
	}
	t.doc.Add(path, value)
	return t
}

// Remove appends an operation that removes the value at path.
func (t *Typed[T]) Remove(path string) *Typed[T] {
	if _, err := t.validatePath(path); err != nil {
		panic(fmt.Sprintf("invalid Remove operation: %v", err))
	}
	t.doc.Remove(path)
	return t
}

// Replace appends an operation that replaces the value at path.
func (t *Typed[T]) Replace(path string, value any) *Typed[T] {
	if err := t.checkValue(path, value); err != nil {
		panic(fmt.Sprintf("invalid Replace operation: %v", err))
	}
	t.doc.Replace(path, value)
	return t
}

// Move appends an operation that moves the value at from to path.
func (t *Typed[T]) Move(from, path string) *Typed[T] {
	if err := t.checkTransfer(from, path); err != nil {
		panic(fmt.Sprintf("invalid Move operation: %v", err))
	}
	t.doc.Move(from, path)
	return t
}

// Copy appends an operation that copies the value at from to path.
func (t *Typed[T]) Copy(from, path string) *Typed[T] {
	if err := t.checkTransfer(from, path); err != nil {
		panic(fmt.Sprintf("invalid Copy operation: %v", err))
	}
	t.doc.Copy(from, path)
	return t
}

// Test appends an operation that checks the value at path equals value.
func (t *Typed[T]) Test(path string, value any) *Typed[T] {
	if err := t.checkValue(path, value); err != nil {
		panic(fmt.Sprintf("invalid Test operation: %v", err))
	}
	t.doc.Test(path, value)
	return t
}

// ApplyTo applies the document to target. See Document.ApplyTo.
func (t *Typed[T]) ApplyTo(target *T, onError ErrorHandler) error {
	return t.doc.ApplyTo(target, onError)
}

// MarshalJSON encodes the underlying document.
func (t *Typed[T]) MarshalJSON() ([]byte, error) {
	return t.doc.MarshalJSON()
}

func (t *Typed[T]) checkValue(path string, value any) error {
	typ, err := t.validatePath(path)
	if err != nil {
		return err
	}
	if typ == nil {
		return nil
	}
	if _, ok := core.ConvertTo(value, typ); !ok {
		return fmt.Errorf("type mismatch at %q: cannot use %T as %v", path, value, typ)
	}
	return nil
}

func (t *Typed[T]) checkTransfer(from, path string) error {
	fromType, err := t.validatePath(from)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	toType, err := t.validatePath(path)
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if fromType == nil || toType == nil {
		return nil
	}
	if _, ok := core.ConvertTo(reflect.Zero(fromType).Interface(), toType); !ok {
		return fmt.Errorf("type mismatch: cannot move %v from %q to %v at %q", fromType, from, toType, path)
	}
	return nil
}

// validatePath returns the type stored at path in T. A nil type means the
// location is only known at run time.
func (t *Typed[T]) validatePath(path string) (reflect.Type, error) {
	segments, err := pointer.Parse(path)
	if err != nil {
		return nil, err
	}
	if segments.IsRoot() {
		return nil, fmt.Errorf("the whole document cannot be targeted")
	}

	resolver := t.doc.cfg.resolver
	if resolver == nil {
		resolver = contract.DefaultResolver{}
	}

	current := reflect.TypeOf((*T)(nil)).Elem()
	for i, segment := range segments {
		for current.Kind() == reflect.Pointer && !current.Implements(objectType) {
			current = current.Elem()
		}
		if current.Implements(objectType) || reflect.PointerTo(current).Implements(objectType) {
			return nil, nil
		}

		switch current.Kind() {
		case reflect.Struct:
			p, ok := resolver.ResolveProperty(current, segment)
			if !ok {
				return nil, fmt.Errorf("field %q not found in struct %v", segment, current)
			}
			current = p.Type

		case reflect.Map:
			if _, err := core.MapKey(segment, current.Key()); err != nil {
				return nil, fmt.Errorf("invalid map key %q for %v: %w", segment, current.Key(), err)
			}
			current = current.Elem()

		case reflect.Slice, reflect.Array:
			if segment == pointer.EndOfList {
				if i != len(segments)-1 {
					return nil, fmt.Errorf("'-' can only be used as the last segment in a path")
				}
			} else if _, err := strconv.Atoi(segment); err != nil {
				return nil, fmt.Errorf("invalid array/slice index %q: %w", segment, err)
			}
			current = current.Elem()

		case reflect.Interface:
			return nil, nil

		default:
			return nil, fmt.Errorf("cannot navigate into %v using path segment %q", current, segment)
		}
	}

	return current, nil
}
