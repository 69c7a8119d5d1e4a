package jsonpatch

import (
	"fmt"

	"github.com/barkimedes/go-deepcopy"
	clone "github.com/huandu/go-clone"
	"github.com/mitchellh/copystructure"
)

// Cloner creates deep copies of values for the copy operation. A clone must
// keep the runtime type of its source and share no mutable state with it.
type Cloner interface {
	Clone(v any) (any, error)
}

// ClonerFunc adapts a function to the Cloner interface.
type ClonerFunc func(v any) (any, error)

// Clone calls f(v).
func (f ClonerFunc) Clone(v any) (any, error) {
	return f(v)
}

var (
	// GoCloneCloner clones with github.com/huandu/go-clone. It copies
	// unexported fields and is the default.
	GoCloneCloner Cloner = ClonerFunc(goClone)

	// CopyStructureCloner clones with github.com/mitchellh/copystructure.
	// Unexported fields are left at their zero value.
	CopyStructureCloner Cloner = ClonerFunc(copystructure.Copy)

	// DeepCopyCloner clones with github.com/barkimedes/go-deepcopy.
	DeepCopyCloner Cloner = ClonerFunc(deepcopy.Anything)
)

func goClone(v any) (cloned any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clone %T: %v", v, r)
		}
	}()
	return clone.Clone(v), nil
}
