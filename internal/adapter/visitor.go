package adapter

import (
	"github.com/brunoga/jsonpatch/internal/pointer"
)

// Visitor walks a target graph along every segment of a path but the last.
type Visitor struct {
	path    pointer.Path
	factory *Factory
}

// NewVisitor returns a Visitor for path.
func NewVisitor(path pointer.Path, factory *Factory) *Visitor {
	return &Visitor{path: path, factory: factory}
}

// TryVisit returns the container addressed by the parent of the visitor path
// and the adapter responsible for its final segment. The final segment itself
// is not checked. A failed hop stops the walk and its message is returned
// unchanged; a nil intermediate value fails with an empty message.
func (v *Visitor) TryVisit(root Node) (Node, Adapter, bool, string) {
	if !root.IsValid() {
		return Node{}, nil, false, ""
	}

	current := root
	adapter := v.factory.Select(current)
	for _, segment := range v.path.Parent() {
		next, ok, msg := adapter.TryTraverse(current, segment)
		if !ok {
			return Node{}, nil, false, msg
		}
		if !next.IsValid() {
			return Node{}, nil, false, ""
		}
		current = next
		adapter = v.factory.Select(current)
	}

	return current, adapter, true, ""
}
