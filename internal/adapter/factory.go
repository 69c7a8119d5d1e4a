package adapter

import (
	"reflect"
	"sync"

	"github.com/brunoga/jsonpatch/contract"
)

// Factory selects the adapter for a node from the node's runtime type.
// Selections are memoised per type.
type Factory struct {
	resolver contract.Resolver
	cache    sync.Map // map[reflect.Type]Adapter
}

// NewFactory returns a Factory whose struct adapter resolves members through
// resolver. A nil resolver means contract.DefaultResolver{}.
func NewFactory(resolver contract.Resolver) *Factory {
	if resolver == nil {
		resolver = contract.DefaultResolver{}
	}
	return &Factory{resolver: resolver}
}

// Select returns the adapter for n.
func (f *Factory) Select(n Node) Adapter {
	t := n.value.Type()
	if a, ok := f.cache.Load(t); ok {
		return a.(Adapter)
	}

	var a Adapter
	switch {
	case t.Implements(objectType):
		a = dynamicAdapter{}
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		a = listAdapter{}
	case t.Kind() == reflect.Map:
		a = dictionaryAdapter{}
	default:
		a = pocoAdapter{resolver: f.resolver}
	}

	actual, _ := f.cache.LoadOrStore(t, a)
	return actual.(Adapter)
}
