package contract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Base struct {
	ID      int
	Created string `json:"created_at"`
}

type Customer struct {
	Base
	Name     string
	Email    string `json:"mail,omitempty"`
	Secret   string `json:"-"`
	Hidden   string `jsonpatch:"-"`
	Locked   string `jsonpatch:"readonly"`
	Renamed  int    `json:",omitempty"`
	internal string
}

var customerType = reflect.TypeOf(Customer{})

func TestDefaultResolver_ResolveProperty(t *testing.T) {
	tests := []struct {
		name     string
		resolver DefaultResolver
		lookup   string
		want     string
		found    bool
	}{
		{"Exact field name", DefaultResolver{}, "Name", "Name", true},
		{"Case-insensitive field name", DefaultResolver{}, "name", "Name", true},
		{"Case-sensitive rejects case mismatch", DefaultResolver{CaseSensitive: true}, "name", "", false},
		{"Json tag name", DefaultResolver{}, "mail", "mail", true},
		{"Go name hidden by json tag", DefaultResolver{}, "Email", "", false},
		{"Json dash is skipped", DefaultResolver{}, "Secret", "", false},
		{"Patch dash is skipped", DefaultResolver{}, "Hidden", "", false},
		{"Empty json name keeps field name", DefaultResolver{}, "Renamed", "Renamed", true},
		{"Unexported field", DefaultResolver{}, "internal", "", false},
		{"Promoted field", DefaultResolver{}, "ID", "ID", true},
		{"Promoted tagged field", DefaultResolver{}, "CREATED_AT", "created_at", true},
		{"Embedded struct itself is flattened", DefaultResolver{}, "Base", "", false},
		{"Missing", DefaultResolver{}, "Nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.resolver.ResolveProperty(customerType, tt.lookup)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, p.Name)
			}
		})
	}
}

func TestDefaultResolver_ExactMatchWins(t *testing.T) {
	type Ambiguous struct {
		Value int
		VALUE int `json:"VALUE"`
	}

	p, ok := DefaultResolver{}.ResolveProperty(reflect.TypeOf(Ambiguous{}), "VALUE")
	require.True(t, ok)
	assert.Equal(t, []int{1}, p.Index)

	p, ok = DefaultResolver{}.ResolveProperty(reflect.TypeOf(Ambiguous{}), "value")
	require.True(t, ok)
	assert.Equal(t, []int{0}, p.Index)
}

func TestDefaultResolver_ReadOnly(t *testing.T) {
	p, ok := DefaultResolver{}.ResolveProperty(customerType, "Locked")
	require.True(t, ok)
	assert.True(t, p.Readable)
	assert.False(t, p.Writable)

	p, ok = DefaultResolver{}.ResolveProperty(customerType, "Name")
	require.True(t, ok)
	assert.True(t, p.Writable)
	assert.Equal(t, reflect.TypeOf(""), p.Type)
}

func TestDefaultResolver_NonStruct(t *testing.T) {
	_, ok := DefaultResolver{}.ResolveProperty(reflect.TypeOf(map[string]int{}), "x")
	assert.False(t, ok)
	_, ok = DefaultResolver{}.ResolveProperty(nil, "x")
	assert.False(t, ok)
}

func TestResolverFunc(t *testing.T) {
	calls := 0
	r := ResolverFunc(func(t reflect.Type, name string) (Property, bool) {
		calls++
		if name == "alias" {
			return DefaultResolver{}.ResolveProperty(t, "Name")
		}
		return Property{}, false
	})

	p, ok := r.ResolveProperty(customerType, "alias")
	require.True(t, ok)
	assert.Equal(t, "Name", p.Name)
	assert.Equal(t, 1, calls)
}

func TestProperties(t *testing.T) {
	var names []string
	for _, p := range Properties(customerType) {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"ID", "created_at", "Name", "mail", "Locked", "Renamed"}, names)
	assert.Nil(t, Properties(reflect.TypeOf(1)))
}
