package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listNode(t *testing.T, list *[]int) Node {
	t.Helper()
	n := Root(list)
	require.True(t, n.IsValid())
	return n
}

func TestList_Add(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		value   any
		want    []int
		wantMsg string
	}{
		{"Insert at start", "0", 4, []int{4, 1, 2, 3}, ""},
		{"Insert in middle", "1", 4, []int{1, 4, 2, 3}, ""},
		{"Insert at count", "3", 4, []int{1, 2, 3, 4}, ""},
		{"Append token", "-", 4, []int{1, 2, 3, 4}, ""},
		{"Decoded JSON number", "-", float64(4), []int{1, 2, 3, 4}, ""},
		{"Past count", "4", 4, []int{1, 2, 3},
			"The index value provided by path segment '4' is out of bounds of the array size."},
		{"Negative", "-1", 4, []int{1, 2, 3},
			"The index value provided by path segment '-1' is out of bounds of the array size."},
		{"Not a number", "abc", 4, []int{1, 2, 3},
			"The path segment 'abc' is invalid for an array index."},
		{"Wrong value type", "0", "four", []int{1, 2, 3},
			"The value 'four' is invalid for target location."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := []int{1, 2, 3}
			ok, msg := listAdapter{}.TryAdd(listNode(t, &list), tt.segment, tt.value)
			assert.Equal(t, tt.wantMsg == "", ok)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.want, list)
		})
	}
}

func TestList_AddAtCountEqualsAppendToken(t *testing.T) {
	a := []string{"x", "y"}
	b := []string{"x", "y"}

	ok, _ := listAdapter{}.TryAdd(Root(&a), "2", "z")
	require.True(t, ok)
	ok, _ = listAdapter{}.TryAdd(Root(&b), "-", "z")
	require.True(t, ok)

	assert.Equal(t, a, b)
}

func TestList_Add_ToEmptyAndNil(t *testing.T) {
	var list []int
	ok, msg := listAdapter{}.TryAdd(Root(&list), "0", 7)
	require.True(t, ok, msg)
	assert.Equal(t, []int{7}, list)
}

func TestList_SignedAndPaddedIndexes(t *testing.T) {
	list := []int{1, 2, 3}
	n := listNode(t, &list)

	ok, msg := listAdapter{}.TryReplace(n, "+1", 9)
	require.True(t, ok, msg)
	ok, msg = listAdapter{}.TryReplace(n, "01", 8)
	require.True(t, ok, msg)
	assert.Equal(t, []int{1, 8, 3}, list)

	ok, msg = listAdapter{}.TryReplace(n, "+3", 0)
	assert.False(t, ok)
	assert.Equal(t, "The index value provided by path segment '+3' is out of bounds of the array size.", msg)
}

func TestList_BoundsForReads(t *testing.T) {
	for _, segment := range []string{"3", "-1", "-"} {
		t.Run(segment, func(t *testing.T) {
			list := []int{1, 2, 3}
			n := listNode(t, &list)
			want := "The index value provided by path segment '" + segment + "' is out of bounds of the array size."

			_, ok, msg := listAdapter{}.TryGet(n, segment)
			assert.False(t, ok)
			assert.Equal(t, want, msg)

			ok, msg = listAdapter{}.TryRemove(n, segment)
			assert.False(t, ok)
			assert.Equal(t, want, msg)

			ok, msg = listAdapter{}.TryReplace(n, segment, 9)
			assert.False(t, ok)
			assert.Equal(t, want, msg)

			assert.Equal(t, []int{1, 2, 3}, list)
		})
	}
}

func TestList_GetReplaceRemove(t *testing.T) {
	list := []int{1, 2, 3}
	n := listNode(t, &list)

	v, ok, _ := listAdapter{}.TryGet(n, "1")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	ok, _ = listAdapter{}.TryReplace(n, "1", float64(20))
	require.True(t, ok)
	assert.Equal(t, []int{1, 20, 3}, list)

	ok, _ = listAdapter{}.TryRemove(n, "0")
	require.True(t, ok)
	assert.Equal(t, []int{20, 3}, list)

	ok, _ = listAdapter{}.TryRemove(n, "1")
	require.True(t, ok)
	assert.Equal(t, []int{20}, list)
}

func TestList_RemoveDoesNotAliasOriginal(t *testing.T) {
	list := []int{1, 2, 3}
	alias := list

	ok, _ := listAdapter{}.TryRemove(Root(&list), "0")
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, list)
	assert.Equal(t, []int{1, 2, 3}, alias)
}

func TestList_Test(t *testing.T) {
	list := []any{"a", float64(2)}
	n := Root(&list)

	ok, msg := listAdapter{}.TryTest(n, "1", 2)
	assert.True(t, ok, msg)

	ok, msg = listAdapter{}.TryTest(n, "0", "b")
	assert.False(t, ok)
	assert.Equal(t, "The current value 'a' at path '0' is not equal to the test value 'b'.", msg)
}

func TestList_ArraysAreFixedSize(t *testing.T) {
	arr := [3]int{1, 2, 3}
	n := Root(&arr)
	want := "The type '[3]int' which is an array is not supported for json patch operations as it has a fixed size."

	ok, msg := listAdapter{}.TryAdd(n, "-", 4)
	assert.False(t, ok)
	assert.Equal(t, want, msg)

	ok, msg = listAdapter{}.TryRemove(n, "0")
	assert.False(t, ok)
	assert.Equal(t, want, msg)

	_, ok, msg = listAdapter{}.TryGet(n, "0")
	assert.False(t, ok)
	assert.Equal(t, want, msg)

	ok, msg = listAdapter{}.TryReplace(n, "0", 1)
	assert.False(t, ok)
	assert.Equal(t, want, msg)

	ok, msg = listAdapter{}.TryTest(n, "0", 1)
	assert.False(t, ok)
	assert.Equal(t, want, msg)

	assert.Equal(t, [3]int{1, 2, 3}, arr)
}

func TestList_UnaddressableSliceCannotGrow(t *testing.T) {
	list := []int{1}
	ok, msg := listAdapter{}.TryAdd(Root(list), "-", 2)
	assert.False(t, ok)
	assert.Equal(t, "The property at '-' could not be updated.", msg)

	// Elements are still addressable through the shared backing array.
	ok, _ = listAdapter{}.TryReplace(Root(list), "0", 5)
	assert.True(t, ok)
	assert.Equal(t, []int{5}, list)
}

func TestList_Traverse(t *testing.T) {
	type item struct{ Name string }
	list := []item{{"a"}, {"b"}}
	n := Root(&list)

	next, ok, _ := listAdapter{}.TryTraverse(n, "1")
	require.True(t, ok)
	assert.Equal(t, "b", next.Value().Field(0).Interface())

	_, ok, msg := listAdapter{}.TryTraverse(n, "2")
	assert.False(t, ok)
	assert.Equal(t, "The index value provided by path segment '2' is out of bounds of the array size.", msg)

	_, ok, msg = listAdapter{}.TryTraverse(n, "-")
	assert.False(t, ok)
	assert.Equal(t, "The path segment '-' is invalid for an array index.", msg)

	arr := [2]int{1, 2}
	next, ok, _ = listAdapter{}.TryTraverse(Root(&arr), "0")
	require.True(t, ok)
	assert.Equal(t, 1, next.Value().Interface())
}
