package jsonpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperationType(t *testing.T) {
	tests := []struct {
		in   string
		want OperationType
	}{
		{"add", OperationTypeAdd},
		{"Add", OperationTypeAdd},
		{"REMOVE", OperationTypeRemove},
		{"replace", OperationTypeReplace},
		{"move", OperationTypeMove},
		{"copy", OperationTypeCopy},
		{"test", OperationTypeTest},
		{"", OperationTypeInvalid},
		{"bogus", OperationTypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOperationType(tt.in))
		})
	}
}

func TestOperation_Type(t *testing.T) {
	assert.Equal(t, OperationTypeMove, Operation{Op: "Move"}.Type())
	assert.Equal(t, OperationTypeInvalid, Operation{Op: "merge"}.Type())
}

func TestSupported(t *testing.T) {
	for _, op := range []OperationType{
		OperationTypeAdd, OperationTypeRemove, OperationTypeReplace,
		OperationTypeMove, OperationTypeCopy,
	} {
		assert.True(t, Supported(op), op)
	}
	assert.False(t, Supported(OperationTypeTest))
	assert.False(t, Supported(OperationTypeInvalid))
}
