package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFieldsResolve(t *testing.T) {
	tests := []struct {
		name    string
		fields  AddressFields
		want    string
		wantErr error
	}{
		{
			name:   "target only",
			fields: AddressFields{Target: "0xABC123"},
			want:   "0xABC123",
		},
		{
			name:   "target wins over legacy address",
			fields: AddressFields{Target: "0xABC123", Address: "0xDEF456"},
			want:   "0xABC123",
		},
		{
			name:   "legacy address only",
			fields: AddressFields{Address: "0xDEF456"},
			want:   "0xDEF456",
		},
		{
			name:   "zero address target is still a target",
			fields: AddressFields{Target: "0x0000000000000000000000000000000000000000", Address: "0xDEF456"},
			want:   "0x0000000000000000000000000000000000000000",
		},
		{
			name:    "no address at all",
			fields:  AddressFields{},
			wantErr: ErrEmptyAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fields.Resolve()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBytecodeObject(t *testing.T) {
	assert.True(t, BytecodeObject{}.IsEmpty())
	assert.True(t, BytecodeObject{Object: "0x"}.IsEmpty())
	assert.False(t, BytecodeObject{Object: "0x6080"}.IsEmpty())

	assert.False(t, BytecodeObject{Object: "0x6080"}.NeedsLinking())
	assert.True(t, BytecodeObject{Object: "0x6080__$a1b2c3$__"}.NeedsLinking())
	assert.True(t, BytecodeObject{
		Object:         "0x6080",
		LinkReferences: map[string]any{"src/Lib.sol": map[string]any{}},
	}.NeedsLinking())
}
