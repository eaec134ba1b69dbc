package blake2s

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParamBlock_Packing(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		p, err := newParamBlock(Size, 0, nil, nil)
		require.NoError(t, err)

		// digest length, key length, fan-out 1, depth 1
		assert.Equal(t, uint32(0x01010020), p[0])
		assert.Equal(t, [8]uint32{0x01010020}, p)
	})

	t.Run("Keyed", func(t *testing.T) {
		p, err := newParamBlock(Size, KeySize, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, uint32(0x01012020), p[0])
	})

	t.Run("SaltWords", func(t *testing.T) {
		p, err := newParamBlock(Size, 0, []byte("ABCDEFGH"), nil)
		require.NoError(t, err)

		assert.Equal(t, uint32(0x44434241), p[4])
		assert.Equal(t, uint32(0x48474645), p[5])
		assert.Equal(t, uint32(0), p[6])
		assert.Equal(t, uint32(0), p[7])
	})

	t.Run("PersonalWords", func(t *testing.T) {
		p, err := newParamBlock(Size, 0, nil, []byte("PQRSTUVW"))
		require.NoError(t, err)

		assert.Equal(t, uint32(0), p[4])
		assert.Equal(t, uint32(0), p[5])
		assert.Equal(t, uint32(0x53525150), p[6])
		assert.Equal(t, uint32(0x57565554), p[7])
	})

	t.Run("ShortSaltZeroPadded", func(t *testing.T) {
		short, err := newParamBlock(Size, 0, []byte("AB"), nil)
		require.NoError(t, err)

		long, err := newParamBlock(Size, 0, []byte("AB\x00\x00\x00\x00\x00\x00"), nil)
		require.NoError(t, err)

		assert.Equal(t, long, short)
	})
}

func TestNewParamBlock_InitialState(t *testing.T) {
	h, err := New()
	require.NoError(t, err)

	// iv[0] XOR 0x01010020
	assert.Equal(t, uint32(0x6b08e647), h.h[0])
	assert.Equal(t, iv[1:], h.h[1:], "only the first word differs for the default configuration")
}

func TestNewParamBlock_Limits(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		keyLen   int
		salt     []byte
		personal []byte
		ok       bool
	}{
		{"MinSize", 1, 0, nil, nil, true},
		{"MaxSize", Size, 0, nil, nil, true},
		{"SizeZero", 0, 0, nil, nil, false},
		{"SizeOver", Size + 1, 0, nil, nil, false},
		{"MaxKey", Size, KeySize, nil, nil, true},
		{"KeyOver", Size, KeySize + 1, nil, nil, false},
		{"MaxSalt", Size, 0, make([]byte, SaltSize), nil, true},
		{"SaltOver", Size, 0, make([]byte, SaltSize+1), nil, false},
		{"MaxPersonal", Size, 0, nil, make([]byte, PersonalSize), true},
		{"PersonalOver", Size, 0, nil, make([]byte, PersonalSize+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newParamBlock(tt.size, tt.keyLen, tt.salt, tt.personal)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var pe *ParamError
				assert.ErrorAs(t, err, &pe)
			}
		})
	}
}
