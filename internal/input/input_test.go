package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		bitSize int
		want    uint64
		wantErr bool
	}{
		{"plain", "10", 32, 10, false},
		{"whitespace", "  5\n", 32, 5, false},
		{"plus sign", "+7", 32, 7, false},
		{"zero", "0", 32, 0, false},
		{"max uint32", "4294967295", 32, 4294967295, false},
		{"too wide for uint32", "4294967296", 32, 0, true},
		{"fits uint64", "4294967296", 64, 4294967296, false},
		{"negative", "-1", 32, 0, true},
		{"letters", "abc", 32, 0, true},
		{"trailing garbage", "12abc", 32, 0, true},
		{"empty", "", 32, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint(tt.in, tt.bitSize)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadUint(t *testing.T) {
	v, err := ReadUint(strings.NewReader("  42 99\n"), 32)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	_, err = ReadUint(strings.NewReader(""), 32)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadUint(strings.NewReader("x\n"), 32)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadUintReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadUint(iotest.ErrReader(boom), 32)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestValidator(t *testing.T) {
	validate := Validator(8)
	assert.NoError(t, validate("64"))
	assert.ErrorIs(t, validate("256"), ErrMalformed)
}
