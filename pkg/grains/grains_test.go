package grains

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	tests := []struct {
		index uint8
		want  uint64
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 8},
		{16, 32768},
		{32, 2147483648},
		{64, 9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("square %d", tt.index), func(t *testing.T) {
			assert.Equal(t, tt.want, Square(tt.index))
		})
	}
}

func TestSquareOutOfDomain(t *testing.T) {
	for _, index := range []uint8{0, 65, 100, 255} {
		assert.Zero(t, Square(index), "Square(%d)", index)
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, uint64(18446744073709551615), Total())
	assert.Equal(t, Total(), Total())
}

func TestTotalThrough(t *testing.T) {
	assert.Zero(t, TotalThrough(0))
	assert.Equal(t, uint64(1), TotalThrough(1))
	assert.Equal(t, uint64(7), TotalThrough(3))
	assert.Equal(t, uint64(1<<63-1), TotalThrough(63))
	assert.Equal(t, Total(), TotalThrough(64))
	assert.Equal(t, Total(), TotalThrough(200))
}

func TestBoardMatchesClosedForms(t *testing.T) {
	board := Board()

	var sum uint64
	for i, grains := range board {
		assert.Equal(t, Square(uint8(i+1)), grains)
		sum += grains
		assert.Equal(t, TotalThrough(uint8(i+1)), sum, "cumulative through square %d", i+1)
	}
	assert.Equal(t, Total(), sum)
}
