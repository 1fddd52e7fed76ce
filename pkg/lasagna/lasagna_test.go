package lasagna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBakeTimeRemaining(t *testing.T) {
	assert.Equal(t, 40, BakeTimeRemaining(0))
	assert.Equal(t, 10, BakeTimeRemaining(30))
	assert.Equal(t, -5, BakeTimeRemaining(45))
}

func TestPreparationTimeInMinutes(t *testing.T) {
	assert.Equal(t, 0, PreparationTimeInMinutes(0))
	assert.Equal(t, 4, PreparationTimeInMinutes(2))
	assert.Equal(t, 16, PreparationTimeInMinutes(8))
}

func TestElapsedTimeInMinutes(t *testing.T) {
	tests := []struct {
		name    string
		layers  int
		elapsed int
		want    int
	}{
		{"nothing done", 0, 0, 0},
		{"one layer in oven", 1, 10, 12},
		{"three layers", 3, 20, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedTimeInMinutes(tt.layers, tt.elapsed))
		})
	}
}
