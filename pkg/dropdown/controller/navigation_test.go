package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIndex(t *testing.T) {
	tests := []struct {
		current, length, want int
	}{
		{-1, 3, 0},
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{0, 1, 0},
		{-1, 0, -1},
		{5, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextIndex(tt.current, tt.length), "NextIndex(%d, %d)", tt.current, tt.length)
	}
}

func TestPrevIndex(t *testing.T) {
	tests := []struct {
		current, length, want int
	}{
		{-1, 3, 2},
		{0, 3, 2},
		{1, 3, 0},
		{2, 3, 1},
		{0, 1, 0},
		{-1, 0, -1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrevIndex(tt.current, tt.length), "PrevIndex(%d, %d)", tt.current, tt.length)
	}
}

func TestNextPrevAreInverse(t *testing.T) {
	for length := 1; length <= 6; length++ {
		for i := 0; i < length; i++ {
			assert.Equal(t, i, PrevIndex(NextIndex(i, length), length))
			assert.Equal(t, i, NextIndex(PrevIndex(i, length), length))
		}
	}
}

func TestFirstLastIndex(t *testing.T) {
	assert.Equal(t, -1, FirstIndex(0))
	assert.Equal(t, -1, LastIndex(0))
	assert.Equal(t, 0, FirstIndex(4))
	assert.Equal(t, 3, LastIndex(4))
}

func TestIndexOf(t *testing.T) {
	options := []Option{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, 1, IndexOf(options, "b"))
	assert.Equal(t, -1, IndexOf(options, "z"))
	assert.Equal(t, -1, IndexOf(options, ""))
	assert.Equal(t, -1, IndexOf(nil, "a"))
}
