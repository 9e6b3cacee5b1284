package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got := RandomInt(3, 7)
		assert.GreaterOrEqual(t, got, 3)
		assert.LessOrEqual(t, got, 7)
	}
}

func TestRandomInt_MinGreaterThanMax(t *testing.T) {
	assert.Equal(t, 10, RandomInt(10, 5))
}

func TestRandomInt_SingleValue(t *testing.T) {
	assert.Equal(t, 4, RandomInt(4, 4))
}

func TestRandomInt64_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got := RandomInt64(50000, 100000)
		assert.GreaterOrEqual(t, got, int64(50000))
		assert.LessOrEqual(t, got, int64(100000))
	}
}

func TestRandomPercent_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got := RandomPercent()
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 100.0)
	}
}
