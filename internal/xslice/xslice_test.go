package xslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []string{"a", "b"}

	assert.Equal(t, "a", At(s, 0, "x"))
	assert.Equal(t, "b", At(s, 1, "x"))
	assert.Equal(t, "x", At(s, 2, "x"))
	assert.Equal(t, "x", At(s, -1, "x"))

	// An empty element in range is returned as-is, not replaced.
	assert.Equal(t, "", At([]string{""}, 0, "x"))

	var empty []int
	assert.Equal(t, 7, At(empty, 0, 7))
}
