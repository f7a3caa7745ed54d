package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "привет", TruncateRunes("привет", 0))
	assert.Equal(t, "привет", TruncateRunes("привет", 6))
	assert.Equal(t, "при…", TruncateRunes("привет", 3))
}

func TestHead(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"a", "b", "c"}, Head(in, 3))
	assert.Equal(t, []string{"a", "b"}, Head(in[:2], 3))
	assert.Empty(t, Head([]string{}, 3))
	assert.Empty(t, Head(in, -1))
}
