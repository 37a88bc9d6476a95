package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "a = 1 AND b = 2", JoinWithAnd([]string{"a = 1", "b = 2"}))
	assert.Equal(t, "a = 1", JoinWithAnd([]string{"a = 1"}))
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"50%", "50\\%"},
		{"a_b", "a\\_b"},
		{"back\\slash", "back\\\\slash"},
		{"%_\\", "\\%\\_\\\\"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeLike(tt.in), tt.in)
	}
}
