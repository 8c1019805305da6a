package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Scandinavian Minimalism", "scandinavian-minimalism"},
		{"  Before & After: Loft!  ", "before-after-loft"},
		{"Déjà Vu Décor", "deja-vu-decor"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces --- and___underscores", "multiple-spaces-and-underscores"},
		{"2024 Trends", "2024-trends"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("warm-tones-2024"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid("double--hyphen"))
	assert.False(t, IsValid("Upper-Case"))
}
