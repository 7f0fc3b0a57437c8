package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"john.doe+tag@mail.example.org", true},
		{"  padded@example.com  ", true},
		{"not-an-email", false},
		{"", false},
		{"   ", false},
		{"a@b", false},
		{"a@@b.com", false},
		{"a@b@c.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeEmail(tt.input))
		})
	}
}
