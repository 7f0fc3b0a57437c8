package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipe(t *testing.T) {
	data := []byte("secret")
	backing := data

	Wipe(&data)

	assert.Nil(t, data)
	assert.Equal(t, make([]byte, len(backing)), backing, "backing array must be zeroed")
}

func TestWipe_Nil(t *testing.T) {
	// Should not panic
	Wipe(nil)

	var empty []byte
	Wipe(&empty)
	assert.Nil(t, empty)
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "<0 chars>"},
		{"hunter2", "<7 chars>"},
		{"pässwörd", "<8 chars>"},
		{" padded ", "<8 chars>"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.in))
		})
	}
}
