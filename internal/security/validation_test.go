package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n"), 0o600))

	t.Run("different files", func(t *testing.T) {
		assert.NoError(t, ValidateDistinctPaths(src, filepath.Join(dir, "out.csv")))
	})

	t.Run("same path", func(t *testing.T) {
		assert.Error(t, ValidateDistinctPaths(src, src))
	})

	t.Run("same path after cleaning", func(t *testing.T) {
		assert.Error(t, ValidateDistinctPaths(src, filepath.Join(dir, ".", "sub", "..", "export.csv")))
	})

	t.Run("symlink to source", func(t *testing.T) {
		link := filepath.Join(dir, "link.csv")
		if err := os.Symlink(src, link); err != nil {
			t.Skip("symlinks not supported")
		}
		assert.Error(t, ValidateDistinctPaths(src, link))
	})
}

func TestValidateDomainName(t *testing.T) {
	tests := []struct {
		domain  string
		wantErr bool
	}{
		{"example.com", false},
		{"csvporter.local", false},
		{"sub-domain.example.org", false},
		{"", true},
		{"-bad.com", true},
		{"bad-.com", true},
		{"bad..com", true},
		{"under_score.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			err := ValidateDomainName(tt.domain)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRPID(t *testing.T) {
	assert.NoError(t, ValidateRPID("csvporter.local"))
	assert.Error(t, ValidateRPID(""))
	assert.Error(t, ValidateRPID("not a domain"))
}
