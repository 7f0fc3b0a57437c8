package formats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvinuesa/csvporter/internal/model"
)

func TestBitwardenFormat_Interface(t *testing.T) {
	f := NewBitwardenFormat()
	assert.Equal(t, "bitwarden", f.Name())
	assert.NotEmpty(t, f.Description())
	assert.Equal(t, ".csv", f.Extension())
	assert.Equal(t, ReadWrite, f.Mode())
}

func TestBitwardenFormat_Read(t *testing.T) {
	path := writeSource(t, "bitwarden.csv",
		"folder,favorite,type,name,notes,fields,reprompt,login_uri,login_username,login_password,login_totp\n"+
			"Work,1,login,GitHub,my notes,,0,https://github.com,bob@example.com,pw,JBSWY3DPEHPK3PXP\n")

	records, err := NewBitwardenFormat().Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, model.Record{
		Name:     "GitHub",
		URL:      "https://github.com",
		Username: "bob@example.com",
		Password: "pw",
		Note:     "my notes",
		TOTP:     "JBSWY3DPEHPK3PXP",
		Vault:    "Work",
	}, records[0], "email is never inferred for Bitwarden")
}

func TestBitwardenFormat_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []model.Record{
		{Name: "GitHub", URL: "https://github.com", Username: "bob", Email: "bob@example.com", Password: "pw", Note: "n", TOTP: "T", Vault: "Work"},
		{Name: "Empty"},
	}

	n, err := NewBitwardenFormat().Write(path, records, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, "folder,favorite,type,name,notes,fields,reprompt,login_uri,login_username,login_password,login_totp", lines[0])
	assert.Equal(t, "Work,0,login,GitHub,n,,,https://github.com,bob,pw,T", lines[1])
	assert.Equal(t, ",0,login,Empty,,,,,,,", lines[2])
}

func TestBitwardenFormat_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	in := []model.Record{
		{Name: "A, with comma", URL: "u", Username: "user", Password: `p"q`, Note: "multi\nline", TOTP: "t", Vault: "v"},
	}

	_, err := NewBitwardenFormat().Write(path, in, false)
	require.NoError(t, err)

	out, err := NewBitwardenFormat().Read(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestBitwardenFormat_WriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	n, err := NewBitwardenFormat().Write(path, nil, false)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, readLines(t, path), 1)
}
