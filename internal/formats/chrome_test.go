package formats

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvinuesa/csvporter/internal/model"
)

func TestChromeFormat_Interface(t *testing.T) {
	f := NewChromeFormat()
	assert.Equal(t, "chrome", f.Name())
	assert.NotEmpty(t, f.Description())
	assert.Equal(t, ".csv", f.Extension())
	assert.Equal(t, ReadWrite, f.Mode())
}

func TestChromeFormat_Read(t *testing.T) {
	t.Run("with note column", func(t *testing.T) {
		path := writeSource(t, "chrome.csv",
			"name,url,username,password,note\n"+
				"example.com,https://example.com/login,user@example.com,pw,remember me\n")

		records, err := NewChromeFormat().Read(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, model.Record{
			Name:     "example.com",
			URL:      "https://example.com/login",
			Username: "user@example.com",
			Password: "pw",
			Note:     "remember me",
		}, records[0])
	})

	t.Run("older export without note", func(t *testing.T) {
		path := writeSource(t, "chrome.csv", "name,url,username,password\nsite,https://site.test,u,p\n")

		records, err := NewChromeFormat().Read(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Note)
		assert.Equal(t, "p", records[0].Password)
	})
}

func TestChromeFormat_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrome.csv")
	records := []model.Record{
		{Name: "Site", URL: "https://site.test", Username: "bob", Email: "bob@site.test", Password: "pw", TOTP: "dropped", Vault: "dropped"},
		{Name: "Mail", Email: "alice@example.com", Password: "pw2"},
	}

	n, err := NewChromeFormat().Write(path, records, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, "name,url,username,password,note", lines[0])
	assert.Equal(t, "Site,https://site.test,bob,pw,", lines[1])
	assert.Equal(t, "Mail,,alice@example.com,pw2,", lines[2])
}
