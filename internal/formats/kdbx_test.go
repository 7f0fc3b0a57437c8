package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobischo/gokeepasslib/v3"
	"github.com/tobischo/gokeepasslib/v3/wrappers"
)

const testKDBXPassword = "testpassword123"

func mkValue(key, value string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key:   key,
		Value: gokeepasslib.V{Content: value},
	}
}

func mkProtectedValue(key, value string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key: key,
		Value: gokeepasslib.V{
			Content:   value,
			Protected: wrappers.NewBoolWrapper(true),
		},
	}
}

func mkEntry(values ...gokeepasslib.ValueData) gokeepasslib.Entry {
	entry := gokeepasslib.NewEntry()
	entry.Values = append(entry.Values, values...)
	return entry
}

// saveTestDB encodes db into a temp dir and returns the file path.
func saveTestDB(t *testing.T, db *gokeepasslib.Database) string {
	t.Helper()

	db.Content.Meta.DatabaseName = "Test Database"
	db.Content.Meta.DatabaseNameChanged = &wrappers.TimeWrapper{Time: time.Now()}

	require.NoError(t, db.LockProtectedEntries())

	path := filepath.Join(t.TempDir(), "test.kdbx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, gokeepasslib.NewEncoder(f).Encode(db))
	return path
}

// createTestKDBX builds a database with a nested group layout:
//
//	Root: Mail, Work/Servers: Server Login
func createTestKDBX(t *testing.T, creds *gokeepasslib.DBCredentials) string {
	t.Helper()

	db := gokeepasslib.NewDatabase()
	db.Credentials = creds

	root := gokeepasslib.NewGroup()
	root.Name = "Root"
	root.Entries = append(root.Entries, mkEntry(
		mkValue("Title", ""),
		mkValue("UserName", "alice@example.com"),
		mkProtectedValue("Password", "mailpass"),
		mkValue("URL", "https://mail.example.com"),
		mkValue("Notes", "personal"),
		mkValue("otp", "otpauth://totp/Mail:alice?secret=JBSWY3DPEHPK3PXP"),
	))

	servers := gokeepasslib.NewGroup()
	servers.Name = "Servers"
	servers.Entries = append(servers.Entries, mkEntry(
		mkValue("Title", "Server Login"),
		mkValue("UserName", "admin"),
		mkProtectedValue("Password", "serverpass"),
	))

	work := gokeepasslib.NewGroup()
	work.Name = "Work"
	work.Groups = append(work.Groups, servers)
	root.Groups = append(root.Groups, work)

	db.Content.Root.Groups = []gokeepasslib.Group{root}

	return saveTestDB(t, db)
}

func TestKDBXFormat_Interface(t *testing.T) {
	f := NewKDBXFormat(OpenOptions{})
	assert.Equal(t, "kdbx", f.Name())
	assert.NotEmpty(t, f.Description())
	assert.Equal(t, ".kdbx", f.Extension())
	assert.Equal(t, ReadOnly, f.Mode())
}

func TestKDBXFormat_Read(t *testing.T) {
	path := createTestKDBX(t, gokeepasslib.NewPasswordCredentials(testKDBXPassword))

	records, err := NewKDBXFormat(OpenOptions{Password: testKDBXPassword}).Read(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	mail := records[0]
	assert.Equal(t, "alice@example.com", mail.Name, "empty title falls back to username")
	assert.Equal(t, "alice@example.com", mail.Email)
	assert.Equal(t, "mailpass", mail.Password)
	assert.Equal(t, "https://mail.example.com", mail.URL)
	assert.Equal(t, "personal", mail.Note)
	assert.Equal(t, "otpauth://totp/Mail:alice?secret=JBSWY3DPEHPK3PXP", mail.TOTP)
	assert.Equal(t, "Root", mail.Vault)

	server := records[1]
	assert.Equal(t, "Server Login", server.Name)
	assert.Equal(t, "admin", server.Username)
	assert.Empty(t, server.Email)
	assert.Equal(t, "serverpass", server.Password)
	assert.Equal(t, "Root/Work/Servers", server.Vault)
}

func TestKDBXFormat_PasswordPrompt(t *testing.T) {
	path := createTestKDBX(t, gokeepasslib.NewPasswordCredentials(testKDBXPassword))

	t.Run("prompt used when no password", func(t *testing.T) {
		var prompted string
		f := NewKDBXFormat(OpenOptions{PasswordFunc: func(prompt string) (string, error) {
			prompted = prompt
			return testKDBXPassword, nil
		}})

		records, err := f.Read(path)
		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Contains(t, prompted, path)
	})

	t.Run("prompt error is returned", func(t *testing.T) {
		promptErr := errors.New("no terminal")
		f := NewKDBXFormat(OpenOptions{PasswordFunc: func(string) (string, error) {
			return "", promptErr
		}})

		_, err := f.Read(path)
		assert.ErrorIs(t, err, promptErr)
	})
}

func TestKDBXFormat_WrongPassword(t *testing.T) {
	path := createTestKDBX(t, gokeepasslib.NewPasswordCredentials(testKDBXPassword))

	_, err := NewKDBXFormat(OpenOptions{Password: "wrong"}).Read(path)
	require.Error(t, err)
	assert.True(t, IsAuthError(err) || IsMalformedInput(err), "got %v", err)
}

func TestKDBXFormat_KeyFile(t *testing.T) {
	keyData := []byte("0123456789abcdef0123456789abcdef")
	keyPath := filepath.Join(t.TempDir(), "test.key")
	require.NoError(t, os.WriteFile(keyPath, keyData, 0o600))

	creds, err := gokeepasslib.NewPasswordAndKeyDataCredentials(testKDBXPassword, keyData)
	require.NoError(t, err)
	path := createTestKDBX(t, creds)

	t.Run("password and key file", func(t *testing.T) {
		records, err := NewKDBXFormat(OpenOptions{Password: testKDBXPassword, KeyFilePath: keyPath}).Read(path)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("missing key file", func(t *testing.T) {
		_, err := NewKDBXFormat(OpenOptions{Password: testKDBXPassword, KeyFilePath: keyPath + ".missing"}).Read(path)
		assert.True(t, IsNotFound(err), "got %v", err)
	})
}

func TestKDBXFormat_ReadErrors(t *testing.T) {
	f := NewKDBXFormat(OpenOptions{Password: testKDBXPassword})

	t.Run("missing file", func(t *testing.T) {
		_, err := f.Read(filepath.Join(t.TempDir(), "missing.kdbx"))
		assert.True(t, IsNotFound(err), "got %v", err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := f.Read(t.TempDir())
		assert.True(t, IsPermissionDenied(err), "got %v", err)
	})

	t.Run("not a database", func(t *testing.T) {
		path := writeSource(t, "fake.kdbx", "this is not a keepass file")
		_, err := f.Read(path)
		require.Error(t, err)
		assert.True(t, IsMalformedInput(err) || IsAuthError(err), "got %v", err)
	})
}

func TestKDBXFormat_Write(t *testing.T) {
	_, err := NewKDBXFormat(OpenOptions{}).Write(filepath.Join(t.TempDir(), "out.kdbx"), nil, false)
	assert.True(t, IsUnsupported(err))
}

func TestEntryTOTP(t *testing.T) {
	tests := []struct {
		name  string
		entry gokeepasslib.Entry
		want  string
	}{
		{"otp", mkEntry(mkValue("otp", "seed1")), "seed1"},
		{"TOTP Seed", mkEntry(mkValue("TOTP Seed", "seed2")), "seed2"},
		{"empty value skipped", mkEntry(mkValue("otp", ""), mkValue("totp", "seed3")), "seed3"},
		{"none", mkEntry(mkValue("Title", "x")), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entryTOTP(tt.entry))
		})
	}
}
