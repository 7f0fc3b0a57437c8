package formats

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/tobischo/gokeepasslib/v3"

	"github.com/nvinuesa/csvporter/internal/model"
)

// Entry attribute names KeePass clients use to store a TOTP seed or URI.
var kdbxTOTPKeys = []string{"otp", "totp", "totp seed", "2fa"}

// KDBXFormat reads KeePass 2.x databases directly, so users do not have to go
// through a CSV export first.
//
// gokeepasslib parses the inner XML with encoding/xml, which does not resolve
// external entities.
type KDBXFormat struct {
	opts OpenOptions
}

// NewKDBXFormat creates a KeePass database adapter that unlocks files with opts.
func NewKDBXFormat(opts OpenOptions) *KDBXFormat {
	return &KDBXFormat{opts: opts}
}

// Name returns the unique identifier for this format.
func (f *KDBXFormat) Name() string {
	return KDBX
}

// Description returns a human-readable description.
func (f *KDBXFormat) Description() string {
	return "KeePass 2.x database (.kdbx)"
}

// Extension returns the file extension of KeePass databases.
func (f *KDBXFormat) Extension() string {
	return ".kdbx"
}

// Mode returns ReadOnly.
func (f *KDBXFormat) Mode() Mode {
	return ReadOnly
}

// Read decrypts the database and returns one record per entry. Entries are
// visited group by group in document order; Vault is the "/" joined group path.
func (f *KDBXFormat) Read(path string) ([]model.Record, error) {
	file, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	creds, err := f.credentials(path)
	if err != nil {
		return nil, err
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = creds

	if err := gokeepasslib.NewDecoder(file).Decode(db); err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "password") ||
			strings.Contains(errStr, "credential") ||
			strings.Contains(errStr, "hmac") ||
			strings.Contains(errStr, "integrity") ||
			strings.Contains(errStr, "invalid") {
			return nil, &ErrAuthenticationFailed{
				Format: f.Name(),
				Path:   path,
				Reason: "incorrect password or key file",
				Err:    err,
			}
		}
		return nil, &ErrMalformedInput{
			Format:  f.Name(),
			Path:    path,
			Details: "failed to decode database",
			Err:     err,
		}
	}

	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, &ErrMalformedInput{
			Format:  f.Name(),
			Path:    path,
			Details: "failed to unlock protected entries",
			Err:     err,
		}
	}
	defer db.LockProtectedEntries()

	var records []model.Record
	for _, group := range db.Content.Root.Groups {
		records = appendGroup(records, group, "")
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// credentials builds the database key from the configured password and key file.
func (f *KDBXFormat) credentials(path string) (*gokeepasslib.DBCredentials, error) {
	password := f.opts.Password
	if password == "" && f.opts.PasswordFunc != nil {
		var err error
		password, err = f.opts.PasswordFunc("Enter password for " + path + ": ")
		if err != nil {
			return nil, err
		}
	}

	if f.opts.KeyFilePath == "" {
		return gokeepasslib.NewPasswordCredentials(password), nil
	}

	keyData, err := os.ReadFile(f.opts.KeyFilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrFileNotFound{Path: f.opts.KeyFilePath}
		}
		return nil, &ErrPermissionDenied{Path: f.opts.KeyFilePath, Op: "read", Err: err}
	}

	creds, err := gokeepasslib.NewPasswordAndKeyDataCredentials(password, keyData)
	if err != nil {
		return nil, &ErrMalformedInput{
			Format:  f.Name(),
			Path:    f.opts.KeyFilePath,
			Details: "failed to parse key file",
			Err:     err,
		}
	}
	return creds, nil
}

// Write is not supported for KeePass databases.
func (f *KDBXFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	return 0, &ErrUnsupportedFeature{Format: f.Name(), Feature: "write"}
}

// appendGroup converts the entries of group, then recurses into its subgroups.
func appendGroup(records []model.Record, group gokeepasslib.Group, parentPath string) []model.Record {
	currentPath := group.Name
	if parentPath != "" {
		currentPath = parentPath + "/" + group.Name
	}

	for _, entry := range group.Entries {
		records = append(records, model.FromLogin(
			entry.GetTitle(),
			entry.GetContent("UserName"),
			entry.GetPassword(),
			entry.GetContent("URL"),
			entry.GetContent("Notes"),
			entryTOTP(entry),
			currentPath,
		))
	}

	for _, sub := range group.Groups {
		records = appendGroup(records, sub, currentPath)
	}
	return records
}

// entryTOTP returns the first TOTP-like attribute of entry.
func entryTOTP(entry gokeepasslib.Entry) string {
	for _, value := range entry.Values {
		key := strings.ToLower(strings.TrimSpace(value.Key))
		for _, candidate := range kdbxTOTPKeys {
			if key == candidate && value.Value.Content != "" {
				return value.Value.Content
			}
		}
	}
	return ""
}

// Ensure KDBXFormat implements Format interface
var _ Format = (*KDBXFormat)(nil)
