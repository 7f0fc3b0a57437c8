// Package formats provides adapters between vendor password-manager exports
// and the normalized record model.
package formats

import (
	"github.com/nvinuesa/csvporter/internal/model"
)

// Mode describes which directions a format supports.
type Mode int

const (
	// ReadWrite formats can be used as source and target.
	ReadWrite Mode = iota
	// ReadOnly formats can only be used as a conversion source.
	ReadOnly
	// WriteOnly formats can only be used as a conversion target.
	WriteOnly
)

// String returns a short label for the mode.
func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "read"
	case WriteOnly:
		return "write"
	default:
		return "read/write"
	}
}

// CanRead reports whether formats in this mode implement Read.
func (m Mode) CanRead() bool { return m != WriteOnly }

// CanWrite reports whether formats in this mode implement Write.
func (m Mode) CanWrite() bool { return m != ReadOnly }

// Format converts between one vendor export layout and normalized records.
type Format interface {
	// Name returns the identifier used on the command line (e.g., "bitwarden").
	Name() string

	// Description returns a human-readable description of the format.
	Description() string

	// Extension returns the file extension written by this format, including the dot.
	Extension() string

	// Mode returns the directions this format supports.
	Mode() Mode

	// Read parses the file at path into records, one per data row, in file order.
	Read(path string) ([]model.Record, error)

	// Write creates the file at path from records and returns the number of
	// records written. An existing file is only replaced when overwrite is true.
	Write(path string, records []model.Record, overwrite bool) (int, error)
}

// OpenOptions provides credentials for encrypted sources.
type OpenOptions struct {
	// Password for encrypted sources (KeePass databases).
	Password string

	// KeyFilePath for sources that support key files (KeePass).
	KeyFilePath string

	// PasswordFunc is called when a password is needed and Password is empty.
	// It receives a prompt string and should return the password or an error.
	PasswordFunc func(prompt string) (string, error)
}

// Tabular is implemented by CSV sources. Columns lists the header names the
// adapter maps, matched case-insensitively.
type Tabular interface {
	Columns() []string
}
