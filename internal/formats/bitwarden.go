package formats

import (
	"github.com/nvinuesa/csvporter/internal/model"
)

// Bitwarden CSV header columns.
const (
	bitwardenColFolder        = "folder"
	bitwardenColFavorite      = "favorite"
	bitwardenColType          = "type"
	bitwardenColName          = "name"
	bitwardenColNotes         = "notes"
	bitwardenColFields        = "fields"
	bitwardenColReprompt      = "reprompt"
	bitwardenColLoginURI      = "login_uri"
	bitwardenColLoginUsername = "login_username"
	bitwardenColLoginPassword = "login_password"
	bitwardenColLoginTOTP     = "login_totp"
)

// Values Bitwarden requires for columns the record model has no concept of.
const (
	bitwardenNotFavorite = "0"
	bitwardenTypeLogin   = "login"
)

// BitwardenColumns returns the Bitwarden CSV header in import order.
func BitwardenColumns() []string {
	return []string{
		bitwardenColFolder,
		bitwardenColFavorite,
		bitwardenColType,
		bitwardenColName,
		bitwardenColNotes,
		bitwardenColFields,
		bitwardenColReprompt,
		bitwardenColLoginURI,
		bitwardenColLoginUsername,
		bitwardenColLoginPassword,
		bitwardenColLoginTOTP,
	}
}

// BitwardenFormat reads and writes Bitwarden CSV exports.
type BitwardenFormat struct{}

// NewBitwardenFormat creates a new Bitwarden CSV adapter.
func NewBitwardenFormat() *BitwardenFormat {
	return &BitwardenFormat{}
}

// Name returns the unique identifier for this format.
func (f *BitwardenFormat) Name() string {
	return Bitwarden
}

// Description returns a human-readable description.
func (f *BitwardenFormat) Description() string {
	return "Bitwarden CSV export/import"
}

// Extension returns the file extension of Bitwarden exports.
func (f *BitwardenFormat) Extension() string {
	return ".csv"
}

// Mode returns ReadWrite.
func (f *BitwardenFormat) Mode() Mode {
	return ReadWrite
}

// Columns returns the header names this adapter reads.
func (f *BitwardenFormat) Columns() []string {
	return BitwardenColumns()
}

// Read parses a Bitwarden CSV export. Bitwarden has no separate email
// column, so Email is always empty.
func (f *BitwardenFormat) Read(path string) ([]model.Record, error) {
	table, err := ReadTable(f.Name(), path)
	if err != nil {
		return nil, err
	}

	m := NewHeaderMapping(table.Header, BitwardenColumns()...)

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, model.Record{
			Name:     m.Value(row, bitwardenColName),
			URL:      m.Value(row, bitwardenColLoginURI),
			Username: m.Value(row, bitwardenColLoginUsername),
			Password: m.Value(row, bitwardenColLoginPassword),
			Note:     m.Value(row, bitwardenColNotes),
			TOTP:     m.Value(row, bitwardenColLoginTOTP),
			Vault:    m.Value(row, bitwardenColFolder),
		})
	}
	return records, nil
}

// Write creates a Bitwarden CSV import file. Every record becomes a login item
// that is not a favorite and has no custom fields.
func (f *BitwardenFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Vault,
			bitwardenNotFavorite,
			bitwardenTypeLogin,
			r.Name,
			r.Note,
			"", // fields
			"", // reprompt
			r.URL,
			r.Username,
			r.Password,
			r.TOTP,
		})
	}

	if err := writeTable(path, BitwardenColumns(), rows, overwrite); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Ensure BitwardenFormat implements Format interface
var _ Format = (*BitwardenFormat)(nil)
var _ Tabular = (*BitwardenFormat)(nil)
