package formats

import (
	"github.com/nvinuesa/csvporter/internal/model"
)

// ProtonColumns returns the Proton Pass CSV header. Column names are the
// lowercase record field names in canonical order.
func ProtonColumns() []string {
	fields := model.Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.String()
	}
	return cols
}

// ProtonFormat reads and writes Proton Pass CSV files.
type ProtonFormat struct{}

// NewProtonFormat creates a new Proton Pass CSV adapter.
func NewProtonFormat() *ProtonFormat {
	return &ProtonFormat{}
}

// Name returns the unique identifier for this format.
func (f *ProtonFormat) Name() string {
	return Proton
}

// Description returns a human-readable description.
func (f *ProtonFormat) Description() string {
	return "Proton Pass CSV import/export"
}

// Extension returns the file extension of Proton Pass files.
func (f *ProtonFormat) Extension() string {
	return ".csv"
}

// Mode returns ReadWrite.
func (f *ProtonFormat) Mode() Mode {
	return ReadWrite
}

// Columns returns the header names this adapter reads.
func (f *ProtonFormat) Columns() []string {
	return ProtonColumns()
}

// Read parses a Proton Pass CSV file.
func (f *ProtonFormat) Read(path string) ([]model.Record, error) {
	table, err := ReadTable(f.Name(), path)
	if err != nil {
		return nil, err
	}

	m := NewHeaderMapping(table.Header, ProtonColumns()...)

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, model.Record{
			Name:     m.Value(row, model.FieldName.String()),
			URL:      m.Value(row, model.FieldURL.String()),
			Email:    m.Value(row, model.FieldEmail.String()),
			Username: m.Value(row, model.FieldUsername.String()),
			Password: m.Value(row, model.FieldPassword.String()),
			Note:     m.Value(row, model.FieldNote.String()),
			TOTP:     m.Value(row, model.FieldTOTP.String()),
			Vault:    m.Value(row, model.FieldVault.String()),
		})
	}
	return records, nil
}

// Write creates a Proton Pass CSV file with every record field.
func (f *ProtonFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	fields := model.Fields()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = r.Get(field)
		}
		rows = append(rows, row)
	}

	if err := writeTable(path, ProtonColumns(), rows, overwrite); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Ensure ProtonFormat implements Format interface
var _ Format = (*ProtonFormat)(nil)
var _ Tabular = (*ProtonFormat)(nil)
