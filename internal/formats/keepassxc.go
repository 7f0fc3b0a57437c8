package formats

import (
	"github.com/nvinuesa/csvporter/internal/model"
)

// KeePassXC CSV header columns.
const (
	KeePassColGroup        = "Group"
	KeePassColTitle        = "Title"
	KeePassColUsername     = "Username"
	KeePassColPassword     = "Password"
	KeePassColURL          = "URL"
	KeePassColNotes        = "Notes"
	KeePassColTOTP         = "TOTP"
	KeePassColIcon         = "Icon"
	KeePassColLastModified = "Last Modified"
	KeePassColCreated      = "Created"
)

// KeePassXCColumns returns the full header KeePassXC writes, in export order.
func KeePassXCColumns() []string {
	return []string{
		KeePassColGroup,
		KeePassColTitle,
		KeePassColUsername,
		KeePassColPassword,
		KeePassColURL,
		KeePassColNotes,
		KeePassColTOTP,
		KeePassColIcon,
		KeePassColLastModified,
		KeePassColCreated,
	}
}

// KeePassXCMappedColumns returns the columns that carry record data.
// Icon and the timestamps are ignored.
func KeePassXCMappedColumns() []string {
	return []string{
		KeePassColGroup,
		KeePassColTitle,
		KeePassColUsername,
		KeePassColPassword,
		KeePassColURL,
		KeePassColNotes,
		KeePassColTOTP,
	}
}

// keepassFields maps the data-carrying KeePassXC columns to record fields.
var keepassFields = map[string]model.Field{
	KeePassColGroup:    model.FieldVault,
	KeePassColTitle:    model.FieldName,
	KeePassColUsername: model.FieldUsername,
	KeePassColPassword: model.FieldPassword,
	KeePassColURL:      model.FieldURL,
	KeePassColNotes:    model.FieldNote,
	KeePassColTOTP:     model.FieldTOTP,
}

// KeePassXCField returns the record field a KeePassXC column populates.
func KeePassXCField(column string) (model.Field, bool) {
	f, ok := keepassFields[column]
	return f, ok
}

// KeePassXCFormat reads KeePassXC CSV exports.
type KeePassXCFormat struct{}

// NewKeePassXCFormat creates a new KeePassXC CSV adapter.
func NewKeePassXCFormat() *KeePassXCFormat {
	return &KeePassXCFormat{}
}

// Name returns the unique identifier for this format.
func (f *KeePassXCFormat) Name() string {
	return KeePassXC
}

// Description returns a human-readable description.
func (f *KeePassXCFormat) Description() string {
	return "KeePassXC CSV export"
}

// Extension returns the file extension of KeePassXC exports.
func (f *KeePassXCFormat) Extension() string {
	return ".csv"
}

// Mode returns ReadOnly: csvporter never produces KeePassXC files.
func (f *KeePassXCFormat) Mode() Mode {
	return ReadOnly
}

// Columns returns the header names this adapter reads.
func (f *KeePassXCFormat) Columns() []string {
	return KeePassXCMappedColumns()
}

// Read parses a KeePassXC CSV export.
func (f *KeePassXCFormat) Read(path string) ([]model.Record, error) {
	table, err := ReadTable(f.Name(), path)
	if err != nil {
		return nil, err
	}

	mapping := NewHeaderMapping(table.Header, KeePassXCMappedColumns()...)

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, KeePassXCRecord(mapping, row))
	}
	return records, nil
}

// Write is not supported for KeePassXC.
func (f *KeePassXCFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	return 0, &ErrUnsupportedFeature{Format: f.Name(), Feature: "write"}
}

// KeePassXCRecord converts one KeePassXC row using an already built mapping.
// Columns the mapping did not find contribute empty values.
func KeePassXCRecord(m *HeaderMapping, row []string) model.Record {
	return model.FromLogin(
		m.Value(row, KeePassColTitle),
		m.Value(row, KeePassColUsername),
		m.Value(row, KeePassColPassword),
		m.Value(row, KeePassColURL),
		m.Value(row, KeePassColNotes),
		m.Value(row, KeePassColTOTP),
		m.Value(row, KeePassColGroup),
	)
}

// Ensure KeePassXCFormat implements Format interface
var _ Format = (*KeePassXCFormat)(nil)
var _ Tabular = (*KeePassXCFormat)(nil)
