package formats

import (
	"github.com/nvinuesa/csvporter/internal/model"
)

// Chrome CSV header columns.
const (
	chromeColName     = "name"
	chromeColURL      = "url"
	chromeColUsername = "username"
	chromeColPassword = "password"
	chromeColNote     = "note"
)

// ChromeColumns returns the Chrome password CSV header.
func ChromeColumns() []string {
	return []string{chromeColName, chromeColURL, chromeColUsername, chromeColPassword, chromeColNote}
}

// ChromeFormat reads and writes Google Chrome password CSV files.
type ChromeFormat struct{}

// NewChromeFormat creates a new Chrome CSV adapter.
func NewChromeFormat() *ChromeFormat {
	return &ChromeFormat{}
}

// Name returns the unique identifier for this format.
func (f *ChromeFormat) Name() string {
	return Chrome
}

// Description returns a human-readable description.
func (f *ChromeFormat) Description() string {
	return "Google Chrome password export/import (CSV)"
}

// Extension returns the file extension of Chrome exports.
func (f *ChromeFormat) Extension() string {
	return ".csv"
}

// Mode returns ReadWrite.
func (f *ChromeFormat) Mode() Mode {
	return ReadWrite
}

// Columns returns the header names this adapter reads.
func (f *ChromeFormat) Columns() []string {
	return ChromeColumns()
}

// Read parses a Chrome CSV export. Older exports lack the note column.
func (f *ChromeFormat) Read(path string) ([]model.Record, error) {
	table, err := ReadTable(f.Name(), path)
	if err != nil {
		return nil, err
	}

	m := NewHeaderMapping(table.Header, ChromeColumns()...)

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, model.Record{
			Name:     m.Value(row, chromeColName),
			URL:      m.Value(row, chromeColURL),
			Username: m.Value(row, chromeColUsername),
			Password: m.Value(row, chromeColPassword),
			Note:     m.Value(row, chromeColNote),
		})
	}
	return records, nil
}

// Write creates a Chrome CSV import file. Chrome has a single login column,
// so the email is used when the username is empty. Vault and TOTP are dropped.
func (f *ChromeFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		username := r.Username
		if username == "" {
			username = r.Email
		}
		rows = append(rows, []string{r.Name, r.URL, username, r.Password, r.Note})
	}

	if err := writeTable(path, ChromeColumns(), rows, overwrite); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Ensure ChromeFormat implements Format interface
var _ Format = (*ChromeFormat)(nil)
var _ Tabular = (*ChromeFormat)(nil)
