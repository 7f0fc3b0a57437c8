package formats

import (
	"net/url"
	"strings"

	"github.com/nvinuesa/csvporter/internal/model"
)

// Firefox CSV header columns consumed by the adapter. The GUID and timestamp
// columns are ignored.
const (
	firefoxColURL       = "url"
	firefoxColUsername  = "username"
	firefoxColPassword  = "password"
	firefoxColHTTPRealm = "httpRealm"
)

// FirefoxFormat reads Firefox password CSV exports.
type FirefoxFormat struct{}

// NewFirefoxFormat creates a new Firefox CSV adapter.
func NewFirefoxFormat() *FirefoxFormat {
	return &FirefoxFormat{}
}

// Name returns the unique identifier for this format.
func (f *FirefoxFormat) Name() string {
	return Firefox
}

// Description returns a human-readable description.
func (f *FirefoxFormat) Description() string {
	return "Mozilla Firefox password export (CSV)"
}

// Extension returns the file extension of Firefox exports.
func (f *FirefoxFormat) Extension() string {
	return ".csv"
}

// Mode returns ReadOnly.
func (f *FirefoxFormat) Mode() Mode {
	return ReadOnly
}

// Columns returns the header names this adapter reads.
func (f *FirefoxFormat) Columns() []string {
	return []string{firefoxColURL, firefoxColUsername, firefoxColPassword, firefoxColHTTPRealm}
}

// Read parses a Firefox CSV export. Firefox entries have no title, so the
// name is the site's host, falling back to the username.
func (f *FirefoxFormat) Read(path string) ([]model.Record, error) {
	table, err := ReadTable(f.Name(), path)
	if err != nil {
		return nil, err
	}

	m := NewHeaderMapping(table.Header, f.Columns()...)

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		rawURL := m.Value(row, firefoxColURL)

		var note string
		if realm := m.Value(row, firefoxColHTTPRealm); realm != "" {
			note = "HTTP Basic Auth Realm: " + realm
		}

		records = append(records, model.FromLogin(
			hostFromURL(rawURL),
			m.Value(row, firefoxColUsername),
			m.Value(row, firefoxColPassword),
			rawURL,
			note,
			"",
			"",
		))
	}
	return records, nil
}

// Write is not supported for Firefox.
func (f *FirefoxFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	return 0, &ErrUnsupportedFeature{Format: f.Name(), Feature: "write"}
}

// hostFromURL extracts the host from a URL for use as a display name.
func hostFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		rawURL = strings.TrimPrefix(rawURL, "http://")
		rawURL = strings.TrimPrefix(rawURL, "https://")
		if idx := strings.Index(rawURL, "/"); idx > 0 {
			return rawURL[:idx]
		}
		return rawURL
	}

	return parsed.Host
}

// Ensure FirefoxFormat implements Format interface
var _ Format = (*FirefoxFormat)(nil)
var _ Tabular = (*FirefoxFormat)(nil)
