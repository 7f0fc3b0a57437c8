package convert

import (
	"strings"

	"github.com/nvinuesa/csvporter/internal/formats"
	"github.com/nvinuesa/csvporter/internal/model"
	"github.com/nvinuesa/csvporter/internal/security"
)

// DefaultPreviewRows is the number of sample rows Preview shows by default.
const DefaultPreviewRows = 5

// Advisory warnings raised while mapping KeePassXC headers.
const (
	WarnNoNameColumns     = "neither Title nor Username found in source headers: output will miss 'name' and 'username'"
	WarnNoPasswordColumns = "Password column not found: output will have empty password fields"
)

// KeePassToProtonOptions configures the specialized KeePassXC to Proton Pass
// conversion.
type KeePassToProtonOptions struct {
	Source    string
	Out       string // Empty means DefaultOutputPath
	Overwrite bool
}

// Report describes what the specialized conversion detected and produced.
type Report struct {
	// Headers is the source header row, trimmed.
	Headers []string
	// Mapping resolves the KeePassXC columns the conversion uses.
	Mapping *formats.HeaderMapping
	// Warnings are advisory and never abort the conversion.
	Warnings []string
	// Count is the number of data rows converted.
	Count int
	// Out is the path written.
	Out string
}

// KeePassToProton converts a KeePassXC CSV export into a Proton Pass CSV
// file, reporting the header mapping it used and any missing columns.
func KeePassToProton(opts KeePassToProtonOptions) (Report, error) {
	proton := formats.NewProtonFormat()

	out := opts.Out
	if out == "" {
		out = DefaultOutputPath(opts.Source, proton)
	}

	if err := checkPaths(opts.Source, out, opts.Overwrite); err != nil {
		return Report{}, err
	}

	table, err := formats.ReadTable(formats.KeePassXC, opts.Source)
	if err != nil {
		return Report{}, err
	}
	if len(table.Header) == 0 {
		return Report{}, &ErrNoHeaders{Path: opts.Source}
	}

	mapping := formats.NewHeaderMapping(table.Header, formats.KeePassXCMappedColumns()...)

	report := Report{
		Headers:  trimAll(table.Header),
		Mapping:  mapping,
		Warnings: mappingWarnings(mapping),
		Out:      out,
	}

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, formats.KeePassXCRecord(mapping, row))
	}

	count, err := proton.Write(out, records, opts.Overwrite)
	if err != nil {
		return report, err
	}
	report.Count = count

	return report, nil
}

func mappingWarnings(m *formats.HeaderMapping) []string {
	var warnings []string
	if !m.Has(formats.KeePassColTitle) && !m.Has(formats.KeePassColUsername) {
		warnings = append(warnings, WarnNoNameColumns)
	}
	if !m.Has(formats.KeePassColPassword) {
		warnings = append(warnings, WarnNoPasswordColumns)
	}
	return warnings
}

// PreviewField is one displayed cell of a preview row.
type PreviewField struct {
	Column string // Header as found in the source file
	Value  string // Masked for secret columns
}

// PreviewRow holds the KeePassXC columns present in one source row.
type PreviewRow []PreviewField

// Preview returns up to n sample rows of a KeePassXC export, restricted to the
// KeePassXC columns present in the file. Password and TOTP values are
// replaced by their length. n <= 0 means DefaultPreviewRows.
func Preview(path string, n int) ([]PreviewRow, error) {
	if n <= 0 {
		n = DefaultPreviewRows
	}

	table, err := formats.ReadTable(formats.KeePassXC, path)
	if err != nil {
		return nil, err
	}

	mapping := formats.NewHeaderMapping(table.Header, formats.KeePassXCColumns()...)

	rows := make([]PreviewRow, 0, min(n, len(table.Rows)))
	for _, raw := range table.Rows {
		if len(rows) == n {
			break
		}

		var row PreviewRow
		for _, canonical := range mapping.Found() {
			column, _ := mapping.Column(canonical)

			var value string
			if i := mapping.Index(canonical); i < len(raw) {
				value = raw[i]
			}
			if field, ok := formats.KeePassXCField(canonical); ok && field.IsSecret() {
				value = security.Mask(value)
			}

			row = append(row, PreviewField{Column: column, Value: value})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
