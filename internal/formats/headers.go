package formats

import "strings"

// FindHeader returns the first entry of headers equal to canonical, ignoring
// case and surrounding whitespace. No partial or fuzzy matching is done.
func FindHeader(canonical string, headers []string) (string, bool) {
	i := findHeaderIndex(canonical, headers)
	if i < 0 {
		return "", false
	}
	return headers[i], true
}

func findHeaderIndex(canonical string, headers []string) int {
	want := strings.ToLower(strings.TrimSpace(canonical))
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// HeaderMapping resolves a vendor's canonical column names against the header
// row of one file. It is built once per file and never stored.
type HeaderMapping struct {
	canonical []string
	headers   []string
	index     map[string]int
}

// NewHeaderMapping looks up every canonical name in headers.
func NewHeaderMapping(headers []string, canonical ...string) *HeaderMapping {
	m := &HeaderMapping{
		canonical: canonical,
		headers:   headers,
		index:     make(map[string]int, len(canonical)),
	}
	for _, name := range canonical {
		m.index[name] = findHeaderIndex(name, headers)
	}
	return m
}

// Canonical returns the canonical names in the order they were requested.
func (m *HeaderMapping) Canonical() []string {
	return m.canonical
}

// Column returns the actual header found for canonical.
func (m *HeaderMapping) Column(canonical string) (string, bool) {
	i := m.Index(canonical)
	if i < 0 {
		return "", false
	}
	return m.headers[i], true
}

// Has reports whether canonical was found in the header row.
func (m *HeaderMapping) Has(canonical string) bool {
	return m.Index(canonical) >= 0
}

// Index returns the column position of canonical, or -1 if it was not found.
func (m *HeaderMapping) Index(canonical string) int {
	i, ok := m.index[canonical]
	if !ok {
		return -1
	}
	return i
}

// Found returns the canonical names present in the header row.
func (m *HeaderMapping) Found() []string {
	var found []string
	for _, name := range m.canonical {
		if m.Has(name) {
			found = append(found, name)
		}
	}
	return found
}

// Missing returns the canonical names absent from the header row.
func (m *HeaderMapping) Missing() []string {
	var missing []string
	for _, name := range m.canonical {
		if !m.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Value returns the trimmed value of canonical in row. Unmapped columns and
// rows shorter than the header yield "".
func (m *HeaderMapping) Value(row []string, canonical string) string {
	i := m.Index(canonical)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
