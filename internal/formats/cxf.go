package formats

import (
	"encoding/json"
	"fmt"

	"github.com/nvinuesa/csvporter/internal/cxf"
	"github.com/nvinuesa/csvporter/internal/model"
)

// CXFOptions configures the exporter identity written into CXF documents.
type CXFOptions = cxf.GeneratorOptions

// DefaultCXFOptions returns the exporter identity used by the default registry.
func DefaultCXFOptions() CXFOptions {
	return cxf.DefaultOptions()
}

// CXFFormat writes records as an unencrypted FIDO Credential Exchange Format
// JSON document.
type CXFFormat struct {
	opts CXFOptions
}

// NewCXFFormat creates a CXF adapter.
func NewCXFFormat(opts CXFOptions) *CXFFormat {
	return &CXFFormat{opts: opts}
}

// Name returns the unique identifier for this format.
func (f *CXFFormat) Name() string {
	return CXF
}

// Description returns a human-readable description.
func (f *CXFFormat) Description() string {
	return "FIDO Credential Exchange Format (unencrypted JSON)"
}

// Extension returns the file extension of CXF documents.
func (f *CXFFormat) Extension() string {
	return ".json"
}

// Mode returns WriteOnly.
func (f *CXFFormat) Mode() Mode {
	return WriteOnly
}

// Read is not supported for CXF.
func (f *CXFFormat) Read(path string) ([]model.Record, error) {
	return nil, &ErrUnsupportedFeature{Format: f.Name(), Feature: "read"}
}

// Write creates a CXF document with one item per record.
func (f *CXFFormat) Write(path string, records []model.Record, overwrite bool) (int, error) {
	header, err := cxf.Generate(records, f.opts)
	if err != nil {
		return 0, fmt.Errorf("failed to generate CXF: %w", err)
	}

	data, err := json.MarshalIndent(header, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode CXF: %w", err)
	}

	if err := writeFile(path, data, overwrite); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Ensure CXFFormat implements Format interface
var _ Format = (*CXFFormat)(nil)
