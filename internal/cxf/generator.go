// Package cxf builds FIDO Credential Exchange Format documents from records.
package cxf

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvinuesa/go-cxf"

	"github.com/nvinuesa/csvporter/internal/model"
	"github.com/nvinuesa/csvporter/internal/security"
)

// Generator errors.
var (
	ErrMissingRpID     = errors.New("exporter RP ID is required")
	ErrMissingExporter = errors.New("exporter name is required")
)

// GeneratorOptions configures CXF generation.
type GeneratorOptions struct {
	// ExporterRpID is the FIDO RP ID of the exporting application.
	ExporterRpID string
	// ExporterName is the human-readable display name for the exporter.
	ExporterName string
	// AccountUsername is the username for the account.
	AccountUsername string
	// AccountEmail is the email address for the account.
	AccountEmail string
}

// DefaultOptions returns GeneratorOptions with sensible defaults.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		ExporterRpID: "csvporter.local",
		ExporterName: "csvporter",
	}
}

// Generate creates a CXF Header holding one account with one item per record,
// in record order. Vaults become collections.
func Generate(records []model.Record, opts GeneratorOptions) (*cxf.Header, error) {
	if opts.ExporterRpID == "" {
		return nil, ErrMissingRpID
	}
	if err := security.ValidateRPID(opts.ExporterRpID); err != nil {
		return nil, fmt.Errorf("invalid exporter RP ID: %w", err)
	}
	if opts.ExporterName == "" {
		return nil, ErrMissingExporter
	}

	items := make([]cxf.Item, 0, len(records))
	for i := range records {
		item, err := mapRecordToItem(&records[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	account := cxf.Account{
		ID:          generateBase64URLID(),
		Username:    opts.AccountUsername,
		Email:       opts.AccountEmail,
		Collections: BuildCollections(records, items),
		Items:       items,
	}

	header := &cxf.Header{
		Version: cxf.Version{
			Major: cxf.VersionMajor,
			Minor: cxf.VersionMinor,
		},
		ExporterRpId:        opts.ExporterRpID,
		ExporterDisplayName: opts.ExporterName,
		Timestamp:           uint64(time.Now().Unix()),
		Accounts:            []cxf.Account{account},
	}

	return header, nil
}

// generateBase64URLID generates a base64url-encoded UUID.
func generateBase64URLID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
