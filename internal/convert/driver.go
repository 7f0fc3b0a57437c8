// Package convert drives conversions between registered formats.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nvinuesa/csvporter/internal/formats"
	"github.com/nvinuesa/csvporter/internal/model"
	"github.com/nvinuesa/csvporter/internal/security"
)

// Options configures a generic conversion.
type Options struct {
	// Source is the input file path.
	Source string
	// From and To are registry format names.
	From string
	To   string
	// Out is the output path. Empty means DefaultOutputPath.
	Out string
	// Overwrite allows replacing an existing output file.
	Overwrite bool
	// Open carries credentials for encrypted sources.
	Open formats.OpenOptions
}

// Result describes a finished conversion.
type Result struct {
	Count int
	From  string
	To    string
	Out   string
	// Warnings lists conditions that did not stop the conversion but likely
	// produced an unusable file.
	Warnings []string
}

// WarnNoEntries is reported when the source has no data rows.
const WarnNoEntries = "source contains no entries: output has only a header row"

// WarnNoColumns is reported when none of the source adapter's columns appear
// in the header row.
func WarnNoColumns(format string) string {
	return fmt.Sprintf("no %s columns found in the source header: every output entry will be empty", format)
}

// DefaultOutputPath derives the output path from the source path:
// "<source without extension>_<format><extension>".
func DefaultOutputPath(source string, target formats.Format) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	return base + "_" + target.Name() + target.Extension()
}

// Convert reads opts.Source with the From adapter and writes every record
// with the To adapter. Both names are resolved before any file is touched.
func Convert(opts Options) (Result, error) {
	registry := formats.NewRegistry(opts.Open)

	src, err := registry.Reader(opts.From)
	if err != nil {
		return Result{}, err
	}
	dst, err := registry.Writer(opts.To)
	if err != nil {
		return Result{}, err
	}

	out := opts.Out
	if out == "" {
		out = DefaultOutputPath(opts.Source, dst)
	}

	if err := checkPaths(opts.Source, out, opts.Overwrite); err != nil {
		return Result{}, err
	}

	records, err := src.Read(opts.Source)
	if err != nil {
		return Result{}, err
	}

	warnings, err := sourceWarnings(src, opts.Source, records)
	if err != nil {
		return Result{}, err
	}

	count, err := dst.Write(out, records, opts.Overwrite)
	if err != nil {
		return Result{}, err
	}

	return Result{Count: count, From: src.Name(), To: dst.Name(), Out: out, Warnings: warnings}, nil
}

// sourceWarnings inspects what was read. Header checks only apply to CSV
// sources.
func sourceWarnings(src formats.Format, source string, records []model.Record) ([]string, error) {
	if len(records) == 0 {
		return []string{WarnNoEntries}, nil
	}

	tabular, ok := src.(formats.Tabular)
	if !ok {
		return nil, nil
	}
	header, err := formats.ReadHeader(src.Name(), source)
	if err != nil {
		return nil, err
	}
	if len(formats.NewHeaderMapping(header, tabular.Columns()...).Found()) == 0 {
		return []string{WarnNoColumns(src.Name())}, nil
	}
	return nil, nil
}

// checkPaths fails fast on a missing source or an existing output, before any
// password prompt or parsing happens. Writers still create the output
// exclusively, so a file appearing later is caught there.
func checkPaths(source, out string, overwrite bool) error {
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &formats.ErrFileNotFound{Path: source}
		}
		return &formats.ErrPermissionDenied{Path: source, Op: "stat", Err: err}
	}

	if err := security.ValidateDistinctPaths(source, out); err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(out); err == nil {
			return &formats.ErrOutputExists{Path: out}
		}
	}
	return nil
}
