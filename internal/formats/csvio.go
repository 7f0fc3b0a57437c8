package formats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errNotAFile = errors.New("path is a directory, not a file")

// Table is a fully materialized CSV document: the header row and every data row.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses the CSV file at path. A leading byte-order mark is stripped.
// An empty file yields an empty table; only tokenizer failures are errors.
// format names the adapter in error messages.
//
// Quoted fields must be terminated. A stray quote inside an unquoted field
// (a note such as `5" screen`) is kept literally.
func ReadTable(format, path string) (*Table, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, &ErrMalformedInput{
			Format:  format,
			Path:    path,
			Details: "failed to decode file",
			Err:     err,
		}
	}

	table, err := parseTable(data, false)
	if errors.Is(err, csv.ErrBareQuote) {
		if err = checkQuotesTerminated(data); err == nil {
			table, err = parseTable(data, true)
		}
	}
	if err != nil {
		return nil, &ErrMalformedInput{
			Format:  format,
			Path:    path,
			Details: "failed to parse CSV",
			Err:     err,
		}
	}
	return table, nil
}

// ReadHeader returns the first row of the CSV file at path, or nil for an
// empty file.
func ReadHeader(format, path string) ([]string, error) {
	table, err := ReadTable(format, path)
	if err != nil {
		return nil, err
	}
	return table.Header, nil
}

func parseTable(data []byte, lazyQuotes bool) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // Short rows are padded by the mapping
	reader.LazyQuotes = lazyQuotes

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return &Table{Header: header, Rows: rows}, nil
}

// checkQuotesTerminated reports a quoted field that runs to the end of the
// input. Lazy CSV parsing accepts such a field silently.
func checkQuotesTerminated(data []byte) error {
	line, openLine := 1, 0
	quoted, fieldStart := false, true
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c == '\n' {
			line++
		}
		if quoted {
			if c != '"' {
				continue
			}
			if i+1 < len(data) && data[i+1] == '"' {
				i++
				continue
			}
			if i+1 == len(data) || data[i+1] == ',' || data[i+1] == '\n' || data[i+1] == '\r' {
				quoted = false
			}
			continue
		}
		switch {
		case fieldStart && c == '"':
			quoted, openLine = true, line
			fieldStart = false
		case c == ',' || c == '\n':
			fieldStart = true
		default:
			fieldStart = false
		}
	}
	if quoted {
		return fmt.Errorf("record on line %d: %w", openLine, csv.ErrQuote)
	}
	return nil
}

// openSource opens path for reading and classifies the failure modes.
func openSource(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrFileNotFound{Path: path}
		}
		return nil, &ErrPermissionDenied{Path: path, Op: "stat", Err: err}
	}

	if info.IsDir() {
		return nil, &ErrPermissionDenied{Path: path, Op: "open", Err: errNotAFile}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrFileNotFound{Path: path}
		}
		return nil, &ErrPermissionDenied{Path: path, Op: "open", Err: err}
	}
	return f, nil
}

// writeTable renders header and rows as CSV and stores them at path.
func writeTable(path string, header []string, rows [][]string, overwrite bool) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	// WriteAll flushes
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode CSV rows: %w", err)
	}
	return writeFile(path, buf.Bytes(), overwrite)
}

// writeFile stores data at path in one step: either the whole document lands
// or the destination is left as it was.
//
// Without overwrite the file is created exclusively, so an existing file is
// never touched. With overwrite the data goes to a temporary file in the same
// directory that is then renamed over the destination.
func writeFile(path string, data []byte, overwrite bool) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return &ErrFileNotFound{Path: dir}
	}

	if overwrite {
		if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			return classifyWriteError(path, err)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ErrOutputExists{Path: path}
		}
		return classifyWriteError(path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return classifyWriteError(path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return classifyWriteError(path, err)
	}
	return nil
}

func classifyWriteError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ErrFileNotFound{Path: path}
	case errors.Is(err, fs.ErrPermission):
		return &ErrPermissionDenied{Path: path, Op: "write", Err: err}
	default:
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
}
