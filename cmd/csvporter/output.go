package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nvinuesa/csvporter/internal/convert"
	"github.com/nvinuesa/csvporter/internal/formats"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var denied *formats.ErrPermissionDenied
	switch {
	case formats.IsOutputExists(err):
		return exitOutputExist
	case formats.IsUnknownFormat(err),
		formats.IsNotFound(err),
		convert.IsNoHeaders(err):
		return exitBadInput
	case errors.As(err, &denied) && denied.Op != "write":
		return exitBadInput
	default:
		return exitFailure
	}
}

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
	if formats.IsOutputExists(err) {
		fmt.Fprintln(w, "Use --force to overwrite.")
	}
}

func printWarning(w io.Writer, msg string) {
	warningColor.Fprintf(w, "Warning: %s\n", msg)
}

// logf writes an informational line unless --quiet is set.
func logf(w io.Writer, format string, args ...any) {
	if rootFlags.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}
