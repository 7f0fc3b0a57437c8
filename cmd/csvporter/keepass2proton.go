package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/csvporter/internal/convert"
	"github.com/nvinuesa/csvporter/internal/formats"
)

var keepassFlags struct {
	source  string
	out     string
	force   bool
	preview bool
}

var keepassCmd = &cobra.Command{
	Use:   "keepass2proton",
	Short: "Convert a KeePassXC CSV export to Proton Pass",
	Long: `Convert a KeePassXC CSV export into a Proton Pass CSV import file.

The detected header row and the column mapping are printed before the
conversion, together with warnings for missing Title, Username or Password
columns. Inspect the output before importing it.

The default output path is <source without extension>_proton.csv.

Examples:
  # Convert with a preview of the first rows (passwords are masked)
  csvporter keepass2proton -s export.csv --preview

  # Write to a specific file, replacing it if present
  csvporter keepass2proton -s export.csv -o proton.csv --force`,
	RunE: runKeePassToProton,
}

func init() {
	keepassCmd.Flags().StringVarP(&keepassFlags.source, "source", "s", "", "KeePassXC CSV export (required)")
	keepassCmd.Flags().StringVarP(&keepassFlags.out, "out", "o", "", "Output file path (default: <source>_proton.csv)")
	keepassCmd.Flags().BoolVar(&keepassFlags.force, "force", false, "Overwrite the output file if it exists")
	keepassCmd.Flags().BoolVar(&keepassFlags.preview, "preview", false, "Show a few source rows with secrets masked")

	keepassCmd.MarkFlagRequired("source")
}

func runKeePassToProton(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	if keepassFlags.preview && !rootFlags.quiet {
		rows, err := convert.Preview(keepassFlags.source, convert.DefaultPreviewRows)
		if err != nil {
			return err
		}
		printPreview(stderr, rows)
	}

	report, err := convert.KeePassToProton(convert.KeePassToProtonOptions{
		Source:    keepassFlags.source,
		Out:       keepassFlags.out,
		Overwrite: keepassFlags.force,
	})
	if !rootFlags.quiet && report.Mapping != nil {
		printReport(stderr, report)
	}
	if err != nil {
		return err
	}

	if !rootFlags.quiet {
		successColor.Fprintf(stderr, "\nConverted %d rows. Output written to: %s\n", report.Count, report.Out)
		fmt.Fprintln(stderr, "Inspect the CSV before importing into Proton Pass.")
	}
	return nil
}

func printReport(w io.Writer, report convert.Report) {
	fmt.Fprintln(w, "\nDetected source headers (first line):")
	fmt.Fprintf(w, "  %q\n", report.Headers)

	fmt.Fprintln(w, "\nUsing mapping (source header found -> will use):")
	for _, canonical := range report.Mapping.Canonical() {
		column, ok := report.Mapping.Column(canonical)
		if !ok {
			column = "(not found)"
		}
		fmt.Fprintf(w, "  %-8s -> %s\n", canonical, column)
	}

	for _, warning := range report.Warnings {
		fmt.Fprintln(w)
		printWarning(w, warning)
	}
}

func printPreview(w io.Writer, rows []convert.PreviewRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sample rows to show (source may be empty).")
		return
	}

	fmt.Fprintln(w, "\n--- SAMPLE SOURCE ROWS (showing relevant fields if present) ---")
	for i, row := range rows {
		fmt.Fprintf(w, "\nRow #%d:\n", i+1)
		for _, field := range row {
			fmt.Fprintf(w, "  %s: %s\n", field.Column, field.Value)
		}
	}
	fmt.Fprintf(w, "\n(Preview masks %s/%s content; the conversion includes them.)\n",
		formats.KeePassColPassword, formats.KeePassColTOTP)
}
