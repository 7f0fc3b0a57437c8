package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/csvporter/internal/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available formats",
	Long: `List all formats that can be used with the convert command.

Some formats can only be read (exports csvporter never produces) or only be
written (targets it cannot parse back).

Examples:
  # List all formats
  csvporter formats`,
	Run: runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	registry := formats.NewRegistry(formats.OpenOptions{})

	fmt.Fprintf(out, "Available formats (%d):\n", registry.Count())
	fmt.Fprintln(out)

	for _, f := range registry.List() {
		fmt.Fprintf(out, "  %-10s %s\n", f.Name(), f.Description())
		fmt.Fprintf(out, "  %-10s Mode: %s, extension: %s\n", "", f.Mode(), f.Extension())
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use 'csvporter convert -s <file> -f <from> -t <to>' to convert.")
}
