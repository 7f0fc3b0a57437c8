// Package main provides the entry point for the csvporter CLI tool.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitBadInput    = 2
	exitOutputExist = 3
	exitInterrupted = 130
)

var rootFlags struct {
	quiet   bool
	noColor bool
}

var rootCmd = &cobra.Command{
	Use:   "csvporter",
	Short: "Convert password manager exports between vendors",
	Long: `csvporter converts password manager exports between vendor CSV layouts
(KeePassXC, Bitwarden, Proton Pass, Chrome, Firefox). It can also read
KeePass databases directly and write FIDO CXF documents.

Every conversion maps the source columns to a common record and writes them
in the target's column layout. Existing output files are never replaced
unless --force is given.

Examples:
  # KeePassXC export to Bitwarden
  csvporter convert -s export.csv -f keepass -t bitwarden

  # KeePassXC export to Proton Pass, with a masked preview of the source
  csvporter keepass2proton -s export.csv --preview

  # List available formats
  csvporter formats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootFlags.noColor {
			color.NoColor = true
		}
	},
}

func init() {
	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&rootFlags.quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(keepassCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	handleInterrupt()

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// handleInterrupt exits with status 130 on SIGINT or SIGTERM. An existing
// output is only replaced by rename, so it is never half-written. The exit
// runs no cleanup: a new output may be left empty, and an overwrite may leave
// the atomic writer's temporary file next to the output.
func handleInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nAborted by user.")
		os.Exit(exitInterrupted)
	}()
}
