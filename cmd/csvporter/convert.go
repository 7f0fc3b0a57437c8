package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvinuesa/csvporter/internal/convert"
	"github.com/nvinuesa/csvporter/internal/formats"
	"github.com/nvinuesa/csvporter/internal/security"
)

var convertFlags struct {
	source   string
	from     string
	to       string
	out      string
	force    bool
	password string
	keyFile  string
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an export from one format to another",
	Long: `Convert a password manager export from one format to another.

The source file is read with the --from adapter and every entry is written
with the --to adapter. Run 'csvporter formats' to see which formats can be
read and written.

The default output path is <source without extension>_<to><ext>.

Examples:
  # KeePassXC CSV to Proton Pass
  csvporter convert -s export.csv -f keepass -t proton

  # Bitwarden to Chrome, replacing an existing file
  csvporter convert -s bitwarden.csv -f bitwarden -t chrome -o chrome.csv --force

  # KeePass database to CXF (prompts for the password)
  csvporter convert -s vault.kdbx -f kdbx -t cxf`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFlags.source, "source", "s", "", "Source file path (required)")
	convertCmd.Flags().StringVarP(&convertFlags.from, "from", "f", "", "Source format (required)")
	convertCmd.Flags().StringVarP(&convertFlags.to, "to", "t", "", "Target format (required)")
	convertCmd.Flags().StringVarP(&convertFlags.out, "out", "o", "", "Output file path (default: <source>_<to><ext>)")
	convertCmd.Flags().BoolVar(&convertFlags.force, "force", false, "Overwrite the output file if it exists")
	convertCmd.Flags().StringVarP(&convertFlags.password, "password", "p", "", "Password for KeePass databases")
	convertCmd.Flags().StringVarP(&convertFlags.keyFile, "key-file", "k", "", "Key file for KeePass databases")

	convertCmd.MarkFlagRequired("source")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	result, err := convert.Convert(convert.Options{
		Source:    convertFlags.source,
		From:      convertFlags.from,
		To:        convertFlags.to,
		Out:       convertFlags.out,
		Overwrite: convertFlags.force,
		Open: formats.OpenOptions{
			Password:     convertFlags.password,
			KeyFilePath:  convertFlags.keyFile,
			PasswordFunc: promptPassword,
		},
	})
	if err != nil {
		return err
	}

	logf(stderr, "Converted %d entries from %s → %s.\n", result.Count, result.From, result.To)
	if !rootFlags.quiet {
		for _, warning := range result.Warnings {
			printWarning(stderr, warning)
		}
		successColor.Fprintf(stderr, "Output written to: %s\n", result.Out)
	}
	return nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("a password is required: use --password when stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // newline after password
	defer security.Wipe(&password)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
