package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateDistinctPaths rejects an output path that resolves to the source
// file, so that a forced overwrite can never destroy the input.
func ValidateDistinctPaths(source, out string) error {
	srcAbs, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("cannot resolve source path: %w", err)
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("cannot resolve output path: %w", err)
	}

	if srcAbs == outAbs {
		return fmt.Errorf("output path %q is the source file", out)
	}

	// Hard links and symlinks
	srcInfo, err := os.Stat(srcAbs)
	if err != nil {
		return nil
	}
	outInfo, err := os.Stat(outAbs)
	if err != nil {
		return nil
	}
	if os.SameFile(srcInfo, outInfo) {
		return fmt.Errorf("output path %q is the source file", out)
	}
	return nil
}

// ValidateDomainName validates a domain name format.
func ValidateDomainName(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	if len(domain) > 253 {
		return fmt.Errorf("domain exceeds maximum length of 253")
	}

	for _, label := range strings.Split(domain, ".") {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("domain label length must be 1-63 characters")
		}

		for i, r := range label {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
				return fmt.Errorf("invalid character in domain label: %c", r)
			}
			if r == '-' && (i == 0 || i == len(label)-1) {
				return fmt.Errorf("domain label cannot start or end with hyphen")
			}
		}
	}

	return nil
}

// ValidateRPID validates a relying party identifier.
func ValidateRPID(rpID string) error {
	if rpID == "" {
		return fmt.Errorf("RP ID cannot be empty")
	}
	return ValidateDomainName(rpID)
}
