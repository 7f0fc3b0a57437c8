// Package security provides helpers for handling sensitive values.
package security

import (
	"crypto/subtle"
	"fmt"
	"unicode/utf8"
)

// Wipe zeroes a byte slice and nils it out. Call it via defer on buffers that
// held a password.
func Wipe(data *[]byte) {
	if data == nil || *data == nil {
		return
	}
	for i := range *data {
		(*data)[i] = 0
	}
	// Keep the compiler from eliding the loop above
	if len(*data) > 0 {
		subtle.ConstantTimeCopy(1, *data, make([]byte, len(*data)))
	}
	*data = nil
}

// Mask hides a secret, revealing only its length in characters.
func Mask(s string) string {
	return fmt.Sprintf("<%d chars>", utf8.RuneCountInString(s))
}
