package cxf

import (
	"net/url"
	"strconv"
	"strings"
)

// TOTPParams is the decoded form of a TOTP value found in an export.
type TOTPParams struct {
	Secret      string
	Algorithm   string // SHA1, SHA256 or SHA512
	Digits      int
	Period      int
	Issuer      string
	AccountName string
}

// ParseTOTP decodes an otpauth://totp URI. Anything else is taken as a raw
// base32 secret with the RFC 6238 defaults.
func ParseTOTP(value string) TOTPParams {
	params := TOTPParams{
		Algorithm: "SHA1",
		Digits:    6,
		Period:    30,
	}

	value = strings.TrimSpace(value)
	if !strings.HasPrefix(strings.ToLower(value), "otpauth://") {
		params.Secret = normalizeSecret(value)
		return params
	}

	u, err := url.Parse(value)
	if err != nil || !strings.EqualFold(u.Host, "totp") {
		params.Secret = normalizeSecret(value)
		return params
	}

	query := u.Query()
	params.Secret = normalizeSecret(query.Get("secret"))
	params.Issuer = query.Get("issuer")

	// Label is "issuer:account" or just "account"
	label := strings.TrimPrefix(u.Path, "/")
	if issuer, account, ok := strings.Cut(label, ":"); ok {
		if params.Issuer == "" {
			params.Issuer = issuer
		}
		params.AccountName = strings.TrimSpace(account)
	} else {
		params.AccountName = label
	}

	switch strings.ToUpper(query.Get("algorithm")) {
	case "SHA256":
		params.Algorithm = "SHA256"
	case "SHA512":
		params.Algorithm = "SHA512"
	}

	if digits, err := strconv.Atoi(query.Get("digits")); err == nil && (digits == 6 || digits == 8) {
		params.Digits = digits
	}
	if period, err := strconv.Atoi(query.Get("period")); err == nil && period > 0 && period <= 255 {
		params.Period = period
	}

	return params
}

func normalizeSecret(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}
