// Package model defines the normalized record shared by every format adapter.
package model

import "fmt"

// Field identifies one of the eight normalized record fields.
type Field int

const (
	// FieldName is the display title of the credential.
	FieldName Field = iota
	// FieldURL is the associated login URI.
	FieldURL
	// FieldEmail is the login identifier when it looks like an email address.
	FieldEmail
	// FieldUsername is the login identifier as exported.
	FieldUsername
	// FieldPassword is the secret value.
	FieldPassword
	// FieldNote holds free-text notes.
	FieldNote
	// FieldTOTP is the one-time-password seed or otpauth URI.
	FieldTOTP
	// FieldVault is the folder, group or collection name.
	FieldVault
)

// Fields returns every field in canonical order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldURL,
		FieldEmail,
		FieldUsername,
		FieldPassword,
		FieldNote,
		FieldTOTP,
		FieldVault,
	}
}

// String returns the lowercase field name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldURL:
		return "url"
	case FieldEmail:
		return "email"
	case FieldUsername:
		return "username"
	case FieldPassword:
		return "password"
	case FieldNote:
		return "note"
	case FieldTOTP:
		return "totp"
	case FieldVault:
		return "vault"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// IsSecret reports whether values of this field must be masked when shown.
func (f Field) IsSecret() bool {
	return f == FieldPassword || f == FieldTOTP
}
