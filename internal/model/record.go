package model

import "strings"

// Record is the intermediate representation between vendor export formats.
// Every field is always present; an empty string means the source had no value.
type Record struct {
	Name     string
	URL      string
	Username string
	Email    string
	Password string
	Note     string
	TOTP     string
	Vault    string
}

// Normalize returns a copy of r with every field trimmed of surrounding whitespace.
func (r Record) Normalize() Record {
	return Record{
		Name:     strings.TrimSpace(r.Name),
		URL:      strings.TrimSpace(r.URL),
		Username: strings.TrimSpace(r.Username),
		Email:    strings.TrimSpace(r.Email),
		Password: strings.TrimSpace(r.Password),
		Note:     strings.TrimSpace(r.Note),
		TOTP:     strings.TrimSpace(r.TOTP),
		Vault:    strings.TrimSpace(r.Vault),
	}
}

// Get returns the value stored for field f.
func (r Record) Get(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldURL:
		return r.URL
	case FieldEmail:
		return r.Email
	case FieldUsername:
		return r.Username
	case FieldPassword:
		return r.Password
	case FieldNote:
		return r.Note
	case FieldTOTP:
		return r.TOTP
	case FieldVault:
		return r.Vault
	default:
		return ""
	}
}

// FromLogin builds a record from a login entry the way KeePass exports it:
// the title falls back to the username, and the username is copied into the
// email field when it looks like an address. The username is always kept.
func FromLogin(title, username, password, url, notes, totp, group string) Record {
	r := Record{
		Name:     title,
		URL:      url,
		Username: username,
		Password: password,
		Note:     notes,
		TOTP:     totp,
		Vault:    group,
	}.Normalize()

	if r.Name == "" {
		r.Name = r.Username
	}
	if LooksLikeEmail(r.Username) {
		r.Email = r.Username
	}
	return r
}
