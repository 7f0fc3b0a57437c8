package cxf

import (
	"encoding/json"

	"github.com/nvinuesa/go-cxf"

	"github.com/nvinuesa/csvporter/internal/model"
)

// mapRecordToItem converts a record to a cxf.Item. Every item carries a
// basic-auth credential; TOTP and note credentials are added when present.
func mapRecordToItem(r *model.Record) (cxf.Item, error) {
	var scope *cxf.CredentialScope
	if r.URL != "" {
		scope = &cxf.CredentialScope{
			Urls:        []string{r.URL},
			AndroidApps: []cxf.AndroidAppIdCredential{},
		}
	}

	// The email only adds information when it differs from the username.
	subtitle := ""
	if r.Email != "" && r.Email != r.Username {
		subtitle = r.Email
	}

	credentials, err := mapCredentials(r)
	if err != nil {
		return cxf.Item{}, err
	}

	return cxf.Item{
		ID:          generateBase64URLID(),
		Title:       r.Name,
		Subtitle:    subtitle,
		Scope:       scope,
		Credentials: credentials,
	}, nil
}

// mapCredentials creates the credentials array for an item.
func mapCredentials(r *model.Record) ([]json.RawMessage, error) {
	var credentials []json.RawMessage

	basic, err := mapBasicAuth(r)
	if err != nil {
		return nil, err
	}
	credentials = append(credentials, basic)

	if r.TOTP != "" {
		totp, err := mapTOTP(r)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, totp)
	}

	if r.Note != "" {
		note, err := marshalCredential(cxf.NoteCredential{
			Type:    cxf.CredentialTypeNote,
			Content: makeEditableField(cxf.FieldTypeString, r.Note),
		})
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, note)
	}

	return credentials, nil
}

// mapBasicAuth creates a BasicAuthCredential from a record.
func mapBasicAuth(r *model.Record) (json.RawMessage, error) {
	cred := cxf.BasicAuthCredential{
		Type: cxf.CredentialTypeBasicAuth,
	}

	username := r.Username
	if username == "" {
		username = r.Email
	}
	if username != "" {
		cred.Username = makeEditableField(cxf.FieldTypeString, username)
	}
	if r.Password != "" {
		cred.Password = makeEditableField(cxf.FieldTypeConcealedString, r.Password)
	}

	return marshalCredential(cred)
}

// mapTOTP creates a TOTPCredential from the record's TOTP value.
func mapTOTP(r *model.Record) (json.RawMessage, error) {
	params := ParseTOTP(r.TOTP)

	var algorithm string
	switch params.Algorithm {
	case "SHA256":
		algorithm = cxf.OTPHashAlgorithmSha256
	case "SHA512":
		algorithm = cxf.OTPHashAlgorithmSha512
	default:
		algorithm = cxf.OTPHashAlgorithmSha1
	}

	username := params.AccountName
	if username == "" {
		username = r.Username
	}

	cred := cxf.TOTPCredential{
		Type:      cxf.CredentialTypeTOTP,
		Secret:    params.Secret,
		Period:    uint8(params.Period),
		Digits:    uint8(params.Digits),
		Username:  username,
		Algorithm: algorithm,
		Issuer:    params.Issuer,
	}

	return marshalCredential(cred)
}

// makeEditableField creates an EditableField with the given type and value.
func makeEditableField(fieldType, value string) *cxf.EditableField {
	if value == "" {
		return nil
	}

	marshalledValue, _ := json.Marshal(value)
	return &cxf.EditableField{
		FieldType: fieldType,
		Value:     marshalledValue,
	}
}

// marshalCredential marshals a credential to json.RawMessage.
func marshalCredential(cred any) (json.RawMessage, error) {
	return json.Marshal(cred)
}
