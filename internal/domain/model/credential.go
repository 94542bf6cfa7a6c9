package model

// Credential is one stored vault entry. Name is the unique lookup key and
// Secret holds the encrypted blob exactly as persisted; decrypted secrets
// never appear on this type.
type Credential struct {
	ID     int64
	Name   string
	Login  string
	Secret []byte
}

// CredentialSummary is the listing projection of a credential: identifying
// fields only, no secret material in any form.
type CredentialSummary struct {
	Name  string
	Login string
}
