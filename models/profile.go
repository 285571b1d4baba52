package models

// ExternalProfile is the subset of the federated provider's userinfo response
// the application consumes. Only the stable ID participates in identity
// resolution; the display name is informational.
type ExternalProfile struct {
	// ID is the provider-issued stable identifier ("sub" for Google).
	ID string `json:"id"`

	// Name is the display name asserted by the provider, if any.
	Name string `json:"name"`
}

// SecretEntry is one row of the public wall of secrets.
type SecretEntry struct {
	// Handle is the owner's public display handle.
	Handle string

	// Secret is the submitted secret text.
	Secret string
}
