package service

// TokenSource defines the interface for minting opaque API tokens.
// Tokens carry no claims; they are random identifiers matched against storage.
type TokenSource interface {
	// Generate returns a fresh unguessable token string.
	Generate() (string, error)
}
