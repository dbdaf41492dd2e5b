package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks a presented login identifier against the stored value.
// The repositories only ever see this interface, so swapping the equality
// check for a hashed scheme does not touch their contracts.
type Verifier interface {
	Verify(presented, stored string) bool
}

// Plain is the historical behavior: a case-sensitive exact match.
type Plain struct{}

func (Plain) Verify(presented, stored string) bool {
	return presented == stored
}

// Bcrypt expects the stored column to hold a bcrypt hash of the identifier.
type Bcrypt struct{}

func (Bcrypt) Verify(presented, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// Hash produces a stored value for use with the Bcrypt verifier.
func Hash(identifier string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(identifier), bcrypt.DefaultCost)
	return string(bytes), err
}

// FromMode maps an AUTH_MODE config value to a Verifier, defaulting to Plain.
func FromMode(mode string) Verifier {
	if mode == "bcrypt" {
		return Bcrypt{}
	}
	return Plain{}
}
