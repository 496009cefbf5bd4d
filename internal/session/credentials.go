package session

import (
	"fmt"

	"github.com/ZenKakzi/scholar-book-flow/internal/bcrypt"
)

// CredentialChecker compares a login attempt against a roster entry's
// stored password. Swapping the implementation changes the scheme without
// touching the store's contract.
type CredentialChecker interface {
	Check(candidate string, stored string) error
}

// PlaintextChecker compares passwords verbatim. It exists to mirror the
// simulated roster; the stored passwords are not secrets.
type PlaintextChecker struct{}

func (PlaintextChecker) Check(candidate string, stored string) error {
	if candidate != stored {
		return fmt.Errorf("password does not match")
	}
	return nil
}

// BcryptChecker expects the roster to carry bcrypt hashes.
type BcryptChecker struct{}

func (BcryptChecker) Check(candidate string, stored string) error {
	return bcrypt.ComparePassword(candidate, stored)
}
