// Package creds derives and verifies password digests. A digest is bcrypt
// over the concatenation of a server-side pepper and the plaintext password.
// Bcrypt generates its own random salt and embeds salt and cost in the digest
// string, so nothing besides the digest needs to be stored per user.
//
// Peppers are ordered: index 0 is the current pepper, the rest are retired
// but still accepted, which lets an operator introduce a new pepper without
// invalidating existing digests.
package creds

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and checks peppered bcrypt digests.
// It is immutable after construction and safe for concurrent use.
type Hasher struct {
	cost    int
	peppers []string
}

// NewHasher builds a Hasher. peppers must be non-empty, current pepper first.
func NewHasher(cost int, peppers []string) (*Hasher, error) {
	if len(peppers) == 0 {
		return nil, errors.New("creds: pepper list must not be empty")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("creds: bcrypt cost %d must be in [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost, peppers: peppers}, nil
}

// Primary returns the current pepper (peppers[0]).
func (h *Hasher) Primary() string {
	return h.peppers[0]
}

// Hash derives a digest from plaintext under the current pepper. Each call
// salts freshly, so two digests of the same password differ. It fails only on
// an unrecoverable bcrypt error.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(h.peppers[0]+plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("creds: bcrypt: %w", err)
	}
	return string(digest), nil
}

// VerifyOutcome reports whether a plaintext matched a digest and, on a match,
// which pepper produced it.
type VerifyOutcome struct {
	Matched bool
	Pepper  string
}

// Verify checks plaintext against digest, trying peppers in configured order:
// the current pepper first, then retired ones. The first match wins, so a
// digest written under an old pepper still verifies while current-pepper
// digests are matched fastest. An empty digest never matches and is not
// handed to bcrypt at all.
func (h *Hasher) Verify(plaintext, digest string) VerifyOutcome {
	if digest == "" {
		return VerifyOutcome{}
	}
	for _, pepper := range h.peppers {
		if bcrypt.CompareHashAndPassword([]byte(digest), []byte(pepper+plaintext)) == nil {
			return VerifyOutcome{Matched: true, Pepper: pepper}
		}
	}
	return VerifyOutcome{}
}

// NeedsRotation reports whether a successful verify matched under a retired
// pepper, meaning the stored digest should be re-derived with the current one.
func (h *Hasher) NeedsRotation(o VerifyOutcome) bool {
	return o.Matched && o.Pepper != h.peppers[0]
}
