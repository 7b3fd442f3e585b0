/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signature provides the two signature suites credentials can be signed with:
// Ed25519 and ECDSA over secp256k1.
package signature

import (
	"errors"
	"fmt"
	"strings"
)

// Curve identifies the elliptic curve behind a signature suite.
type Curve int

const (
	// Ed25519 curve.
	Ed25519 Curve = iota + 1
	// Secp256k1 curve.
	Secp256k1
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case Ed25519:
		return "Ed25519"
	case Secp256k1:
		return "secp256k1"
	}

	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve returns the curve with the given case insensitive name.
func ParseCurve(name string) (Curve, error) {
	for _, c := range []Curve{Ed25519, Secp256k1} {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unsupported curve: %q", name)
}

// ErrInvalidKeyLength is returned when a raw key does not have the length its curve requires.
var ErrInvalidKeyLength = errors.New("invalid key length")

// ErrInvalidSignature is returned when a signature does not verify.
var ErrInvalidSignature = errors.New("invalid signature")

// Suite signs and verifies messages on a single curve.
//
// Public keys are always handled in their raw form: 32 bytes for Ed25519 and
// 33 bytes (compressed point) for secp256k1.
type Suite interface {
	// Curve returns the curve of the suite.
	Curve() Curve
	// PublicKeySize returns the length of a raw public key.
	PublicKeySize() int
	// GenerateKey returns a new (public, secret) key pair.
	GenerateKey() ([]byte, []byte, error)
	// PublicKey derives the raw public key of a secret key.
	PublicKey(secretKey []byte) ([]byte, error)
	// Sign signs msg.
	Sign(msg, secretKey []byte) ([]byte, error)
	// Verify checks signature over msg, returning ErrInvalidSignature on mismatch.
	Verify(msg, publicKey, signature []byte) error
}

// SuiteFor returns the suite of curve c.
func SuiteFor(c Curve) (Suite, error) {
	switch c {
	case Ed25519:
		return NewEd25519Suite(), nil
	case Secp256k1:
		return NewSecp256k1Suite(), nil
	}

	return nil, fmt.Errorf("unsupported curve: %s", c)
}

func checkKeyLength(c Curve, key []byte, expected int) error {
	if len(key) != expected {
		return fmt.Errorf("%s key: expected %d bytes, got %d: %w", c, expected, len(key), ErrInvalidKeyLength)
	}

	return nil
}
