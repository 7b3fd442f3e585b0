/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Ed25519Suite signs with Ed25519 keys.
//
// Secret keys are accepted either as the 64 byte expanded form or as the 32 byte seed.
type Ed25519Suite struct{}

// NewEd25519Suite creates a new Ed25519Suite.
func NewEd25519Suite() *Ed25519Suite {
	return &Ed25519Suite{}
}

// Curve returns Ed25519.
func (s *Ed25519Suite) Curve() Curve {
	return Ed25519
}

// PublicKeySize returns 32.
func (s *Ed25519Suite) PublicKeySize() int {
	return ed25519.PublicKeySize
}

// GenerateKey returns a new Ed25519 key pair.
func (s *Ed25519Suite) GenerateKey() ([]byte, []byte, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}

	return pub, priv, nil
}

// PublicKey derives the public key of secretKey.
func (s *Ed25519Suite) PublicKey(secretKey []byte) ([]byte, error) {
	priv, err := expandEd25519(secretKey)
	if err != nil {
		return nil, err
	}

	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("ed25519: unexpected public key type")
	}

	return pub, nil
}

// Sign signs msg with secretKey.
func (s *Ed25519Suite) Sign(msg, secretKey []byte) ([]byte, error) {
	priv, err := expandEd25519(secretKey)
	if err != nil {
		return nil, err
	}

	return ed25519.Sign(priv, msg), nil
}

// Verify verifies an Ed25519 signature.
func (s *Ed25519Suite) Verify(msg, publicKey, signature []byte) error {
	// ed25519 panics if key size is wrong
	if err := checkKeyLength(Ed25519, publicKey, ed25519.PublicKeySize); err != nil {
		return err
	}

	if !ed25519.Verify(publicKey, msg, signature) {
		return fmt.Errorf("ed25519: %w", ErrInvalidSignature)
	}

	return nil
}

func expandEd25519(secretKey []byte) (ed25519.PrivateKey, error) {
	switch len(secretKey) {
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(secretKey), nil
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(secretKey), nil
	}

	return nil, fmt.Errorf("ed25519 secret key: got %d bytes: %w", len(secretKey), ErrInvalidKeyLength)
}
