/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"

	"github.com/rightsledger/rights-credentials/pkg/doc/address"
	"github.com/rightsledger/rights-credentials/pkg/doc/jwk"
	"github.com/rightsledger/rights-credentials/pkg/doc/schema"
	"github.com/rightsledger/rights-credentials/pkg/doc/signature"
)

// Algorithm is the signature algorithm named in a header.
type Algorithm string

const (
	// EdDSA signs with Ed25519.
	EdDSA Algorithm = "EdDsa"
	// ES256 signs with secp256k1 over a SHA-256 digest.
	ES256 Algorithm = "ES256"
)

// JWTType is the only accepted header typ.
const JWTType = "JWT"

// Header carries the algorithm and public key of the credential signer.
type Header struct {
	Algorithm Algorithm `json:"alg"`
	JWK       *jwk.JWK  `json:"jwk"`
	Type      string    `json:"typ"`
}

// suiteFor maps an algorithm to its signature suite. Every Algorithm constant has a case here.
func suiteFor(alg Algorithm) (signature.Suite, error) {
	switch alg {
	case EdDSA:
		return signature.NewEd25519Suite(), nil
	case ES256:
		return signature.NewSecp256k1Suite(), nil
	default:
		return nil, newError(UnsupportedAlgorithm, "algorithm %q", alg)
	}
}

func algorithmOf(c signature.Curve) (Algorithm, error) {
	switch c {
	case signature.Ed25519:
		return EdDSA, nil
	case signature.Secp256k1:
		return ES256, nil
	default:
		return "", newError(UnsupportedAlgorithm, "curve %s", c)
	}
}

// BuildHeader creates the header for a raw public key: a 32 byte Ed25519 key or a 33 byte
// compressed secp256k1 key.
func BuildHeader(rawPublicKey []byte, c signature.Curve) (*Header, error) {
	alg, err := algorithmOf(c)
	if err != nil {
		return nil, err
	}

	var material *jwk.JWK

	switch alg {
	case EdDSA:
		material, err = jwk.NewEd25519(rawPublicKey)
	case ES256:
		if len(rawPublicKey) != signature.NewSecp256k1Suite().PublicKeySize() {
			return nil, newError(MalformedKey, "secp256k1 key: expected 33 bytes, got %d: %w",
				len(rawPublicKey), signature.ErrInvalidKeyLength)
		}

		material, err = jwk.NewSecp256k1(rawPublicKey)
	}

	if err != nil {
		return nil, &Error{Kind: MalformedKey, Err: err}
	}

	return &Header{Algorithm: alg, JWK: material, Type: JWTType}, nil
}

// Validate checks the header shape and the consistency of alg with the key material.
func (h *Header) Validate() error {
	if h == nil {
		return newError(InvalidHeader, "header is missing")
	}

	if err := schema.Validate(h, schema.Header); err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	if err := h.JWK.Validate(); err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	suite, err := suiteFor(h.Algorithm)
	if err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	c, err := h.JWK.Curve()
	if err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	if suite.Curve() != c {
		return newError(InvalidHeader, "alg %s does not match crv %s", h.Algorithm, h.JWK.Crv)
	}

	return nil
}

// SignerAddress derives the address of the header key.
func (h *Header) SignerAddress() (string, error) {
	c, err := h.JWK.Curve()
	if err != nil {
		return "", err
	}

	key, err := h.JWK.PublicKeyBytes()
	if err != nil {
		return "", err
	}

	addr, err := address.Of(c, key)
	if err != nil {
		return "", fmt.Errorf("derive signer address: %w", err)
	}

	return addr, nil
}

