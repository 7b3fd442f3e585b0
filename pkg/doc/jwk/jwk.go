/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk holds the public key material carried in credential headers.
package jwk

import (
	"errors"
	"fmt"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/signature"
)

const (
	// OKPKty is the key type of Ed25519 keys.
	OKPKty = "OKP"
	// ECKty is the key type of elliptic curve keys with (x, y) coordinates.
	ECKty = "EC"

	// Ed25519Crv labels Ed25519 keys.
	Ed25519Crv = "Ed25519"
	// P256Crv labels secp256k1 keys. The label is kept for wire compatibility with
	// existing credentials; the coordinates are points on secp256k1.
	P256Crv = "P-256"

	coordinateSize = 32
)

// ErrInvalidJWK is returned for key material whose fields are inconsistent.
var ErrInvalidJWK = errors.New("invalid public key material")

// JWK is the public key material of a signer.
//
// Ed25519 keys carry x only; secp256k1 keys carry the affine x and y coordinates.
// Coordinates are unpadded base64url strings.
type JWK struct {
	X   string `json:"x"`
	Y   string `json:"y,omitempty"`
	Crv string `json:"crv"`
	Kty string `json:"kty"`
}

// NewEd25519 creates key material from a raw 32 byte Ed25519 public key.
func NewEd25519(pubKey []byte) (*JWK, error) {
	if len(pubKey) != signature.NewEd25519Suite().PublicKeySize() {
		return nil, fmt.Errorf("ed25519 jwk: expected 32 bytes, got %d: %w", len(pubKey), signature.ErrInvalidKeyLength)
	}

	return &JWK{
		X:   cid.Encode(pubKey),
		Crv: Ed25519Crv,
		Kty: OKPKty,
	}, nil
}

// NewSecp256k1 creates key material from a 33 byte compressed secp256k1 public key.
func NewSecp256k1(compressed []byte) (*JWK, error) {
	x, y, err := signature.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 jwk: %w", err)
	}

	return &JWK{
		X:   cid.Encode(x),
		Y:   cid.Encode(y),
		Crv: P256Crv,
		Kty: ECKty,
	}, nil
}

// Validate checks the crv/kty/y consistency of the key material.
func (j *JWK) Validate() error {
	switch j.Crv {
	case Ed25519Crv:
		if j.Kty != OKPKty {
			return fmt.Errorf("%w: crv %s requires kty %s", ErrInvalidJWK, j.Crv, OKPKty)
		}

		if j.Y != "" {
			return fmt.Errorf("%w: crv %s must not carry y", ErrInvalidJWK, j.Crv)
		}
	case P256Crv:
		if j.Kty != ECKty {
			return fmt.Errorf("%w: crv %s requires kty %s", ErrInvalidJWK, j.Crv, ECKty)
		}

		if j.Y == "" {
			return fmt.Errorf("%w: crv %s requires y", ErrInvalidJWK, j.Crv)
		}
	default:
		return fmt.Errorf("%w: unsupported crv %q", ErrInvalidJWK, j.Crv)
	}

	return nil
}

// Curve returns the signature curve of the key material.
func (j *JWK) Curve() (signature.Curve, error) {
	if err := j.Validate(); err != nil {
		return 0, err
	}

	if j.Crv == Ed25519Crv {
		return signature.Ed25519, nil
	}

	return signature.Secp256k1, nil
}

// PublicKeyBytes returns the raw public key: 32 bytes for Ed25519 or the
// 33 byte compressed point for secp256k1.
func (j *JWK) PublicKeyBytes() ([]byte, error) {
	c, err := j.Curve()
	if err != nil {
		return nil, err
	}

	x, err := decodeCoordinate("x", j.X)
	if err != nil {
		return nil, err
	}

	if c == signature.Ed25519 {
		return x, nil
	}

	y, err := decodeCoordinate("y", j.Y)
	if err != nil {
		return nil, err
	}

	compressed, err := signature.Compress(x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJWK, err.Error())
	}

	return compressed, nil
}

func decodeCoordinate(name, value string) ([]byte, error) {
	b, err := cid.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrInvalidJWK, name, err.Error())
	}

	if len(b) != coordinateSize {
		return nil, fmt.Errorf("%w: %s has %d bytes", ErrInvalidJWK, name, len(b))
	}

	return b, nil
}
