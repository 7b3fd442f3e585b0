/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

const (
	secp256k1KeySize        = 32
	secp256k1CompressedSize = 33
)

// Secp256k1Suite signs with ECDSA over secp256k1 and SHA-256.
//
// Signatures are the fixed width concatenation R || S, 64 bytes.
type Secp256k1Suite struct{}

// NewSecp256k1Suite creates a new Secp256k1Suite.
func NewSecp256k1Suite() *Secp256k1Suite {
	return &Secp256k1Suite{}
}

// Curve returns Secp256k1.
func (s *Secp256k1Suite) Curve() Curve {
	return Secp256k1
}

// PublicKeySize returns 33, the size of a compressed point.
func (s *Secp256k1Suite) PublicKeySize() int {
	return secp256k1CompressedSize
}

// GenerateKey returns a new key pair; the public key is compressed.
func (s *Secp256k1Suite) GenerateKey() ([]byte, []byte, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}

	return priv.PubKey().SerializeCompressed(), padded(priv.D.Bytes(), secp256k1KeySize), nil
}

// PublicKey derives the compressed public key of secretKey.
func (s *Secp256k1Suite) PublicKey(secretKey []byte) ([]byte, error) {
	if err := checkKeyLength(Secp256k1, secretKey, secp256k1KeySize); err != nil {
		return nil, err
	}

	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), secretKey)

	return pub.SerializeCompressed(), nil
}

// Sign signs sha256(msg) with secretKey.
func (s *Secp256k1Suite) Sign(msg, secretKey []byte) ([]byte, error) {
	if err := checkKeyLength(Secp256k1, secretKey, secp256k1KeySize); err != nil {
		return nil, err
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), secretKey)

	hashed := sha256.Sum256(msg)

	sig, err := priv.Sign(hashed[:])
	if err != nil {
		return nil, fmt.Errorf("secp256k1 sign: %w", err)
	}

	return append(padded(sig.R.Bytes(), secp256k1KeySize), padded(sig.S.Bytes(), secp256k1KeySize)...), nil
}

// Verify verifies an R || S signature against a compressed public key.
func (s *Secp256k1Suite) Verify(msg, publicKey, signature []byte) error {
	if err := checkKeyLength(Secp256k1, publicKey, secp256k1CompressedSize); err != nil {
		return err
	}

	pub, err := btcec.ParsePubKey(publicKey, btcec.S256())
	if err != nil {
		return fmt.Errorf("secp256k1 public key: %w", err)
	}

	if len(signature) != 2*secp256k1KeySize {
		return fmt.Errorf("secp256k1: signature size %d: %w", len(signature), ErrInvalidSignature)
	}

	sig := &btcec.Signature{
		R: new(big.Int).SetBytes(signature[:secp256k1KeySize]),
		S: new(big.Int).SetBytes(signature[secp256k1KeySize:]),
	}

	hashed := sha256.Sum256(msg)

	if !sig.Verify(hashed[:], pub) {
		return fmt.Errorf("secp256k1: %w", ErrInvalidSignature)
	}

	return nil
}

// Compress returns the 33 byte compressed form of the point (x, y).
func Compress(x, y []byte) ([]byte, error) {
	pub := &btcec.PublicKey{
		Curve: btcec.S256(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}

	if !btcec.S256().IsOnCurve(pub.X, pub.Y) {
		return nil, fmt.Errorf("secp256k1: point is not on curve")
	}

	return pub.SerializeCompressed(), nil
}

// Decompress returns the affine coordinates of a compressed secp256k1 public key,
// each left padded to 32 bytes.
func Decompress(compressed []byte) ([]byte, []byte, error) {
	if err := checkKeyLength(Secp256k1, compressed, secp256k1CompressedSize); err != nil {
		return nil, nil, err
	}

	pub, err := btcec.ParsePubKey(compressed, btcec.S256())
	if err != nil {
		return nil, nil, fmt.Errorf("secp256k1 decompress: %w", err)
	}

	return padded(pub.X.Bytes(), secp256k1KeySize), padded(pub.Y.Bytes(), secp256k1KeySize), nil
}

func padded(source []byte, size int) []byte {
	dest := make([]byte, size)
	copy(dest[size-len(source):], source)

	return dest
}
