/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package address derives party addresses from public keys.
//
// An address is the multicodec fingerprint of a raw public key:
// MULTIBASE(base58-btc, MULTICODEC(key-type, raw-public-key-bytes)), the same method
// specific identifier used by did:key. secp256k1 keys are fingerprinted in compressed form.
package address

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/util/fingerprint"
	"github.com/multiformats/go-multibase"

	"github.com/rightsledger/rights-credentials/pkg/doc/signature"
)

const (
	// ED25519PubKeyMultiCodec for Ed25519 public key in multicodec table.
	ED25519PubKeyMultiCodec = fingerprint.ED25519PubKeyMultiCodec
	// Secp256k1PubKeyMultiCodec for compressed secp256k1 public key in multicodec table.
	Secp256k1PubKeyMultiCodec = 0xe7

	maxMulticodecBytes = 9
)

// ErrMalformedAddress is returned when an address can not be decoded.
var ErrMalformedAddress = errors.New("malformed address")

// Of returns the address of a raw public key on curve c.
func Of(c signature.Curve, pubKey []byte) (string, error) {
	code, err := codeOf(c)
	if err != nil {
		return "", err
	}

	suite, err := signature.SuiteFor(c)
	if err != nil {
		return "", err
	}

	if len(pubKey) != suite.PublicKeySize() {
		return "", fmt.Errorf("%s address: expected %d byte key, got %d: %w",
			c, suite.PublicKeySize(), len(pubKey), signature.ErrInvalidKeyLength)
	}

	return fingerprint.KeyFingerprint(code, pubKey), nil
}

// Parse extracts the curve and raw public key from an address.
func Parse(addr string) (signature.Curve, []byte, error) {
	enc, mc, err := multibase.Decode(addr)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s", ErrMalformedAddress, err.Error())
	}

	if enc != multibase.Base58BTC {
		return 0, nil, fmt.Errorf("%w: unexpected multibase encoding %q", ErrMalformedAddress, string(rune(enc)))
	}

	code, br := binary.Uvarint(mc)
	if br <= 0 || br > maxMulticodecBytes {
		return 0, nil, fmt.Errorf("%w: unknown key encoding", ErrMalformedAddress)
	}

	var c signature.Curve

	switch code {
	case ED25519PubKeyMultiCodec:
		c = signature.Ed25519
	case Secp256k1PubKeyMultiCodec:
		c = signature.Secp256k1
	default:
		return 0, nil, fmt.Errorf("%w: unsupported key multicodec code [0x%x]", ErrMalformedAddress, code)
	}

	suite, err := signature.SuiteFor(c)
	if err != nil {
		return 0, nil, err
	}

	pubKey := mc[br:]
	if len(pubKey) != suite.PublicKeySize() {
		return 0, nil, fmt.Errorf("%w: %s key of %d bytes", ErrMalformedAddress, c, len(pubKey))
	}

	return c, pubKey, nil
}

// IsAddress reports whether addr parses as an address.
func IsAddress(addr string) bool {
	_, _, err := Parse(addr)

	return err == nil
}

func codeOf(c signature.Curve) (uint64, error) {
	switch c {
	case signature.Ed25519:
		return ED25519PubKeyMultiCodec, nil
	case signature.Secp256k1:
		return Secp256k1PubKeyMultiCodec, nil
	}

	return 0, fmt.Errorf("unsupported curve: %s", c)
}
