/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cid derives content identifiers for JSON-like values.
//
// A value is canonicalized to JSON with object keys in lexical order, hashed with
// sha2-256 into a multihash and rendered in base58 (the "Qm..." form). Two values
// with the same content always share an identifier regardless of how their maps
// were built.
package cid

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3/json"
	"github.com/multiformats/go-multihash"
)

// Clock returns the current time.
type Clock func() time.Time

// Now is the default Clock: the system time truncated to whole seconds.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// Canonicalize returns the canonical JSON encoding of v.
//
// v is first marshalled and decoded back into generic maps and slices, so struct field
// order and map insertion order have no influence on the output.
func Canonicalize(v interface{}) ([]byte, error) {
	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}

	return b, nil
}

// Digest hashes data into a sha2-256 multihash.
func Digest(data []byte) ([]byte, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	return mh, nil
}

// IdentifierOf returns the content identifier of v.
func IdentifierOf(v interface{}) (string, error) {
	data, err := Canonicalize(v)
	if err != nil {
		return "", err
	}

	mh, err := Digest(data)
	if err != nil {
		return "", err
	}

	return multihash.Multihash(mh).B58String(), nil
}

// IsIdentifier reports whether s is a well formed sha2-256 content identifier.
func IsIdentifier(s string) bool {
	mh, err := multihash.FromB58String(s)
	if err != nil {
		return false
	}

	decoded, err := multihash.Decode(mh)
	if err != nil {
		return false
	}

	return decoded.Code == multihash.SHA2_256
}

// Encode returns the unpadded base64url encoding of data.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode decodes an unpadded base64url string.
func Decode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// EncodeValue returns base64url(Canonicalize(v)).
func EncodeValue(v interface{}) (string, error) {
	data, err := Canonicalize(v)
	if err != nil {
		return "", err
	}

	return Encode(data), nil
}

func toGeneric(v interface{}) (interface{}, error) {
	var (
		raw []byte
		err error
	)

	switch cv := v.(type) {
	case []byte:
		raw = cv
	case json.RawMessage:
		raw = cv
	default:
		raw, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %T: %w", v, err)
		}
	}

	var generic interface{}

	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()

	if err := d.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode %T: %w", v, err)
	}

	return generic, nil
}
