/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
)

// EncodeSegment returns the base64url encoding of the canonical JSON of v.
func EncodeSegment(v interface{}) (string, error) {
	return cid.EncodeValue(v)
}

// SigningInput returns the bytes covered by the credential signature:
// the encoded header and encoded claims joined by a dot.
func SigningInput(header *Header, claims *Claims) ([]byte, error) {
	encodedHeader, err := EncodeSegment(header)
	if err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}

	encodedClaims, err := EncodeSegment(claims)
	if err != nil {
		return nil, fmt.Errorf("encode claims: %w", err)
	}

	return []byte(encodedHeader + "." + encodedClaims), nil
}

// Sign signs claims under header with secretKey, using the suite selected by header alg.
// No validation of header or claims is performed.
func Sign(claims *Claims, header *Header, secretKey []byte) ([]byte, error) {
	suite, err := suiteFor(header.Algorithm)
	if err != nil {
		return nil, err
	}

	input, err := SigningInput(header, claims)
	if err != nil {
		return nil, err
	}

	sig, err := suite.Sign(input, secretKey)
	if err != nil {
		return nil, &Error{Kind: MalformedKey, Err: fmt.Errorf("sign credential: %w", err)}
	}

	return sig, nil
}
