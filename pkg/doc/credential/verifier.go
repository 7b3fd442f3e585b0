/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/rightsledger/rights-credentials/pkg/doc/metadata"
)

var logger = log.New("rights-credentials/credential")

// Credential is a header, claims and signature triple.
type Credential struct {
	Header    *Header
	Claims    *Claims
	Signature []byte
}

// Issue signs claims under header and returns the resulting credential.
func Issue(claims *Claims, header *Header, secretKey []byte) (*Credential, error) {
	sig, err := Sign(claims, header, secretKey)
	if err != nil {
		return nil, err
	}

	return &Credential{Header: header, Claims: claims, Signature: sig}, nil
}

// Verify checks the credential against the metadata document its claims reference.
func (c *Credential) Verify(doc *metadata.Document, opts ...Opt) error {
	return VerifyStrict(c.Claims, c.Header, doc, c.Signature, opts...)
}

// VerifyStrict checks header, claims, signer identity and signature in that order and returns
// the first failure as an *Error.
func VerifyStrict(claims *Claims, header *Header, doc *metadata.Document, sig []byte, opts ...Opt) error {
	err := verify(claims, header, doc, sig, opts)
	if err != nil {
		logger.Debugf("credential rejected [%s]: %s", KindOf(err), err.Error())
	}

	return err
}

// Verify reports whether the credential is valid. Use VerifyStrict to learn why it is not.
func Verify(claims *Claims, header *Header, doc *metadata.Document, sig []byte, opts ...Opt) bool {
	return VerifyStrict(claims, header, doc, sig, opts...) == nil
}

func verify(claims *Claims, header *Header, doc *metadata.Document, sig []byte, opts []Opt) error {
	if err := header.Validate(); err != nil {
		return err
	}

	if err := ValidateClaims(claims, doc, opts...); err != nil {
		return err
	}

	signer, err := header.SignerAddress()
	if err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	if signer != claims.Issuer {
		return newError(KeyIssuerMismatch, "key address %s, iss %s", signer, claims.Issuer)
	}

	// Validate has already mapped the alg to a suite.
	suite, err := suiteFor(header.Algorithm)
	if err != nil {
		return err
	}

	key, err := header.JWK.PublicKeyBytes()
	if err != nil {
		return &Error{Kind: InvalidHeader, Err: err}
	}

	input, err := SigningInput(header, claims)
	if err != nil {
		return &Error{Kind: BadSignature, Err: err}
	}

	if err = suite.Verify(input, key, sig); err != nil {
		return &Error{Kind: BadSignature, Err: fmt.Errorf("verify signature: %w", err)}
	}

	return nil
}
