/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"

	"github.com/rightsledger/rights-credentials/pkg/doc/metadata"
	"github.com/rightsledger/rights-credentials/pkg/doc/schema"
)

// ValidateClaims checks claims against the metadata document they reference.
// Checks run in a fixed order and the first failure is returned as an *Error.
func ValidateClaims(claims *Claims, doc *metadata.Document, opts ...Opt) error {
	if claims == nil {
		return newError(SchemaViolation, "claims are missing")
	}

	if claims.Type == "" {
		return newError(SchemaViolation, "claims typ is missing")
	}

	s, ok := claimSchemas[claims.Type]
	if !ok {
		return newError(UnsupportedType, "claims typ %q", claims.Type)
	}

	if err := schema.Validate(claims, s); err != nil {
		return &Error{Kind: SchemaViolation, Err: err}
	}

	now := getOptions(opts).now()
	iat := dateValue(claims.IssuedAt)

	if iat > now {
		return newError(FutureIssuance, "iat %d is after %d", iat, now)
	}

	for _, aud := range claims.Audience {
		if aud == claims.Issuer {
			return newError(SelfAudience, "issuer %s is in the audience", claims.Issuer)
		}
	}

	if err := checkExpiry(claims, iat, now); err != nil {
		return err
	}

	if err := checkNotBefore(claims, iat, now); err != nil {
		return err
	}

	id, err := Identifier(claims)
	if err != nil {
		return &Error{Kind: IdentifierMismatch, Err: err}
	}

	if id != claims.ID {
		return newError(IdentifierMismatch, "jti %s, computed %s", claims.ID, id)
	}

	return checkDocument(claims, doc)
}

func checkExpiry(claims *Claims, iat, now int64) error {
	if claims.Expiry == nil {
		return nil
	}

	exp := dateValue(claims.Expiry)

	if exp <= iat {
		return newError(ExpBeforeIat, "exp %d is not after iat %d", exp, iat)
	}

	if claims.NotBefore != nil && exp <= dateValue(claims.NotBefore) {
		return newError(ExpBeforeNbf, "exp %d is not after nbf %d", exp, dateValue(claims.NotBefore))
	}

	if exp <= now {
		return newError(Expired, "exp %d is not after %d", exp, now)
	}

	return nil
}

func checkNotBefore(claims *Claims, iat, now int64) error {
	if claims.NotBefore == nil {
		return nil
	}

	nbf := dateValue(claims.NotBefore)

	if nbf <= iat {
		return newError(NbfBeforeIat, "nbf %d is not after iat %d", nbf, iat)
	}

	if nbf > now {
		return newError(NotYetValid, "nbf %d is after %d", nbf, now)
	}

	return nil
}

func checkDocument(claims *Claims, doc *metadata.Document) error {
	if doc == nil {
		return newError(SubjectMismatch, "metadata document is missing")
	}

	if doc.ContentID != claims.Subject {
		return newError(SubjectMismatch, "sub %s, document %s", claims.Subject, doc.ContentID)
	}

	authorized, err := doc.IsAuthorized(claims.Issuer)
	if errors.Is(err, metadata.ErrUnsupportedType) {
		return &Error{Kind: UnsupportedMetadataType, Err: err}
	}

	if err != nil {
		return &Error{Kind: UnauthorizedIssuer, Err: err}
	}

	if !authorized {
		return newError(UnauthorizedIssuer, "%s holds no %s role", claims.Issuer, doc.Type)
	}

	return nil
}
