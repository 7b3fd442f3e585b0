/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which check rejected a credential.
//
// An ErrorKind is itself an error so callers can match with errors.Is(err, credential.Expired).
type ErrorKind int

const (
	// MalformedKey is a raw key of the wrong length or shape.
	MalformedKey ErrorKind = iota + 1
	// UnsupportedAlgorithm is a header alg or curve outside EdDsa/ES256.
	UnsupportedAlgorithm
	// InvalidHeader is a header violating its schema or the alg/key consistency rules.
	InvalidHeader
	// SchemaViolation is claims not matching the schema of their declared typ.
	SchemaViolation
	// UnsupportedType is a claims typ other than Create or License.
	UnsupportedType
	// FutureIssuance is iat later than now.
	FutureIssuance
	// SelfAudience is a License whose issuer is also in its audience.
	SelfAudience
	// ExpBeforeIat is exp not after iat.
	ExpBeforeIat
	// ExpBeforeNbf is exp not after nbf.
	ExpBeforeNbf
	// Expired is exp not after now.
	Expired
	// NbfBeforeIat is nbf not after iat.
	NbfBeforeIat
	// NotYetValid is nbf later than now.
	NotYetValid
	// IdentifierMismatch is a jti not matching the content identifier of the claims.
	IdentifierMismatch
	// SubjectMismatch is a sub not matching the metadata document content identifier.
	SubjectMismatch
	// UnsupportedMetadataType is a metadata document @type without a role mapping.
	UnsupportedMetadataType
	// UnauthorizedIssuer is an issuer missing from the document's role addresses.
	UnauthorizedIssuer
	// KeyIssuerMismatch is an issuer that is not the address of the header key.
	KeyIssuerMismatch
	// BadSignature is a signature that does not verify.
	BadSignature
)

//nolint:gochecknoglobals
var kindNames = map[ErrorKind]string{
	MalformedKey:            "MalformedKey",
	UnsupportedAlgorithm:    "UnsupportedAlgorithm",
	InvalidHeader:           "InvalidHeader",
	SchemaViolation:         "SchemaViolation",
	UnsupportedType:         "UnsupportedType",
	FutureIssuance:          "FutureIssuance",
	SelfAudience:            "SelfAudience",
	ExpBeforeIat:            "ExpBeforeIat",
	ExpBeforeNbf:            "ExpBeforeNbf",
	Expired:                 "Expired",
	NbfBeforeIat:            "NbfBeforeIat",
	NotYetValid:             "NotYetValid",
	IdentifierMismatch:      "IdentifierMismatch",
	SubjectMismatch:         "SubjectMismatch",
	UnsupportedMetadataType: "UnsupportedMetadataType",
	UnauthorizedIssuer:      "UnauthorizedIssuer",
	KeyIssuerMismatch:       "KeyIssuerMismatch",
	BadSignature:            "BadSignature",
}

// String returns the name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error implements error.
func (k ErrorKind) Error() string {
	return k.String()
}

// Kinds returns every defined kind in declaration order.
func Kinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, len(kindNames))

	for k := MalformedKey; k <= BadSignature; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// Error is a credential failure of a given kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an ErrorKind of the same value.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)

	return ok && kind == e.Kind
}

// KindOf returns the kind of err, or 0 when err is not a credential error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
