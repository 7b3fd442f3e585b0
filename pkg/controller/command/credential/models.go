/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
	"github.com/rightsledger/rights-credentials/pkg/doc/credential"
)

// KeyPairRequest selects the curve of a generated key pair.
type KeyPairRequest struct {
	Curve string `json:"curve"`
}

// KeyPairResponse is a generated key pair, its address and its header.
// Key bytes are base64url encoded without padding.
type KeyPairResponse struct {
	PublicKey string             `json:"publicKey"`
	SecretKey string             `json:"secretKey"`
	Address   string             `json:"address"`
	Header    *credential.Header `json:"header"`
}

// BuildHeaderRequest carries a raw public key.
type BuildHeaderRequest struct {
	PublicKey string `json:"publicKey"`
	Curve     string `json:"curve"`
}

// HeaderResponse is a header and its encoded segment.
type HeaderResponse struct {
	Header  *credential.Header `json:"header"`
	Encoded string             `json:"encoded"`
	Address string             `json:"address"`
}

// CreateClaimsRequest describes claims to build. Times are Unix seconds; now is used for iat.
type CreateClaimsRequest struct {
	Type      credential.ClaimType `json:"type"`
	Issuer    string               `json:"issuer"`
	Subject   string               `json:"subject"`
	Audience  []string             `json:"audience,omitempty"`
	Expiry    int64                `json:"expiry,omitempty"`
	NotBefore *int64               `json:"notBefore,omitempty"`
}

// ClaimsResponse is built claims and their encoded segment.
type ClaimsResponse struct {
	Claims  *credential.Claims `json:"claims"`
	Encoded string             `json:"encoded"`
}

// IdentifierRequest carries claims, with or without jti.
type IdentifierRequest struct {
	Claims json.RawMessage `json:"claims,omitempty"`
}

// IdentifierResponse is the content identifier of claims.
type IdentifierResponse struct {
	Identifier string `json:"identifier"`
	Matches    bool   `json:"matches"`
}

// SignRequest carries the header, claims and secret key to sign with. The key is not retained.
type SignRequest struct {
	Header    *credential.Header `json:"header"`
	Claims    json.RawMessage    `json:"claims,omitempty"`
	SecretKey string             `json:"secretKey"`
}

// SignResponse is the signature and the compact header.claims.signature form.
type SignResponse struct {
	Signature  string `json:"signature"`
	Credential string `json:"credential"`
}

// VerifyRequest carries a credential and the metadata document its claims reference.
//
// The credential is given either as Credential in compact form or as Header, Claims and Signature.
// VerifyTime overrides the current time, in Unix seconds.
type VerifyRequest struct {
	Credential string             `json:"credential,omitempty"`
	Header     *credential.Header `json:"header,omitempty"`
	Claims     json.RawMessage    `json:"claims,omitempty"`
	Signature  string             `json:"signature,omitempty"`
	Metadata   json.RawMessage    `json:"metadata,omitempty"`
	VerifyTime *int64             `json:"verifyTime,omitempty"`
}

// VerifyResponse is the verdict. Kind and Code name the first failed check.
type VerifyResponse struct {
	Verified bool         `json:"verified"`
	Kind     string       `json:"kind,omitempty"`
	Code     command.Code `json:"code,omitempty"`
	Message  string       `json:"message,omitempty"`
}
