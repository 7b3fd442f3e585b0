/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rights issues and verifies signed, content-addressed credentials asserting rights facts:
// the creation of a work, or a license over it.
//
// Packages for end developer usage
//
// pkg/doc/credential: Header and claims builders, the claims validator, signing and verification.
//
// pkg/doc/metadata: Album, Composition and Recording metadata documents and their authorized roles.
//
// pkg/controller: Command and REST handlers exposing the credential operations.
//
// cmd/rights-credential-rest: REST server for the controller handlers.
//
// Basic workflow
//
//      1) Build a header from the issuer public key with credential.BuildHeader.
//      2) Build claims with credential.NewCreateClaims or credential.NewLicenseClaims.
//      3) Sign them with credential.Sign.
//      4) Verify header, claims, metadata document and signature with credential.VerifyStrict.
package rights
