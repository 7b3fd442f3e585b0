/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential serves the rights credential commands over REST.
package credential

import (
	"net/http"

	"github.com/rightsledger/rights-credentials/pkg/controller/command/credential"
	"github.com/rightsledger/rights-credentials/pkg/controller/internal/cmdutil"
	"github.com/rightsledger/rights-credentials/pkg/controller/rest"
)

// REST paths.
const (
	OperationID           = "/credential"
	GenerateKeyPairPath   = OperationID + "/keys"
	BuildHeaderPath       = OperationID + "/header"
	CreateClaimsPath      = OperationID + "/claims"
	ComputeIdentifierPath = OperationID + "/identifier"
	SignPath              = OperationID + "/sign"
	VerifyPath            = OperationID + "/verify"
)

// Operation contains the credential REST operations.
type Operation struct {
	handlers []rest.Handler
	command  *credential.Command
}

// New returns the credential REST operations over cmd.
func New(cmd *credential.Command) *Operation {
	o := &Operation{command: cmd}
	o.registerHandler()

	return o
}

// GetRESTHandlers get all controller API handler available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

func (o *Operation) registerHandler() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(GenerateKeyPairPath, http.MethodPost, o.GenerateKeyPair),
		cmdutil.NewHTTPHandler(BuildHeaderPath, http.MethodPost, o.BuildHeader),
		cmdutil.NewHTTPHandler(CreateClaimsPath, http.MethodPost, o.CreateClaims),
		cmdutil.NewHTTPHandler(ComputeIdentifierPath, http.MethodPost, o.ComputeIdentifier),
		cmdutil.NewHTTPHandler(SignPath, http.MethodPost, o.Sign),
		cmdutil.NewHTTPHandler(VerifyPath, http.MethodPost, o.Verify),
	}
}

// GenerateKeyPair swagger:route POST /credential/keys credential generateKeyPairReq
//
// Generates a key pair with its address and header. The secret key is returned once and not kept.
//
// Responses:
//    default: genericError
//        200: generateKeyPairRes
func (o *Operation) GenerateKeyPair(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.GenerateKeyPair, rw, req.Body)
}

// BuildHeader swagger:route POST /credential/header credential buildHeaderReq
//
// Builds the header of a raw public key.
//
// Responses:
//    default: genericError
//        200: buildHeaderRes
func (o *Operation) BuildHeader(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.BuildHeader, rw, req.Body)
}

// CreateClaims swagger:route POST /credential/claims credential createClaimsReq
//
// Builds identified Create or License claims issued now.
//
// Responses:
//    default: genericError
//        200: createClaimsRes
func (o *Operation) CreateClaims(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.CreateClaims, rw, req.Body)
}

// ComputeIdentifier swagger:route POST /credential/identifier credential computeIdentifierReq
//
// Computes the content identifier of claims.
//
// Responses:
//    default: genericError
//        200: computeIdentifierRes
func (o *Operation) ComputeIdentifier(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ComputeIdentifier, rw, req.Body)
}

// Sign swagger:route POST /credential/sign credential signReq
//
// Signs claims under a header.
//
// Responses:
//    default: genericError
//        200: signRes
func (o *Operation) Sign(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.Sign, rw, req.Body)
}

// Verify swagger:route POST /credential/verify credential verifyReq
//
// Verifies a credential against its metadata document.
//
// Responses:
//    default: genericError
//        200: verifyRes
func (o *Operation) Verify(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.Verify, rw, req.Body)
}
