/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"github.com/rightsledger/rights-credentials/pkg/controller/command/credential"
)

// generateKeyPairReq model
//
// swagger:parameters generateKeyPairReq
type generateKeyPairReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.KeyPairRequest
}

// generateKeyPairRes model
//
// swagger:response generateKeyPairRes
type generateKeyPairRes struct { // nolint: unused,deadcode
	// in: body
	credential.KeyPairResponse
}

// buildHeaderReq model
//
// swagger:parameters buildHeaderReq
type buildHeaderReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.BuildHeaderRequest
}

// buildHeaderRes model
//
// swagger:response buildHeaderRes
type buildHeaderRes struct { // nolint: unused,deadcode
	// in: body
	credential.HeaderResponse
}

// createClaimsReq model
//
// swagger:parameters createClaimsReq
type createClaimsReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.CreateClaimsRequest
}

// createClaimsRes model
//
// swagger:response createClaimsRes
type createClaimsRes struct { // nolint: unused,deadcode
	// in: body
	credential.ClaimsResponse
}

// computeIdentifierReq model
//
// swagger:parameters computeIdentifierReq
type computeIdentifierReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.IdentifierRequest
}

// computeIdentifierRes model
//
// swagger:response computeIdentifierRes
type computeIdentifierRes struct { // nolint: unused,deadcode
	// in: body
	credential.IdentifierResponse
}

// signReq model
//
// swagger:parameters signReq
type signReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.SignRequest
}

// signRes model
//
// swagger:response signRes
type signRes struct { // nolint: unused,deadcode
	// in: body
	credential.SignResponse
}

// verifyReq model
//
// swagger:parameters verifyReq
type verifyReq struct { // nolint: unused,deadcode
	// in: body
	Params credential.VerifyRequest
}

// verifyRes model
//
// swagger:response verifyRes
type verifyRes struct { // nolint: unused,deadcode
	// in: body
	credential.VerifyResponse
}
