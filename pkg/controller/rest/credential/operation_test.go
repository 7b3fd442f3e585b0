/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
	"github.com/rightsledger/rights-credentials/pkg/controller/command/credential"
	"github.com/rightsledger/rights-credentials/pkg/controller/rest"
	"github.com/rightsledger/rights-credentials/pkg/doc/metadata"
)

const now int64 = 1700000000

func newOperation() *Operation {
	return New(credential.New(credential.WithClock(func() time.Time { return time.Unix(now, 0) })))
}

func TestNew(t *testing.T) {
	op := newOperation()
	require.Len(t, op.GetRESTHandlers(), 6)

	for _, h := range op.GetRESTHandlers() {
		require.Equal(t, http.MethodPost, h.Method())
	}
}

func TestIssueAndVerify(t *testing.T) {
	r := require.New(t)
	op := newOperation()

	var composer credential.KeyPairResponse
	post(t, op, GenerateKeyPairPath, &credential.KeyPairRequest{Curve: "secp256k1"}, &composer)

	rawDoc := []byte(fmt.Sprintf(`{"@type":"Composition","composer":[%q]}`, composer.Address))
	doc, err := metadata.Parse(rawDoc)
	r.NoError(err)

	var claims credential.ClaimsResponse
	post(t, op, CreateClaimsPath, &credential.CreateClaimsRequest{
		Type:    "Create",
		Issuer:  composer.Address,
		Subject: doc.ContentID,
	}, &claims)

	rawClaims, err := json.Marshal(claims.Claims)
	r.NoError(err)

	var signed credential.SignResponse
	post(t, op, SignPath, &credential.SignRequest{
		Header:    composer.Header,
		Claims:    rawClaims,
		SecretKey: composer.SecretKey,
	}, &signed)

	var verdict credential.VerifyResponse
	post(t, op, VerifyPath, &credential.VerifyRequest{Credential: signed.Credential, Metadata: rawDoc}, &verdict)
	r.True(verdict.Verified, verdict.Message)

	other := []byte(fmt.Sprintf(`{"@type":"Composition","title":"other","composer":[%q]}`, composer.Address))

	verdict = credential.VerifyResponse{}
	post(t, op, VerifyPath, &credential.VerifyRequest{Credential: signed.Credential, Metadata: other}, &verdict)
	r.False(verdict.Verified)
	r.Equal("SubjectMismatch", verdict.Kind)

	var header credential.HeaderResponse
	post(t, op, BuildHeaderPath, &credential.BuildHeaderRequest{PublicKey: composer.PublicKey, Curve: "secp256k1"},
		&header)
	r.Equal(composer.Header, header.Header)

	var id credential.IdentifierResponse
	post(t, op, ComputeIdentifierPath, &credential.IdentifierRequest{Claims: rawClaims}, &id)
	r.Equal(claims.Claims.ID, id.Identifier)
}

func TestErrorStatus(t *testing.T) {
	op := newOperation()

	body, status := send(t, op, BuildHeaderPath, bytes.NewBufferString(`{"publicKey":"AAAA","curve":"Ed25519"}`))
	require.Equal(t, http.StatusBadRequest, status)
	verifyError(t, credential.BuildHeaderErrorCode, "MalformedKey", body)

	body, status = send(t, op, VerifyPath, bytes.NewBufferString(`{`))
	require.Equal(t, http.StatusBadRequest, status)
	verifyError(t, credential.InvalidRequestErrorCode, "request decode", body)
}

func post(t *testing.T, op *Operation, path string, request, response interface{}) {
	t.Helper()

	reqBytes, err := json.Marshal(request)
	require.NoError(t, err)

	body, status := send(t, op, path, bytes.NewBuffer(reqBytes))
	require.Equal(t, http.StatusOK, status, body.String())
	require.NoError(t, json.Unmarshal(body.Bytes(), response))
}

func send(t *testing.T, op *Operation, path string, requestBody io.Reader) (*bytes.Buffer, int) {
	t.Helper()

	handler := lookupHandler(t, op, path)

	req, err := http.NewRequest(handler.Method(), path, requestBody)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr.Body, rr.Code
}

func lookupHandler(t *testing.T, op *Operation, path string) rest.Handler {
	t.Helper()

	for _, h := range op.GetRESTHandlers() {
		if h.Path() == path {
			return h
		}
	}

	require.Fail(t, "unable to find handler")

	return nil
}

func verifyError(t *testing.T, expectedCode command.Code, expectedMsg string, data *bytes.Buffer) {
	t.Helper()

	errResponse := struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{}
	require.NoError(t, json.Unmarshal(data.Bytes(), &errResponse))
	require.EqualValues(t, expectedCode, errResponse.Code)
	require.Contains(t, errResponse.Message, expectedMsg)
}
