/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rest adapts controller commands to HTTP handlers.
package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
)

var logger = log.New("rights-credentials/rest")

// Handler http handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

// genericErrorBody is the body of every error response.
type genericErrorBody struct {
	Code    command.Code `json:"code"`
	Message string       `json:"message"`
}

// Execute runs exec with req as input and writes either its response or its error to rw.
func Execute(exec command.Exec, rw http.ResponseWriter, req io.Reader) {
	rw.Header().Set("Content-Type", "application/json")

	if err := exec(rw, req); err != nil {
		SendError(rw, err)
	}
}

// SendError writes a command error: validation errors as 400 and execution errors as 500.
func SendError(rw http.ResponseWriter, err command.Error) {
	status := http.StatusInternalServerError
	if err.Type() == command.ValidationError {
		status = http.StatusBadRequest
	}

	SendHTTPStatusError(rw, status, err.Code(), err)
}

// SendHTTPStatusError writes an error body with the given status and code.
func SendHTTPStatusError(rw http.ResponseWriter, httpStatus int, code command.Code, err error) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(httpStatus)

	if e := json.NewEncoder(rw).Encode(genericErrorBody{Code: code, Message: err.Error()}); e != nil {
		logger.Errorf("Unable to send error response, %s", e)
	}
}
