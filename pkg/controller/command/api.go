/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package command holds the transport independent controller commands and their error model.
package command

import (
	"encoding/json"
	"io"

	"github.com/hyperledger/aries-framework-go/spi/log"
)

// Exec runs a command: it reads a JSON request from req and writes a JSON response to rw.
type Exec func(rw io.Writer, req io.Reader) Error

// Handler names one command and the Exec serving it.
type Handler interface {
	Name() string
	Method() string
	Handle() Exec
}

// WriteNillableResponse encodes v as JSON into w, writing {} for a nil v.
// Encoding failures are reported to l.
func WriteNillableResponse(w io.Writer, v interface{}, l log.Logger) {
	if v == nil {
		v = struct{}{}
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Errorf("Unable to send error response, %s", err)
	}
}
