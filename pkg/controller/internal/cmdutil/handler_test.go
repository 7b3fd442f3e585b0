/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmdutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
)

func TestHTTPHandler(t *testing.T) {
	h := NewHTTPHandler("/credential/verify", http.MethodPost, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	require.Equal(t, "/credential/verify", h.Path())
	require.Equal(t, http.MethodPost, h.Method())

	rr := httptest.NewRecorder()
	h.Handle()(rr, httptest.NewRequest(http.MethodPost, "/credential/verify", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestCommandHandler(t *testing.T) {
	called := false

	h := NewCommandHandler("credential", "Verify", func(io.Writer, io.Reader) command.Error {
		called = true

		return nil
	})

	require.Equal(t, "credential", h.Name())
	require.Equal(t, "Verify", h.Method())
	require.Nil(t, h.Handle()(nil, nil))
	require.True(t, called)
}
