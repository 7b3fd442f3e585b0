/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
)

const (
	decodeErrCode = command.Code(command.Credential) + iota
	signErrCode
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) genericErrorBody {
	t.Helper()

	var body genericErrorBody

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	return body
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name   string
		err    command.Error
		status int
	}{
		{
			name:   "validation error",
			err:    command.NewValidationError(decodeErrCode, errors.New("request decode failed")),
			status: http.StatusBadRequest,
		},
		{
			name:   "execute error",
			err:    command.NewExecuteError(signErrCode, errors.New("sign failed")),
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			SendError(rr, tc.err)

			require.Equal(t, tc.status, rr.Code)
			require.Equal(t, genericErrorBody{Code: tc.err.Code(), Message: tc.err.Error()}, decodeBody(t, rr))
		})
	}
}

func TestSendHTTPStatusError(t *testing.T) {
	rr := httptest.NewRecorder()
	SendHTTPStatusError(rr, http.StatusForbidden, command.UnknownStatus, errors.New("forbidden"))

	require.Equal(t, http.StatusForbidden, rr.Code)
	require.Equal(t, genericErrorBody{Code: command.UnknownStatus, Message: "forbidden"}, decodeBody(t, rr))

	// write failures are only logged
	SendHTTPStatusError(&failingWriter{}, http.StatusBadRequest, command.UnknownStatus, errors.New("lost"))
}

func TestExecute(t *testing.T) {
	t.Run("response", func(t *testing.T) {
		rr := httptest.NewRecorder()

		Execute(func(rw io.Writer, _ io.Reader) command.Error {
			_, err := rw.Write([]byte(`{"verified":true}`))
			require.NoError(t, err)

			return nil
		}, rr, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, `{"verified":true}`, rr.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		rr := httptest.NewRecorder()

		Execute(func(io.Writer, io.Reader) command.Error {
			return command.NewValidationError(decodeErrCode, fmt.Errorf("missing header"))
		}, rr, nil)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Equal(t, genericErrorBody{Code: decodeErrCode, Message: "missing header"}, decodeBody(t, rr))
	})
}

type failingWriter struct{}

func (failingWriter) Header() http.Header { return http.Header{} }

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection closed") }

func (failingWriter) WriteHeader(int) {}
