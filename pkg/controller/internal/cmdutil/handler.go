/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cmdutil binds controller operations to the rest.Handler and command.Handler interfaces.
package cmdutil

import (
	"net/http"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
)

// HTTPHandler routes one REST endpoint.
type HTTPHandler struct {
	path, method string
	handle       http.HandlerFunc
}

// NewHTTPHandler binds handle to method and path.
func NewHTTPHandler(path, method string, handle http.HandlerFunc) *HTTPHandler {
	return &HTTPHandler{path: path, method: method, handle: handle}
}

// Path of the endpoint.
func (h *HTTPHandler) Path() string { return h.path }

// Method of the endpoint.
func (h *HTTPHandler) Method() string { return h.method }

// Handle returns the endpoint handler.
func (h *HTTPHandler) Handle() http.HandlerFunc { return h.handle }

// CommandHandler routes one controller command.
type CommandHandler struct {
	name, method string
	exec         command.Exec
}

// NewCommandHandler binds exec to the command name and method.
func NewCommandHandler(name, method string, exec command.Exec) *CommandHandler {
	return &CommandHandler{name: name, method: method, exec: exec}
}

// Name of the command.
func (c *CommandHandler) Name() string { return c.name }

// Method of the command.
func (c *CommandHandler) Method() string { return c.method }

// Handle returns the command executor.
func (c *CommandHandler) Handle() command.Exec { return c.exec }
