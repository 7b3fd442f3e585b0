/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package controller assembles the controller commands and their REST handlers.
package controller

import (
	"github.com/rightsledger/rights-credentials/pkg/controller/command"
	credentialcmd "github.com/rightsledger/rights-credentials/pkg/controller/command/credential"
	"github.com/rightsledger/rights-credentials/pkg/controller/rest"
	credentialrest "github.com/rightsledger/rights-credentials/pkg/controller/rest/credential"
	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
)

type allOpts struct {
	clock cid.Clock
}

// Opt represents a controller option.
type Opt func(opts *allOpts)

// WithClock sets the time source of the credential commands.
func WithClock(clock cid.Clock) Opt {
	return func(opts *allOpts) {
		opts.clock = clock
	}
}

func credentialCommand(opts []Opt) *credentialcmd.Command {
	o := &allOpts{}

	for _, opt := range opts {
		opt(o)
	}

	var cmdOpts []credentialcmd.Opt
	if o.clock != nil {
		cmdOpts = append(cmdOpts, credentialcmd.WithClock(o.clock))
	}

	return credentialcmd.New(cmdOpts...)
}

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(opts ...Opt) []rest.Handler {
	return credentialrest.New(credentialCommand(opts)).GetRESTHandlers()
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(opts ...Opt) []command.Handler {
	return credentialCommand(opts).GetHandlers()
}
