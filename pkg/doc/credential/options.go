/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
)

type options struct {
	clock cid.Clock
}

// Opt configures claims building and validation.
type Opt func(opts *options)

// WithClock sets the time source used for iat stamping and temporal checks.
func WithClock(clock cid.Clock) Opt {
	return func(opts *options) {
		opts.clock = clock
	}
}

func getOptions(opts []Opt) *options {
	o := &options{clock: cid.Now}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *options) now() int64 {
	return o.clock().Unix()
}
