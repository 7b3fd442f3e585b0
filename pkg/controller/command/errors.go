/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package command

// Type tells whether a command failed on its input or while running.
type Type int32

const (
	// ValidationError marks a rejected request.
	ValidationError Type = iota
	// ExecuteError marks a failure while serving a valid request.
	ExecuteError
)

// Code identifies a command error. Each command owns the codes of one Group.
type Code int32

// UnknownStatus is the code of errors without a more specific one.
const UnknownStatus Code = 0

// Group is the first code of a block of error codes, a multiple of 1000.
type Group int32

const (
	// Common holds codes shared by every command.
	Common Group = 1000
	// Credential holds the codes of the credential command.
	Credential Group = 2000
)

// Error is a command failure carrying its Code and Type.
type Error interface {
	error
	Code() Code
	Type() Type
}

type commandError struct {
	error
	code    Code
	errType Type
}

// NewValidationError wraps err as a rejected request.
func NewValidationError(code Code, err error) Error {
	return &commandError{error: err, code: code, errType: ValidationError}
}

// NewExecuteError wraps err as a failure while serving a request.
func NewExecuteError(code Code, err error) Error {
	return &commandError{error: err, code: code, errType: ExecuteError}
}

func (e *commandError) Code() Code { return e.code }

func (e *commandError) Type() Type { return e.errType }

func (e *commandError) Unwrap() error { return e.error }
