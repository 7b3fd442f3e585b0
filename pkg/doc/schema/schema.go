/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package schema validates headers, claims and metadata documents against their JSON schemas.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3/json"
	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation is returned when a value does not conform to a schema.
var ErrSchemaViolation = errors.New("schema violation")

// Schema is a compiled JSON schema. It is safe for concurrent use.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

//nolint:gochecknoglobals
var (
	// Header is the schema of credential headers.
	Header = mustCompile("header", headerSchema)
	// CreateClaims is the schema of Create claims.
	CreateClaims = mustCompile("Create claims", createClaimsSchema)
	// LicenseClaims is the schema of License claims.
	LicenseClaims = mustCompile("License claims", licenseClaimsSchema)
	// MetadataDocument is the schema of the fields of a metadata document read by this module.
	MetadataDocument = mustCompile("metadata document", metadataDocumentSchema)
)

// New compiles a JSON schema.
func New(name, jsonSchema string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(jsonSchema))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}

	return &Schema{name: name, schema: s}, nil
}

// Name returns the name of the schema.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks value against s. value may be a Go value (marshalled through its JSON tags)
// or raw JSON bytes.
func Validate(value interface{}, s *Schema) error {
	raw, ok := value.([]byte)
	if !ok {
		var err error

		// json.Number values decoded with UseNumber are written back as number literals.
		raw, err = json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %T for %s: %w", value, s.name, err)
		}
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validation of %s: %w", s.name, err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %s", ErrSchemaViolation, describeSchemaValidationError(result, s.name))
	}

	return nil
}

func describeSchemaValidationError(result *gojsonschema.Result, what string) string {
	descs := make([]string, 0, len(result.Errors()))

	for _, desc := range result.Errors() {
		descs = append(descs, desc.String())
	}

	return what + " is not valid: " + strings.Join(descs, "; ")
}

func mustCompile(name, jsonSchema string) *Schema {
	s, err := New(name, jsonSchema)
	if err != nil {
		panic(err)
	}

	return s
}
