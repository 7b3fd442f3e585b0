/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/go-jose/go-jose/v3/json"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/mitchellh/mapstructure"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/schema"
)

// ClaimType discriminates the claims variants.
type ClaimType string

const (
	// Create asserts the creation of a work.
	Create ClaimType = "Create"
	// License grants the audience rights over a work until exp.
	License ClaimType = "License"
)

//nolint:gochecknoglobals
var claimSchemas = map[ClaimType]*schema.Schema{
	Create:  schema.CreateClaims,
	License: schema.LicenseClaims,
}

// Claims is the signed payload of a credential. Timestamps are Unix seconds.
//
// Claims values are not modified by this package; builders return copies.
type Claims struct {
	Audience  []string         `json:"aud,omitempty" mapstructure:"aud"`
	Expiry    *jwt.NumericDate `json:"exp,omitempty" mapstructure:"exp"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty" mapstructure:"iat"`
	Issuer    string           `json:"iss" mapstructure:"iss"`
	ID        string           `json:"jti,omitempty" mapstructure:"jti"`
	NotBefore *jwt.NumericDate `json:"nbf,omitempty" mapstructure:"nbf"`
	Subject   string           `json:"sub" mapstructure:"sub"`
	Type      ClaimType        `json:"typ" mapstructure:"typ"`
}

// NewCreateClaims builds identified Create claims issued now by iss about sub.
func NewCreateClaims(iss, sub string, opts ...Opt) (*Claims, error) {
	return AssignIdentifier(StampIssuedAt(&Claims{
		Issuer:  iss,
		Subject: sub,
		Type:    Create,
	}, opts...))
}

// NewLicenseClaims builds identified License claims issued now by iss about sub to aud.
// nbf is optional.
func NewLicenseClaims(iss, sub string, aud []string, exp time.Time, nbf *time.Time, opts ...Opt) (*Claims, error) {
	audience := append([]string(nil), aud...)
	sort.Strings(audience)

	c := &Claims{
		Audience: audience,
		Expiry:   jwt.NewNumericDate(exp),
		Issuer:   iss,
		Subject:  sub,
		Type:     License,
	}

	if nbf != nil {
		c.NotBefore = jwt.NewNumericDate(*nbf)
	}

	return AssignIdentifier(StampIssuedAt(c, opts...))
}

// StampIssuedAt returns a copy of c with iat set to the current time.
func StampIssuedAt(c *Claims, opts ...Opt) *Claims {
	stamped := c.clone()
	iat := jwt.NumericDate(getOptions(opts).now())
	stamped.IssuedAt = &iat

	return stamped
}

// AssignIdentifier returns a copy of c with jti set to its content identifier.
func AssignIdentifier(c *Claims) (*Claims, error) {
	id, err := Identifier(c)
	if err != nil {
		return nil, err
	}

	identified := c.clone()
	identified.ID = id

	return identified, nil
}

// Identifier computes the content identifier of c over every field except jti.
func Identifier(c *Claims) (string, error) {
	content := c.clone()
	content.ID = ""

	id, err := cid.IdentifierOf(content)
	if err != nil {
		return "", fmt.Errorf("claims identifier: %w", err)
	}

	return id, nil
}

// ClaimsFromMap decodes claims from a generic JSON object, checking it against the schema of its typ.
func ClaimsFromMap(m map[string]interface{}) (*Claims, error) {
	typ, ok := m["typ"].(string)
	if !ok {
		return nil, newError(SchemaViolation, "claims typ is missing")
	}

	s, ok := claimSchemas[ClaimType(typ)]
	if !ok {
		return nil, newError(UnsupportedType, "claims typ %q", typ)
	}

	if err := schema.Validate(m, s); err != nil {
		return nil, &Error{Kind: SchemaViolation, Err: err}
	}

	c, err := decodeClaims(m)
	if err != nil {
		return nil, &Error{Kind: SchemaViolation, Err: err}
	}

	return c, nil
}

// ParseClaims decodes claims from raw JSON. Integer timestamps are decoded exactly.
func ParseClaims(raw []byte) (*Claims, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return nil, &Error{Kind: SchemaViolation, Err: fmt.Errorf("unmarshal claims: %w", err)}
	}

	if m == nil {
		return nil, newError(SchemaViolation, "claims are null")
	}

	return ClaimsFromMap(m)
}

// UnmarshalJSON decodes claims without schema validation, keeping integer timestamps exact.
func (c *Claims) UnmarshalJSON(raw []byte) error {
	m, err := decodeObject(raw)
	if err != nil {
		return err
	}

	if m == nil {
		return nil
	}

	decoded, err := decodeClaims(m)
	if err != nil {
		return err
	}

	*c = *decoded

	return nil
}

func decodeObject(raw []byte) (map[string]interface{}, error) {
	var m map[string]interface{}

	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()

	if err := d.Decode(&m); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeClaims(m map[string]interface{}) (*Claims, error) {
	c := &Claims{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: numericDateHook,
		Result:     c,
	})
	if err != nil {
		return nil, fmt.Errorf("new claims decoder: %w", err)
	}

	if err = decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}

	return c, nil
}

func numericDateHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(jwt.NumericDate(0)) {
		return data, nil
	}

	switch v := data.(type) {
	case interface{ Int64() (int64, error) }:
		secs, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("numeric date %v: %w", v, err)
		}

		return jwt.NumericDate(secs), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return nil, fmt.Errorf("numeric date %v is not an int64", v)
		}

		return jwt.NumericDate(int64(v)), nil
	case int64:
		return jwt.NumericDate(v), nil
	case int:
		return jwt.NumericDate(int64(v)), nil
	}

	secs, err := strconv.ParseInt(fmt.Sprint(data), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("numeric date %v: %w", data, err)
	}

	return jwt.NumericDate(secs), nil
}

func (c *Claims) clone() *Claims {
	copied := *c

	if c.Audience != nil {
		copied.Audience = append([]string(nil), c.Audience...)
	}

	copied.Expiry = cloneDate(c.Expiry)
	copied.IssuedAt = cloneDate(c.IssuedAt)
	copied.NotBefore = cloneDate(c.NotBefore)

	return &copied
}

func cloneDate(d *jwt.NumericDate) *jwt.NumericDate {
	if d == nil {
		return nil
	}

	v := *d

	return &v
}

func dateValue(d *jwt.NumericDate) int64 {
	return int64(*d)
}
