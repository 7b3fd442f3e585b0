/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata reads the parts of rights metadata documents that credentials depend on:
// the document type, the addresses listed in its author roles and its content identifier.
package metadata

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v3/json"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/schema"
)

// Type is the @type of a metadata document.
type Type string

const (
	// Album documents list their artists.
	Album Type = "Album"
	// Composition documents list composers and lyricists.
	Composition Type = "Composition"
	// Recording documents list performers and producers.
	Recording Type = "Recording"
)

// ErrUnsupportedType is returned for documents whose @type has no role mapping.
var ErrUnsupportedType = errors.New("unsupported metadata document type")

// Document is a parsed metadata document.
type Document struct {
	Type      Type     `json:"@type" mapstructure:"@type"`
	Artist    []string `json:"artist,omitempty" mapstructure:"artist"`
	Composer  []string `json:"composer,omitempty" mapstructure:"composer"`
	Lyricist  []string `json:"lyricist,omitempty" mapstructure:"lyricist"`
	Performer []string `json:"performer,omitempty" mapstructure:"performer"`
	Producer  []string `json:"producer,omitempty" mapstructure:"producer"`

	// ContentID is the content identifier of the whole document.
	ContentID string `json:"-" mapstructure:"-"`
}

type roleSelector func(d *Document) []string

//nolint:gochecknoglobals
var roles = map[Type]roleSelector{
	Album: func(d *Document) []string {
		return d.Artist
	},
	Composition: func(d *Document) []string {
		return union(d.Composer, d.Lyricist)
	},
	Recording: func(d *Document) []string {
		return union(d.Performer, d.Producer)
	},
}

// FromMap decodes a metadata document from its generic JSON form and computes its content identifier.
func FromMap(m map[string]interface{}) (*Document, error) {
	if err := schema.Validate(m, schema.MetadataDocument); err != nil {
		return nil, err
	}

	doc := &Document{}

	if err := mapstructure.Decode(m, doc); err != nil {
		return nil, fmt.Errorf("decode metadata document: %w", err)
	}

	id, err := cid.IdentifierOf(m)
	if err != nil {
		return nil, fmt.Errorf("metadata document content id: %w", err)
	}

	doc.ContentID = id

	return doc, nil
}

// Parse reads a metadata document from raw JSON and computes its content identifier.
func Parse(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("metadata document is not valid JSON")
	}

	if !gjson.ParseBytes(raw).IsObject() {
		return nil, errors.New("metadata document is not a JSON object")
	}

	var m map[string]interface{}

	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()

	if err := d.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode metadata document: %w", err)
	}

	return FromMap(m)
}

// RoleAddresses returns the addresses allowed to issue claims about the document.
func (d *Document) RoleAddresses() ([]string, error) {
	selector, ok := roles[d.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, d.Type)
	}

	return selector(d), nil
}

// IsAuthorized reports whether addr is listed in one of the document's author roles.
func (d *Document) IsAuthorized(addr string) (bool, error) {
	addrs, err := d.RoleAddresses()
	if err != nil {
		return false, err
	}

	for _, a := range addrs {
		if a == addr {
			return true, nil
		}
	}

	return false, nil
}

func union(sets ...[]string) []string {
	seen := make(map[string]struct{})

	var all []string

	for _, set := range sets {
		for _, v := range set {
			if _, ok := seen[v]; ok {
				continue
			}

			seen[v] = struct{}{}

			all = append(all, v)
		}
	}

	return all
}
