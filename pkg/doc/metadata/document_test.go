/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/schema"
)

const (
	composer  = "z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH"
	lyricist  = "z6MkjchhfUsD6mmvni8mCdXHw216Xrm9bQe2mBH1P5RDjVJG"
	performer = "zQ3shokFTS3brHcDQrn82RUDfCZESWL1ZdCEJwekUDPQiYBme"
)

func TestFromMap(t *testing.T) {
	m := map[string]interface{}{
		"@type":    "Composition",
		"name":     "Lullaby",
		"composer": []interface{}{composer},
		"lyricist": []interface{}{lyricist, composer},
	}

	doc, err := FromMap(m)
	require.NoError(t, err)
	require.Equal(t, Composition, doc.Type)
	require.Equal(t, []string{composer}, doc.Composer)

	expectedID, err := cid.IdentifierOf(m)
	require.NoError(t, err)
	require.Equal(t, expectedID, doc.ContentID)

	addrs, err := doc.RoleAddresses()
	require.NoError(t, err)
	require.Equal(t, []string{composer, lyricist}, addrs)

	ok, err := doc.IsAuthorized(lyricist)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = doc.IsAuthorized(performer)
	require.NoError(t, err)
	require.False(t, ok)

	t.Run("schema violation", func(t *testing.T) {
		_, err := FromMap(map[string]interface{}{"composer": []interface{}{composer}})
		require.True(t, errors.Is(err, schema.ErrSchemaViolation))
	})
}

func TestParse(t *testing.T) {
	raw := []byte(`{
		"@type": "Recording",
		"name": "Lullaby (live)",
		"performer": ["` + performer + `"],
		"producer": ["` + composer + `"]
	}`)

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Equal(t, Recording, doc.Type)
	require.Equal(t, []string{performer}, doc.Performer)
	require.Equal(t, []string{composer}, doc.Producer)

	expectedID, err := cid.IdentifierOf(raw)
	require.NoError(t, err)
	require.Equal(t, expectedID, doc.ContentID)

	addrs, err := doc.RoleAddresses()
	require.NoError(t, err)
	require.Equal(t, []string{performer, composer}, addrs)

	t.Run("same content as map", func(t *testing.T) {
		fromMap, err := FromMap(map[string]interface{}{
			"producer":  []interface{}{composer},
			"performer": []interface{}{performer},
			"name":      "Lullaby (live)",
			"@type":     "Recording",
		})
		require.NoError(t, err)
		require.Equal(t, doc.ContentID, fromMap.ContentID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := Parse([]byte(`{"@type": `))
		require.Error(t, err)
		require.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := Parse([]byte(`{"@type": "Album", "artist": "` + composer + `"}`))
		require.True(t, errors.Is(err, schema.ErrSchemaViolation))
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := Parse([]byte(`["` + composer + `"]`))
		require.Error(t, err)
		require.Contains(t, err.Error(), "not a JSON object")
	})

	t.Run("large integers keep their content id", func(t *testing.T) {
		withCatalog := []byte(`{"@type":"Recording","performer":["` + performer + `"],"catalog":9007199254740993}`)

		parsed, err := Parse(withCatalog)
		require.NoError(t, err)

		expected, err := cid.IdentifierOf(withCatalog)
		require.NoError(t, err)
		require.Equal(t, expected, parsed.ContentID)

		rounded, err := Parse([]byte(`{"@type":"Recording","performer":["` + performer + `"],"catalog":9007199254740992}`))
		require.NoError(t, err)
		require.NotEqual(t, rounded.ContentID, parsed.ContentID)
	})
}

func TestRoleAddresses(t *testing.T) {
	tests := []struct {
		doc      Document
		expected []string
	}{
		{doc: Document{Type: Album, Artist: []string{performer}, Composer: []string{composer}}, expected: []string{performer}},
		{doc: Document{Type: Composition, Lyricist: []string{lyricist}}, expected: []string{lyricist}},
		{doc: Document{Type: Recording, Producer: []string{composer}}, expected: []string{composer}},
	}

	for _, tc := range tests {
		addrs, err := tc.doc.RoleAddresses()
		require.NoError(t, err)
		require.Equal(t, tc.expected, addrs)
	}

	doc := &Document{Type: "Work", Artist: []string{performer}}

	_, err := doc.RoleAddresses()
	require.True(t, errors.Is(err, ErrUnsupportedType))

	_, err = doc.IsAuthorized(performer)
	require.True(t, errors.Is(err, ErrUnsupportedType))
}
