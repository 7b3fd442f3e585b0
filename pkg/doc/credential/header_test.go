/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/jwk"
	"github.com/rightsledger/rights-credentials/pkg/doc/signature"
)

func TestBuildHeader(t *testing.T) {
	t.Run("ed25519", func(t *testing.T) {
		r := require.New(t)

		p := newParty(t, signature.Ed25519)

		r.Equal(EdDSA, p.header.Algorithm)
		r.Equal(JWTType, p.header.Type)
		r.Equal(&jwk.JWK{X: cid.Encode(p.pub), Crv: jwk.Ed25519Crv, Kty: jwk.OKPKty}, p.header.JWK)
		r.Len(p.header.JWK.X, 43)
		r.NoError(p.header.Validate())

		addr, err := p.header.SignerAddress()
		r.NoError(err)
		r.Equal(p.addr, addr)
	})

	t.Run("secp256k1", func(t *testing.T) {
		r := require.New(t)

		p := newParty(t, signature.Secp256k1)

		r.Equal(ES256, p.header.Algorithm)
		r.Equal(jwk.P256Crv, p.header.JWK.Crv)
		r.Equal(jwk.ECKty, p.header.JWK.Kty)
		r.Len(p.header.JWK.X, 43)
		r.Len(p.header.JWK.Y, 43)
		r.NoError(p.header.Validate())

		key, err := p.header.JWK.PublicKeyBytes()
		r.NoError(err)
		r.Equal(p.pub, key)
	})

	t.Run("malformed keys", func(t *testing.T) {
		for _, tc := range []struct {
			name  string
			key   []byte
			curve signature.Curve
		}{
			{"short ed25519", make([]byte, 31), signature.Ed25519},
			{"long ed25519", make([]byte, 33), signature.Ed25519},
			{"uncompressed secp256k1", make([]byte, 65), signature.Secp256k1},
			{"short secp256k1", make([]byte, 32), signature.Secp256k1},
			{"bad prefix secp256k1", append([]byte{0x05}, bytes.Repeat([]byte{1}, 32)...), signature.Secp256k1},
		} {
			h, err := BuildHeader(tc.key, tc.curve)
			require.Nil(t, h, tc.name)
			require.ErrorIs(t, err, MalformedKey, tc.name)
		}
	})

	t.Run("unsupported curve", func(t *testing.T) {
		h, err := BuildHeader(make([]byte, 32), signature.Curve(42))
		require.Nil(t, h)
		require.ErrorIs(t, err, UnsupportedAlgorithm)
	})
}

func TestSign(t *testing.T) {
	r := require.New(t)

	p := newParty(t, signature.Ed25519)
	doc := composition(t, "sign", p.addr)

	claims, err := NewCreateClaims(p.addr, doc.ContentID, at(now))
	r.NoError(err)

	input, err := SigningInput(p.header, claims)
	r.NoError(err)

	parts := strings.Split(string(input), ".")
	r.Len(parts, 2)

	headerJSON, err := cid.Decode(parts[0])
	r.NoError(err)
	r.JSONEq(`{"alg":"EdDsa","jwk":{"crv":"Ed25519","kty":"OKP","x":"`+p.header.JWK.X+`"},"typ":"JWT"}`,
		string(headerJSON))
	r.True(strings.HasPrefix(string(headerJSON), `{"alg":"EdDsa","jwk":{"crv":"Ed25519"`))

	claimsJSON, err := cid.Decode(parts[1])
	r.NoError(err)

	parsed, err := ParseClaims(claimsJSON)
	r.NoError(err)
	r.Equal(claims, parsed)

	encoded, err := EncodeSegment(claims)
	r.NoError(err)
	r.Equal(parts[1], encoded)

	sig, err := Sign(claims, p.header, p.secret)
	r.NoError(err)
	r.NoError(signature.NewEd25519Suite().Verify(input, p.pub, sig))

	_, err = Sign(claims, p.header, []byte("short"))
	r.ErrorIs(err, MalformedKey)

	unknown := *p.header
	unknown.Algorithm = "RS256"
	_, err = Sign(claims, &unknown, p.secret)
	r.ErrorIs(err, UnsupportedAlgorithm)
}
