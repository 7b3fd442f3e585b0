/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuiteFor(t *testing.T) {
	s, err := SuiteFor(Ed25519)
	require.NoError(t, err)
	require.Equal(t, Ed25519, s.Curve())
	require.Equal(t, 32, s.PublicKeySize())

	s, err = SuiteFor(Secp256k1)
	require.NoError(t, err)
	require.Equal(t, Secp256k1, s.Curve())
	require.Equal(t, 33, s.PublicKeySize())

	_, err = SuiteFor(Curve(42))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Curve(42)")
}

func TestParseCurve(t *testing.T) {
	for name, expected := range map[string]Curve{"Ed25519": Ed25519, "ed25519": Ed25519, "SECP256K1": Secp256k1} {
		c, err := ParseCurve(name)
		require.NoError(t, err)
		require.Equal(t, expected, c)
	}

	_, err := ParseCurve("P-256")
	require.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	msg := []byte("eyJhbGciOiJFZERzYSJ9.eyJ0eXAiOiJDcmVhdGUifQ")

	for _, c := range []Curve{Ed25519, Secp256k1} {
		c := c

		t.Run(c.String(), func(t *testing.T) {
			s, err := SuiteFor(c)
			require.NoError(t, err)

			pub, priv, err := s.GenerateKey()
			require.NoError(t, err)
			require.Len(t, pub, s.PublicKeySize())

			derived, err := s.PublicKey(priv)
			require.NoError(t, err)
			require.Equal(t, pub, derived)

			sig, err := s.Sign(msg, priv)
			require.NoError(t, err)
			require.Len(t, sig, 64)

			require.NoError(t, s.Verify(msg, pub, sig))

			t.Run("tampered message", func(t *testing.T) {
				err := s.Verify(append(append([]byte{}, msg...), '.'), pub, sig)
				require.True(t, errors.Is(err, ErrInvalidSignature))
			})

			t.Run("every flipped signature bit is rejected", func(t *testing.T) {
				for i := 0; i < len(sig)*8; i++ {
					flipped := append([]byte{}, sig...)
					flipped[i/8] ^= 1 << (i % 8)

					require.Error(t, s.Verify(msg, pub, flipped), "bit %d", i)
				}
			})

			t.Run("other key", func(t *testing.T) {
				otherPub, _, err := s.GenerateKey()
				require.NoError(t, err)
				require.Error(t, s.Verify(msg, otherPub, sig))
			})

			t.Run("short public key", func(t *testing.T) {
				err := s.Verify(msg, pub[1:], sig)
				require.True(t, errors.Is(err, ErrInvalidKeyLength))
			})

			t.Run("short secret key", func(t *testing.T) {
				_, err := s.Sign(msg, priv[:5])
				require.True(t, errors.Is(err, ErrInvalidKeyLength))

				_, err = s.PublicKey(priv[:5])
				require.True(t, errors.Is(err, ErrInvalidKeyLength))
			})
		})
	}
}

func TestEd25519Seed(t *testing.T) {
	s := NewEd25519Suite()

	pub, priv, err := s.GenerateKey()
	require.NoError(t, err)

	seed := ed25519.PrivateKey(priv).Seed()

	derived, err := s.PublicKey(seed)
	require.NoError(t, err)
	require.Equal(t, pub, derived)

	sig, err := s.Sign([]byte("msg"), seed)
	require.NoError(t, err)
	require.NoError(t, s.Verify([]byte("msg"), pub, sig))
}

func TestSecp256k1Signature(t *testing.T) {
	s := NewSecp256k1Suite()

	pub, priv, err := s.GenerateKey()
	require.NoError(t, err)

	sig, err := s.Sign([]byte("msg"), priv)
	require.NoError(t, err)

	err = s.Verify([]byte("msg"), pub, sig[:63])
	require.True(t, errors.Is(err, ErrInvalidSignature))

	bad := append([]byte{}, pub...)
	bad[0] = 0x05
	err = s.Verify([]byte("msg"), bad, sig)
	require.Error(t, err)
	require.Contains(t, err.Error(), "secp256k1 public key")
}

func TestCompressDecompress(t *testing.T) {
	s := NewSecp256k1Suite()

	pub, _, err := s.GenerateKey()
	require.NoError(t, err)

	x, y, err := Decompress(pub)
	require.NoError(t, err)
	require.Len(t, x, 32)
	require.Len(t, y, 32)

	compressed, err := Compress(x, y)
	require.NoError(t, err)
	require.Equal(t, pub, compressed)

	_, _, err = Decompress(pub[:32])
	require.True(t, errors.Is(err, ErrInvalidKeyLength))

	y[31] ^= 0x01
	_, err = Compress(x, y)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not on curve")
}
