/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

const definitions = `
  "definitions": {
    "address": {
      "type": "string",
      "pattern": "^z[1-9A-HJ-NP-Za-km-z]+$"
    },
    "contentID": {
      "type": "string",
      "pattern": "^Qm[1-9A-HJ-NP-Za-km-z]{44}$"
    },
    "coordinate": {
      "type": "string",
      "pattern": "^[A-Za-z0-9_-]{43}$"
    },
    "timestamp": {
      "type": "integer",
      "minimum": 0
    },
    "addresses": {
      "type": "array",
      "items": {
        "$ref": "#/definitions/address"
      }
    },
    "ed25519Key": {
      "type": "object",
      "required": ["x", "crv", "kty"],
      "additionalProperties": false,
      "properties": {
        "x": {"$ref": "#/definitions/coordinate"},
        "crv": {"enum": ["Ed25519"]},
        "kty": {"enum": ["OKP"]}
      }
    },
    "p256Key": {
      "type": "object",
      "required": ["x", "y", "crv", "kty"],
      "additionalProperties": false,
      "properties": {
        "x": {"$ref": "#/definitions/coordinate"},
        "y": {"$ref": "#/definitions/coordinate"},
        "crv": {"enum": ["P-256"]},
        "kty": {"enum": ["EC"]}
      }
    }
  }`

const headerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Header",
  "type": "object",
  "required": ["alg", "jwk", "typ"],
  "additionalProperties": false,
  "properties": {
    "alg": {"enum": ["EdDsa", "ES256"]},
    "jwk": {"type": "object"},
    "typ": {"enum": ["JWT"]}
  },
  "oneOf": [
    {
      "properties": {
        "alg": {"enum": ["EdDsa"]},
        "jwk": {"$ref": "#/definitions/ed25519Key"}
      }
    },
    {
      "properties": {
        "alg": {"enum": ["ES256"]},
        "jwk": {"$ref": "#/definitions/p256Key"}
      }
    }
  ],` + definitions + `
}`

const createClaimsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Create",
  "type": "object",
  "required": ["iat", "iss", "jti", "sub", "typ"],
  "additionalProperties": false,
  "properties": {
    "iat": {"$ref": "#/definitions/timestamp"},
    "iss": {"$ref": "#/definitions/address"},
    "jti": {"$ref": "#/definitions/contentID"},
    "sub": {"$ref": "#/definitions/contentID"},
    "typ": {"enum": ["Create"]}
  },` + definitions + `
}`

const licenseClaimsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "License",
  "type": "object",
  "required": ["aud", "exp", "iat", "iss", "jti", "sub", "typ"],
  "additionalProperties": false,
  "properties": {
    "aud": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"$ref": "#/definitions/address"}
    },
    "exp": {"$ref": "#/definitions/timestamp"},
    "iat": {"$ref": "#/definitions/timestamp"},
    "iss": {"$ref": "#/definitions/address"},
    "jti": {"$ref": "#/definitions/contentID"},
    "nbf": {"$ref": "#/definitions/timestamp"},
    "sub": {"$ref": "#/definitions/contentID"},
    "typ": {"enum": ["License"]}
  },` + definitions + `
}`

const metadataDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "MetadataDocument",
  "type": "object",
  "required": ["@type"],
  "properties": {
    "@type": {"type": "string"},
    "artist": {"$ref": "#/definitions/addresses"},
    "composer": {"$ref": "#/definitions/addresses"},
    "lyricist": {"$ref": "#/definitions/addresses"},
    "performer": {"$ref": "#/definitions/addresses"},
    "producer": {"$ref": "#/definitions/addresses"}
  },` + definitions + `
}`
