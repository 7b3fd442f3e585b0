/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential exposes rights credential issuance and verification as controller commands.
package credential

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/pkg/errors"

	"github.com/rightsledger/rights-credentials/pkg/controller/command"
	"github.com/rightsledger/rights-credentials/pkg/controller/internal/cmdutil"
	"github.com/rightsledger/rights-credentials/pkg/doc/address"
	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
	"github.com/rightsledger/rights-credentials/pkg/doc/credential"
	"github.com/rightsledger/rights-credentials/pkg/doc/metadata"
	"github.com/rightsledger/rights-credentials/pkg/doc/signature"
	"github.com/rightsledger/rights-credentials/pkg/internal/logutil"
)

var logger = log.New("rights-credentials/command/credential")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.Credential)

	// GenerateKeyPairErrorCode for key generation errors.
	GenerateKeyPairErrorCode

	// BuildHeaderErrorCode for header building errors.
	BuildHeaderErrorCode

	// CreateClaimsErrorCode for claims building errors.
	CreateClaimsErrorCode

	// ComputeIdentifierErrorCode for claims identifier errors.
	ComputeIdentifierErrorCode

	// SignErrorCode for signing errors.
	SignErrorCode

	// VerifyErrorCode for verification requests that could not be evaluated.
	VerifyErrorCode
)

// kindCodeBase offsets the codes of credential failure kinds within the Credential group.
const kindCodeBase = 100

const (
	// command name.
	CommandName = "credential"

	// command methods.
	GenerateKeyPairCommandMethod   = "GenerateKeyPair"
	BuildHeaderCommandMethod       = "BuildHeader"
	CreateClaimsCommandMethod      = "CreateClaims"
	ComputeIdentifierCommandMethod = "ComputeIdentifier"
	SignCommandMethod              = "Sign"
	VerifyCommandMethod            = "Verify"

	// error messages.
	errEmptyIssuer   = "issuer is mandatory"
	errEmptySubject  = "subject is mandatory"
	errEmptyHeader   = "header is mandatory"
	errEmptyClaims   = "claims are mandatory"
	errEmptyMetadata = "metadata document is mandatory"

	errInvalidIssuer   = "issuer is not an address"
	errInvalidAudience = "audience entry is not an address"
	errInvalidSubject  = "subject is not a content identifier"

	compactParts = 3
)

// KindCode returns the command code reported for a credential failure kind.
func KindCode(kind credential.ErrorKind) command.Code {
	return command.Code(command.Credential) + kindCodeBase + command.Code(kind)
}

// Opt configures the command.
type Opt func(c *Command)

// WithClock sets the time source used for iat stamping and verification.
func WithClock(clock cid.Clock) Opt {
	return func(c *Command) {
		c.clock = clock
	}
}

// Command contains the credential operations.
type Command struct {
	clock cid.Clock
}

// New returns a new credential command.
func New(opts ...Opt) *Command {
	c := &Command{clock: cid.Now}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetHandlers returns list of all commands supported by this controller command.
func (c *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, GenerateKeyPairCommandMethod, c.GenerateKeyPair),
		cmdutil.NewCommandHandler(CommandName, BuildHeaderCommandMethod, c.BuildHeader),
		cmdutil.NewCommandHandler(CommandName, CreateClaimsCommandMethod, c.CreateClaims),
		cmdutil.NewCommandHandler(CommandName, ComputeIdentifierCommandMethod, c.ComputeIdentifier),
		cmdutil.NewCommandHandler(CommandName, SignCommandMethod, c.Sign),
		cmdutil.NewCommandHandler(CommandName, VerifyCommandMethod, c.Verify),
	}
}

// GenerateKeyPair creates a key pair on the requested curve with its address and header.
func (c *Command) GenerateKeyPair(rw io.Writer, req io.Reader) command.Error {
	var request KeyPairRequest

	if cmdErr := decode(req, &request, GenerateKeyPairCommandMethod); cmdErr != nil {
		return cmdErr
	}

	curve, err := signature.ParseCurve(request.Curve)
	if err != nil {
		logutil.LogInfo(logger, CommandName, GenerateKeyPairCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	suite, err := signature.SuiteFor(curve)
	if err != nil {
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	pub, secret, err := suite.GenerateKey()
	if err != nil {
		logutil.LogError(logger, CommandName, GenerateKeyPairCommandMethod, err.Error())

		return command.NewExecuteError(GenerateKeyPairErrorCode, err)
	}

	header, addr, err := headerOf(pub, curve)
	if err != nil {
		return command.NewExecuteError(GenerateKeyPairErrorCode, err)
	}

	command.WriteNillableResponse(rw, &KeyPairResponse{
		PublicKey: cid.Encode(pub),
		SecretKey: cid.Encode(secret),
		Address:   addr,
		Header:    header,
	}, logger)

	logutil.LogDebug(logger, CommandName, GenerateKeyPairCommandMethod, "success",
		logutil.CreateKeyValueString("address", addr))

	return nil
}

// BuildHeader creates the header of a raw public key.
func (c *Command) BuildHeader(rw io.Writer, req io.Reader) command.Error {
	var request BuildHeaderRequest

	if cmdErr := decode(req, &request, BuildHeaderCommandMethod); cmdErr != nil {
		return cmdErr
	}

	curve, err := signature.ParseCurve(request.Curve)
	if err != nil {
		logutil.LogInfo(logger, CommandName, BuildHeaderCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	pub, err := cid.Decode(request.PublicKey)
	if err != nil {
		logutil.LogInfo(logger, CommandName, BuildHeaderCommandMethod, "decode public key : "+err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, errors.Wrap(err, "decode public key"))
	}

	header, addr, err := headerOf(pub, curve)
	if err != nil {
		logutil.LogInfo(logger, CommandName, BuildHeaderCommandMethod, err.Error())

		return command.NewValidationError(BuildHeaderErrorCode, err)
	}

	encoded, err := credential.EncodeSegment(header)
	if err != nil {
		return command.NewExecuteError(BuildHeaderErrorCode, err)
	}

	command.WriteNillableResponse(rw, &HeaderResponse{Header: header, Encoded: encoded, Address: addr}, logger)

	logutil.LogDebug(logger, CommandName, BuildHeaderCommandMethod, "success")

	return nil
}

// CreateClaims builds identified Create or License claims issued now.
func (c *Command) CreateClaims(rw io.Writer, req io.Reader) command.Error {
	var request CreateClaimsRequest

	if cmdErr := decode(req, &request, CreateClaimsCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if request.Issuer == "" {
		logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, errEmptyIssuer)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyIssuer))
	}

	if request.Subject == "" {
		logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, errEmptySubject)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptySubject))
	}

	if cmdErr := validateParties(&request); cmdErr != nil {
		return cmdErr
	}

	var (
		claims *credential.Claims
		err    error
	)

	switch request.Type {
	case credential.Create:
		claims, err = credential.NewCreateClaims(request.Issuer, request.Subject, credential.WithClock(c.clock))
	case credential.License:
		var nbf *time.Time

		if request.NotBefore != nil {
			t := time.Unix(*request.NotBefore, 0)
			nbf = &t
		}

		claims, err = credential.NewLicenseClaims(request.Issuer, request.Subject, request.Audience,
			time.Unix(request.Expiry, 0), nbf, credential.WithClock(c.clock))
	default:
		return command.NewValidationError(KindCode(credential.UnsupportedType),
			fmt.Errorf("%w: claims type %q", credential.UnsupportedType, request.Type))
	}

	if err != nil {
		logutil.LogError(logger, CommandName, CreateClaimsCommandMethod, err.Error())

		return command.NewExecuteError(CreateClaimsErrorCode, err)
	}

	encoded, err := credential.EncodeSegment(claims)
	if err != nil {
		return command.NewExecuteError(CreateClaimsErrorCode, err)
	}

	command.WriteNillableResponse(rw, &ClaimsResponse{Claims: claims, Encoded: encoded}, logger)

	logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, "success",
		logutil.CreateKeyValueString("jti", claims.ID))

	return nil
}

// ComputeIdentifier returns the content identifier of claims and whether it matches their jti.
func (c *Command) ComputeIdentifier(rw io.Writer, req io.Reader) command.Error {
	var request IdentifierRequest

	if cmdErr := decode(req, &request, ComputeIdentifierCommandMethod); cmdErr != nil {
		return cmdErr
	}

	claims, cmdErr := unmarshalClaims(request.Claims, ComputeIdentifierCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	id, err := credential.Identifier(claims)
	if err != nil {
		return command.NewExecuteError(ComputeIdentifierErrorCode, err)
	}

	command.WriteNillableResponse(rw, &IdentifierResponse{Identifier: id, Matches: id == claims.ID}, logger)

	return nil
}

// Sign signs claims under header with the given secret key.
func (c *Command) Sign(rw io.Writer, req io.Reader) command.Error {
	var request SignRequest

	if cmdErr := decode(req, &request, SignCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if request.Header == nil {
		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyHeader))
	}

	claims, cmdErr := unmarshalClaims(request.Claims, SignCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	secret, err := cid.Decode(request.SecretKey)
	if err != nil {
		return command.NewValidationError(InvalidRequestErrorCode, errors.Wrap(err, "decode secret key"))
	}

	sig, err := credential.Sign(claims, request.Header, secret)
	if err != nil {
		logutil.LogInfo(logger, CommandName, SignCommandMethod, err.Error())

		return command.NewValidationError(kindCodeOr(err, SignErrorCode), err)
	}

	input, err := credential.SigningInput(request.Header, claims)
	if err != nil {
		return command.NewExecuteError(SignErrorCode, err)
	}

	encodedSig := cid.Encode(sig)

	command.WriteNillableResponse(rw, &SignResponse{
		Signature:  encodedSig,
		Credential: string(input) + "." + encodedSig,
	}, logger)

	logutil.LogDebug(logger, CommandName, SignCommandMethod, "success",
		logutil.CreateKeyValueString("jti", claims.ID))

	return nil
}

// Verify checks a credential against its metadata document. A rejected credential is a
// successful command whose response names the failed check.
func (c *Command) Verify(rw io.Writer, req io.Reader) command.Error {
	var request VerifyRequest

	if cmdErr := decode(req, &request, VerifyCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if request.Credential != "" {
		if err := request.expandCompact(); err != nil {
			logutil.LogInfo(logger, CommandName, VerifyCommandMethod, err.Error())

			return command.NewValidationError(InvalidRequestErrorCode, err)
		}
	}

	if isEmpty(request.Metadata) {
		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyMetadata))
	}

	if isEmpty(request.Claims) {
		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyClaims))
	}

	doc, err := metadata.Parse(request.Metadata)
	if err != nil {
		logutil.LogInfo(logger, CommandName, VerifyCommandMethod, "parse metadata : "+err.Error())

		return command.NewValidationError(VerifyErrorCode, errors.Wrap(err, "parse metadata"))
	}

	sig, err := cid.Decode(request.Signature)
	if err != nil {
		return command.NewValidationError(InvalidRequestErrorCode, errors.Wrap(err, "decode signature"))
	}

	clock := c.clock
	if request.VerifyTime != nil {
		at := time.Unix(*request.VerifyTime, 0)
		clock = func() time.Time { return at }
	}

	err = verify(request.Claims, request.Header, doc, sig, credential.WithClock(clock))

	response := &VerifyResponse{Verified: err == nil}
	if err != nil {
		kind := credential.KindOf(err)
		response.Kind = kind.String()
		response.Code = KindCode(kind)
		response.Message = err.Error()
	}

	command.WriteNillableResponse(rw, response, logger)

	logutil.LogDebug(logger, CommandName, VerifyCommandMethod, "done",
		logutil.CreateKeyValueString("verified", fmt.Sprint(response.Verified)),
		logutil.CreateKeyValueString("kind", response.Kind))

	return nil
}

func validateParties(request *CreateClaimsRequest) command.Error {
	if !address.IsAddress(request.Issuer) {
		logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, errInvalidIssuer,
			logutil.CreateKeyValueString("issuer", request.Issuer))

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("%s: %q", errInvalidIssuer, request.Issuer))
	}

	for _, aud := range request.Audience {
		if !address.IsAddress(aud) {
			logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, errInvalidAudience,
				logutil.CreateKeyValueString("audience", aud))

			return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("%s: %q", errInvalidAudience, aud))
		}
	}

	if !cid.IsIdentifier(request.Subject) {
		logutil.LogDebug(logger, CommandName, CreateClaimsCommandMethod, errInvalidSubject,
			logutil.CreateKeyValueString("subject", request.Subject))

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("%s: %q", errInvalidSubject, request.Subject))
	}

	return nil
}

func verify(rawClaims []byte, header *credential.Header, doc *metadata.Document, sig []byte,
	opts ...credential.Opt) error {
	if err := header.Validate(); err != nil {
		return err
	}

	claims, err := credential.ParseClaims(rawClaims)
	if err != nil {
		return err
	}

	return credential.VerifyStrict(claims, header, doc, sig, opts...)
}

// expandCompact splits the header.claims.signature form into the request fields.
func (r *VerifyRequest) expandCompact() error {
	parts := strings.Split(r.Credential, ".")
	if len(parts) != compactParts {
		return fmt.Errorf("compact credential has %d parts, expected %d", len(parts), compactParts)
	}

	headerJSON, err := cid.Decode(parts[0])
	if err != nil {
		return errors.Wrap(err, "decode header segment")
	}

	header := &credential.Header{}
	if err = json.Unmarshal(headerJSON, header); err != nil {
		return errors.Wrap(err, "unmarshal header")
	}

	claimsJSON, err := cid.Decode(parts[1])
	if err != nil {
		return errors.Wrap(err, "decode claims segment")
	}

	r.Header = header
	r.Claims = claimsJSON
	r.Signature = parts[2]

	return nil
}

func decode(req io.Reader, v interface{}, method string) command.Error {
	if err := json.NewDecoder(req).Decode(v); err != nil {
		logutil.LogInfo(logger, CommandName, method, "request decode : "+err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, errors.Wrap(err, "request decode"))
	}

	return nil
}

func unmarshalClaims(raw json.RawMessage, method string) (*credential.Claims, command.Error) {
	if isEmpty(raw) {
		return nil, command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyClaims))
	}

	claims := &credential.Claims{}
	if err := json.Unmarshal(raw, claims); err != nil {
		logutil.LogInfo(logger, CommandName, method, "claims decode : "+err.Error())

		return nil, command.NewValidationError(InvalidRequestErrorCode, errors.Wrap(err, "claims decode"))
	}

	return claims, nil
}

func isEmpty(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func headerOf(pub []byte, curve signature.Curve) (*credential.Header, string, error) {
	header, err := credential.BuildHeader(pub, curve)
	if err != nil {
		return nil, "", err
	}

	addr, err := address.Of(curve, pub)
	if err != nil {
		return nil, "", err
	}

	return header, addr, nil
}

func kindCodeOr(err error, fallback command.Code) command.Code {
	if kind := credential.KindOf(err); kind != 0 {
		return KindCode(kind)
	}

	return fallback
}
