/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/rightsledger/rights-credentials/pkg/controller"
	"github.com/rightsledger/rights-credentials/pkg/doc/cid"
)

const (
	// api host flag.
	hostFlagName      = "api-host"
	hostEnvKey        = "RIGHTSD_API_HOST"
	hostFlagShorthand = "a"
	hostFlagUsage     = "Host Name:Port." +
		" Alternatively, this can be set with the following environment variable: " + hostEnvKey

	// api token flag.
	tokenFlagName      = "api-token"
	tokenEnvKey        = "RIGHTSD_API_TOKEN" // nolint:gosec
	tokenFlagShorthand = "t"
	tokenFlagUsage     = "Check for bearer token in the authorization header (optional)." +
		" Alternatively, this can be set with the following environment variable: " + tokenEnvKey

	// log level flag.
	logLevelFlagName      = "log-level"
	logLevelEnvKey        = "RIGHTSD_LOG_LEVEL"
	logLevelFlagShorthand = "l"
	logLevelFlagUsage     = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	// verify time flag.
	verifyTimeFlagName  = "verify-time"
	verifyTimeEnvKey    = "RIGHTSD_VERIFY_TIME"
	verifyTimeFlagUsage = "Fixed Unix time in seconds used as the current time by every check (optional)." +
		" Alternatively, this can be set with the following environment variable: " + verifyTimeEnvKey

	// tls flags.
	tlsCertFileFlagName  = "tls-cert-file"
	tlsCertFileEnvKey    = "TLS_CERT_FILE"
	tlsCertFileFlagUsage = "TLS certificate file (optional)." +
		" Alternatively, this can be set with the following environment variable: " + tlsCertFileEnvKey

	tlsKeyFileFlagName  = "tls-key-file"
	tlsKeyFileEnvKey    = "TLS_KEY_FILE"
	tlsKeyFileFlagUsage = "TLS key file (optional)." +
		" Alternatively, this can be set with the following environment variable: " + tlsKeyFileEnvKey
)

var (
	errMissingHost = errors.New("host not provided")

	logger = log.New("rights-credentials/rest-server")
)

type serverParameters struct {
	server      server
	host        string
	token       string
	tlsCertFile string
	tlsKeyFile  string
	clock       cid.Clock
}

type server interface {
	ListenAndServe(host string, router http.Handler, certFile, keyFile string) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler, certFile, keyFile string) error {
	if certFile != "" && keyFile != "" {
		return http.ListenAndServeTLS(host, certFile, keyFile, router)
	}

	return http.ListenAndServe(host, router)
}

// Cmd returns the Cobra start command.
func Cmd(server server) (*cobra.Command, error) {
	startCmd := createStartCMD(server)

	createFlags(startCmd)

	return startCmd, nil
}

func createStartCMD(server server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the credential server",
		Long:  `Start the rights credential controller REST API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
			if err != nil {
				return err
			}

			err = setLogLevel(logLevel)
			if err != nil {
				return err
			}

			host, err := getUserSetVar(cmd, hostFlagName, hostEnvKey, false)
			if err != nil {
				return err
			}

			token, err := getUserSetVar(cmd, tokenFlagName, tokenEnvKey, true)
			if err != nil {
				return err
			}

			verifyTime, err := getUserSetVar(cmd, verifyTimeFlagName, verifyTimeEnvKey, true)
			if err != nil {
				return err
			}

			clock, err := getClock(verifyTime)
			if err != nil {
				return err
			}

			tlsCertFile, err := getUserSetVar(cmd, tlsCertFileFlagName, tlsCertFileEnvKey, true)
			if err != nil {
				return err
			}

			tlsKeyFile, err := getUserSetVar(cmd, tlsKeyFileFlagName, tlsKeyFileEnvKey, true)
			if err != nil {
				return err
			}

			parameters := &serverParameters{
				server:      server,
				host:        host,
				token:       token,
				tlsCertFile: tlsCertFile,
				tlsKeyFile:  tlsKeyFile,
				clock:       clock,
			}

			return startServer(parameters)
		},
	}
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostFlagName, hostFlagShorthand, "", hostFlagUsage)
	startCmd.Flags().StringP(tokenFlagName, tokenFlagShorthand, "", tokenFlagUsage)
	startCmd.Flags().StringP(logLevelFlagName, logLevelFlagShorthand, "", logLevelFlagUsage)
	startCmd.Flags().String(verifyTimeFlagName, "", verifyTimeFlagUsage)
	startCmd.Flags().String(tlsCertFileFlagName, "", tlsCertFileFlagUsage)
	startCmd.Flags().String(tlsKeyFileFlagName, "", tlsKeyFileFlagUsage)
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func getClock(verifyTime string) (cid.Clock, error) {
	if verifyTime == "" {
		return cid.Now, nil
	}

	secs, err := strconv.ParseInt(verifyTime, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value '%s': %w", verifyTimeFlagName, verifyTime, err)
	}

	fixed := time.Unix(secs, 0)

	return func() time.Time { return fixed }, nil
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}

func validateAuthorizationBearerToken(w http.ResponseWriter, r *http.Request, token string) bool {
	actHdr := r.Header.Get("Authorization")
	expHdr := "Bearer " + token

	if subtle.ConstantTimeCompare([]byte(actHdr), []byte(expHdr)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Unauthorised.\n")) // nolint:gosec,errcheck

		return false
	}

	return true
}

func authorizationMiddleware(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validateAuthorizationBearerToken(w, r, token) {
				next.ServeHTTP(w, r)
			}
		})
	}
}

func newRouter(parameters *serverParameters) http.Handler {
	router := mux.NewRouter()

	if parameters.token != "" {
		router.Use(authorizationMiddleware(parameters.token))
	}

	for _, handler := range controller.GetRESTHandlers(controller.WithClock(parameters.clock)) {
		router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())
	}

	return cors.New(
		cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		},
	).Handler(router)
}

func startServer(parameters *serverParameters) error {
	if parameters.host == "" {
		return errMissingHost
	}

	handler := newRouter(parameters)

	logger.Infof("Starting rights credential rest on host [%s]", parameters.host)

	err := parameters.server.ListenAndServe(parameters.host, handler, parameters.tlsCertFile, parameters.tlsKeyFile)
	if err != nil {
		return fmt.Errorf("failed to start rights credential server on port [%s], cause:  %w", parameters.host, err)
	}

	return nil
}
