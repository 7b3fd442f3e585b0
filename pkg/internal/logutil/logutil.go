/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logutil formats controller log lines as command/action/key-value triples.
package logutil

import (
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/spi/log"
)

// LogError logs a failed controller action.
func LogError(logger log.Logger, command, action, errMsg string, data ...string) {
	logger.Errorf("command=[%s] action=[%s] %s errMsg=[%s]", command, action, strings.Join(data, " "), errMsg)
}

// LogDebug logs a controller action at debug level.
func LogDebug(logger log.Logger, command, action, msg string, data ...string) {
	logger.Debugf("command=[%s] action=[%s] %s msg=[%s]", command, action, strings.Join(data, " "), msg)
}

// LogInfo logs a controller action at info level.
func LogInfo(logger log.Logger, command, action, msg string, data ...string) {
	logger.Infof("command=[%s] action=[%s] %s msg=[%s]", command, action, strings.Join(data, " "), msg)
}

// CreateKeyValueString renders key=[val].
func CreateKeyValueString(key, val string) string {
	return fmt.Sprintf("%s=[%s]", key, val)
}
