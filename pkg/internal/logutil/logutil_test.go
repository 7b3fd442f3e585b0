/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type lineLogger struct {
	lines []string
}

func (l *lineLogger) add(level, msg string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(msg, args...))
}

func (l *lineLogger) Panicf(msg string, args ...interface{}) { l.add("CRITICAL", msg, args...) }
func (l *lineLogger) Fatalf(msg string, args ...interface{}) { l.add("CRITICAL", msg, args...) }
func (l *lineLogger) Errorf(msg string, args ...interface{}) { l.add("ERROR", msg, args...) }
func (l *lineLogger) Warnf(msg string, args ...interface{})  { l.add("WARNING", msg, args...) }
func (l *lineLogger) Infof(msg string, args ...interface{})  { l.add("INFO", msg, args...) }
func (l *lineLogger) Debugf(msg string, args ...interface{}) { l.add("DEBUG", msg, args...) }

func TestLogHelpers(t *testing.T) {
	l := &lineLogger{}
	kind := CreateKeyValueString("kind", "Expired")

	LogError(l, "credential", "Verify", "boom", kind)
	LogDebug(l, "credential", "Sign", "success")
	LogInfo(l, "credential", "BuildHeader", "decode", kind, CreateKeyValueString("curve", "Ed25519"))

	require.Equal(t, []string{
		"ERROR command=[credential] action=[Verify] kind=[Expired] errMsg=[boom]",
		"DEBUG command=[credential] action=[Sign]  msg=[success]",
		"INFO command=[credential] action=[BuildHeader] kind=[Expired] curve=[Ed25519] msg=[decode]",
	}, l.lines)
}
