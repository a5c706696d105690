// Package linklog reports errlink chains through mx-chain-logger-go.
//
// The errlink core never logs. This adapter turns a chain into structured
// key/value pairs: the concise error, the depth, one "frame<i>" pair per
// frame, and, at trace level only, the origin stack.
package linklog

import (
	"errors"
	"fmt"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/xgx-io/errlink"
)

const loggerName = "errlink"

// Default returns the package logger used when Report is handed a nil one.
func Default() logger.Logger {
	return logger.GetOrCreate(loggerName)
}

// Report logs message at level with err's details. A nil err logs nothing.
func Report(log logger.Logger, level logger.LogLevel, message string, err error) {
	if err == nil {
		return
	}
	if log == nil || log.IsInterfaceNil() {
		log = Default()
	}
	log.Log(level, message, Fields(err, level == logger.LogTrace)...)
}

// ReportIfError logs err at error level; nil errors are ignored.
func ReportIfError(log logger.Logger, message string, err error) {
	Report(log, logger.LogError, message, err)
}

// Fields returns the key/value pairs Report attaches for err. withStack adds
// the chain's snapshot under "stack".
func Fields(err error, withStack bool) []interface{} {
	if err == nil {
		return nil
	}
	args := []interface{}{"error", err.Error()}

	var ch errlink.Chain
	if !errors.As(err, &ch) {
		return args
	}
	msgs := ch.Messages()
	args = append(args, "depth", len(msgs))
	for i, msg := range msgs {
		args = append(args, fmt.Sprintf("frame%d", i), msg)
	}
	if withStack {
		args = append(args, "stack", fmt.Sprintf("%+v", ch.Snapshot().StackTrace()))
	}
	return args
}
