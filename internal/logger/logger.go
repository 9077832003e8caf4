// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger is the diagnostic log for formgen. It writes structured
// text lines to stderr and stays quiet (warn level) unless raised, so it
// never interleaves with the interactive prompts on stdout.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields attaches structured context to a log line.
type Fields = map[string]interface{}

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init sets the log level ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects the log, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// DisableColors switches to plain key=value output.
func DisableColors() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
}

// Debug logs a debug message.
func Debug(msg string, fields ...Fields) {
	entry(fields).Debug(msg)
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning.
func Warn(msg string, fields ...Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message with its cause.
func Error(msg string, err error, fields ...Fields) {
	entry(fields).WithError(err).Error(msg)
}

func entry(fields []Fields) *logrus.Entry {
	if len(fields) > 0 && fields[0] != nil {
		return log.WithFields(fields[0])
	}
	return logrus.NewEntry(log)
}
