// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package logging is the diagnostic log of the sha2sum command.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// level names accepted by Init
const (
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
)

const (
	ERROR uint32 = iota
	WARN
	INFO
	DEBUG
)

// LogFormat carries the structured fields of one entry.
type LogFormat = map[string]interface{}

var log = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.Out = w
	l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	l.Level = level
	return l
}

// ParseLevel converts a level name to its logrus level.
func ParseLevel(level string) (logrus.Level, error) {
	switch level {
	case ErrorLevel:
		return logrus.ErrorLevel, nil
	case WarnLevel:
		return logrus.WarnLevel, nil
	case InfoLevel:
		return logrus.InfoLevel, nil
	case DebugLevel:
		return logrus.DebugLevel, nil
	}
	return 0, errors.Errorf("unknown log level %q", level)
}

// Init replaces the package logger with one writing to w at level.
func Init(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	log = newLogger(w, lvl)
	return nil
}

// Print writes msg with the merged fields at level.
func Print(level uint32, msg string, formats ...LogFormat) {
	entry := log.WithFields(mergeLogFormats(formats...))
	switch level {
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	default:
		entry.Error(msg)
	}
}

func mergeLogFormats(formats ...LogFormat) logrus.Fields {
	data := logrus.Fields{}
	for _, f := range formats {
		for k, v := range f {
			data[k] = v
		}
	}
	return data
}
