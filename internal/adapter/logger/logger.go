package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type LoggerAdapter struct {
	log *logrus.Logger
}

var _ ports.LoggerPort = (*LoggerAdapter)(nil)

// NewLoggerAdapter logs JSON in production and human readable text elsewhere.
// An unknown level falls back to info.
func NewLoggerAdapter(env, level string) *LoggerAdapter {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &LoggerAdapter{log: log}
}

// NewWithLogger wraps an existing logrus logger, hooks and output included.
func NewWithLogger(log *logrus.Logger) *LoggerAdapter {
	return &LoggerAdapter{log: log}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Debug(msg)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Info(msg)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Warn(msg)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Error(msg)
}
