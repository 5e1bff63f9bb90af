// Package logging builds the logrus entry shared by the server and the CLI.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// New returns a logger entry tagged with service=joblens.
// Unknown levels fall back to info; format is "text" or "json".
func New(level, format string, out io.Writer) *logrus.Entry {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger.WithField("service", "joblens")
}

// Component derives a child entry for one component. A nil parent yields a discard logger.
func Component(parent *logrus.Entry, name string) *logrus.Entry {
	if parent == nil {
		parent = Discard()
	}
	return parent.WithField("component", name)
}

// Discard returns an entry that writes nowhere; handy for tests and optional wiring.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// Middleware logs one line per HTTP request handled by fiber.
func Middleware(log *logrus.Entry) fiber.Handler {
	log = Component(log, "http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		entry := log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
		})
		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
		return err
	}
}
