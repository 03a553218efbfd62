package fiberlog

import "github.com/sirupsen/logrus"

// Config controls which request tags the middleware logs and through
// which logger.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault logs through the global logger with the basic request tags.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
