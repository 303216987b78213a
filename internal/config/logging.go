package config

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging applies the log settings to every given logger. With a log
// file configured, entries go to the rotated file only.
func SetupLogging(c *Config, loggers ...*logrus.Logger) error {
	level := logrus.DebugLevel
	if !c.Development() {
		var err error
		if level, err = logrus.ParseLevel(c.Log.Level); err != nil {
			return err
		}
	}

	var hook logrus.Hook
	if c.Log.File != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development()})
		if hook != nil {
			log.AddHook(hook)
			log.SetOutput(io.Discard)
		}
	}
	return nil
}
