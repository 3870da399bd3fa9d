//go:build js

package app

import (
	"learngl/internal/config"
	"learngl/internal/logger"
)

// Setup returns the default preferences and a console logger. The browser
// has no file system for .env, the config file or the log file.
func Setup() (config.Prefs, *logger.Logger) {
	return setup(false)
}
