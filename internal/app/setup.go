//go:build !js

package app

import (
	"learngl/internal/config"
	"learngl/internal/logger"
)

// Setup loads .env, the config file and LEARNGL_* overrides, then builds the
// logger at the configured level, writing to LogFilePath.
func Setup() (config.Prefs, *logger.Logger) {
	return setup(true)
}
