// Package app gathers the startup steps shared by every entry point:
// environment, preferences and logging.
package app

import (
	"learngl/internal/config"
	"learngl/internal/env"
	"learngl/internal/logger"
)

// EnvFile is the optional dotenv file read at startup.
const EnvFile = ".env"

// setup builds the preferences and the logger. With files set it loads .env,
// the config file and writes the log file; without, it starts from the
// defaults and keeps the log in memory. LEARNGL_* overrides apply either way.
// Problems with optional files are logged and the defaults are used.
func setup(files bool) (config.Prefs, *logger.Logger) {
	var envErr, cfgErr error
	path := ""
	prefs := config.Default()
	if files {
		envErr = env.Load(EnvFile)
		path = env.ConfigPath()
		prefs, cfgErr = config.Load(path)
	}
	prefs = env.Apply(prefs)

	log := logger.New(logger.Options{MemoryOnly: !files, Level: logger.ParseLevel(prefs.LogLevel)})
	if envErr != nil {
		log.Warn("ignoring env file", "path", EnvFile, "err", envErr)
	}
	if cfgErr != nil {
		log.Warn("using default preferences", "path", path, "err", cfgErr)
	}
	log.Debug("preferences", "title", prefs.Title, "width", prefs.Width, "height", prefs.Height, "vsync", prefs.VSync)
	return prefs, log
}
