package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"learngl/internal/config"
)

// Environment variables read by Apply and ConfigPath.
const (
	VarConfig   = "LEARNGL_CONFIG"
	VarLogLevel = "LEARNGL_LOG_LEVEL"
	VarShowFPS  = "LEARNGL_SHOW_FPS"
)

// Load reads the given files (e.g. ".env") into the process environment. Variables that are
// already set win over the files. Missing files are not an error.
func Load(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ConfigPath returns $LEARNGL_CONFIG, or config.ConfigPath when it is unset.
func ConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(VarConfig)); p != "" {
		return p
	}
	return config.ConfigPath
}

// Apply overrides prefs with any LEARNGL_* variables that are set. Unparseable booleans are ignored.
func Apply(p config.Prefs) config.Prefs {
	if v, ok := os.LookupEnv(VarLogLevel); ok && strings.TrimSpace(v) != "" {
		p.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(VarShowFPS); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			p.ShowFPS = b
		}
	}
	return p
}
