// Package dotenv copies KEY=VALUE pairs from an optional environment file
// into the process environment. Variables that are already set win.
package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const DefaultPath = ".env"

// LoadEnvironment never fails: a missing or broken file only gets logged.
// Without arguments DefaultPath is used.
func LoadEnvironment(paths ...string) {
	if len(paths) == 0 {
		paths = []string{DefaultPath}
	}
	for _, p := range paths {
		n, err := Load(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Logger.Debug().Str("path", p).Msg("environment file not found, skipping")
		case err != nil:
			log.Logger.Warn().Str("path", p).Err(err).Msg("environment file not loaded")
		default:
			log.Logger.Info().Str("path", p).Int("applied", n).Msg("environment file loaded")
		}
	}
}

// Load applies the variables of path that are not yet set and returns how
// many were applied.
func Load(path string) (int, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	applied := 0
	for _, k := range keys {
		if _, set := os.LookupEnv(k); set {
			log.Logger.Debug().Str("key", k).Msg("already set, keeping process value")
			continue
		}
		if err := os.Setenv(k, values[k]); err != nil {
			return applied, fmt.Errorf("setting %s: %w", k, err)
		}
		applied++
	}
	return applied, nil
}
