package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/difysjs/docsite/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

const (
	FieldFunc   = "func"
	FieldEvent  = "event"
	FieldResult = "result"
	FieldParams = "params"
	FieldRunID  = "run_id"
	TraceIDKey  = "trace_id"
)

// Default installs a console logger on stderr. It is used until the
// environment file has been read and a zeroconfig file may be known.
func Default() {
	log.Logger = NewConsole(os.Stderr, os.Getenv(config.LogLevelEnv))
}

func NewConsole(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// ParseLevel falls back to info for unknown or empty names.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// LoadLogging replaces the global logger with the one described by the
// zeroconfig file named in DOCSITE_LOG_CONFIG. Without the variable the
// current logger is kept.
func LoadLogging() error {
	path := os.Getenv(config.LogConfigEnv)
	if path == "" {
		log.Logger.Debug().Msg(config.LogConfigEnv + " not set, keeping console logging")
		return nil
	}
	logger, err := Compile(path)
	if err != nil {
		return err
	}
	log.Logger = *logger
	log.Logger.Debug().Str("path", path).Msg("logging configured")
	return nil
}

func Compile(path string) (*zerolog.Logger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s is not readable: %w", config.LogConfigEnv, err)
	}
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s is not valid yaml: %w", config.LogConfigEnv, err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s is not valid for zerolog, see go.mau.fi/zeroconfig documentation: %w", config.LogConfigEnv, err)
	}
	return logger, nil
}
