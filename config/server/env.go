package server

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ApplyEnv reads <prefix>_SERVER_* variables. envconfig keeps the current
// value of a field when its variable is unset.
func (cfg *ServerConfig) ApplyEnv(prefix string) error {
	if err := envconfig.Process(prefix+"_SERVER", cfg); err != nil {
		return fmt.Errorf("reading server environment overrides: %w", err)
	}
	return nil
}
