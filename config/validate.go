package config

import (
	"github.com/difysjs/docsite/config/validate"
)

func (c *Config) Validate() error {
	var verr validate.ValidationErrors

	c.Site.Validate(&verr, "site")
	c.Server.Validate(&verr, "server")

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
