package config

import "time"

func (c *Config) TransformBeforeValidation() error {
	return c.Site.TransformBeforeValidation()
}

// TransformAfterValidation fills the fields computed at generation time.
func (c *Config) TransformAfterValidation(now time.Time) error {
	return c.Site.TransformAfterValidation(now)
}
