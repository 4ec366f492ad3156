package config

import (
	"github.com/rs/zerolog/log"
)

func (c *Config) logSummary() {
	s := c.Site
	log.Logger.Info().
		Str("env", string(c.Env)).
		Str("title", s.Title).
		Str("url", s.URL).
		Str("baseUrl", s.BaseURL).
		Int("headerLinks", len(s.Navigation)).
		Int("scripts", len(s.Scripts)).
		Msg("site configuration")
	for i, n := range s.Navigation {
		log.Logger.Debug().
			Int("position", i).
			Str("label", n.Label).
			Str("target", n.Target()).
			Bool("external", n.IsExternal()).
			Msg("header link")
	}
}
