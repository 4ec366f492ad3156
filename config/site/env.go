package site

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// envOverrides lists the site fields that may come from the process
// environment. Unset variables leave the field untouched. split_words
// instead of explicit names: envconfig falls back to the unprefixed name
// (plain URL, TITLE) when an explicit name is given.
type envOverrides struct {
	Title           *string `split_words:"true"`
	Tagline         *string `split_words:"true"`
	URL             *string `split_words:"true"`
	BaseURL         *string `split_words:"true"`
	DocsURL         *string `split_words:"true"`
	RepoURL         *string `split_words:"true"`
	CopyrightHolder *string `split_words:"true"`
	CleanURL        *bool   `split_words:"true"`
}

func (s *SiteConfiguration) ApplyEnv(prefix string) error {
	var ov envOverrides
	if err := envconfig.Process(prefix, &ov); err != nil {
		return fmt.Errorf("reading site environment overrides: %w", err)
	}
	setStr(&s.Title, ov.Title, prefix+"_TITLE")
	setStr(&s.Tagline, ov.Tagline, prefix+"_TAGLINE")
	setStr(&s.URL, ov.URL, prefix+"_URL")
	setStr(&s.BaseURL, ov.BaseURL, prefix+"_BASE_URL")
	setStr(&s.DocsURL, ov.DocsURL, prefix+"_DOCS_URL")
	setStr(&s.RepoURL, ov.RepoURL, prefix+"_REPO_URL")
	setStr(&s.CopyrightHolder, ov.CopyrightHolder, prefix+"_COPYRIGHT_HOLDER")
	if ov.CleanURL != nil {
		s.CleanURLs = *ov.CleanURL
		log.Logger.Debug().Str("env", prefix+"_CLEAN_URL").Bool("value", s.CleanURLs).Msg("site override from environment")
	}
	return nil
}

func setStr(dst *string, v *string, key string) {
	if v == nil {
		return
	}
	*dst = *v
	log.Logger.Debug().Str("env", key).Str("value", *v).Msg("site override from environment")
}
