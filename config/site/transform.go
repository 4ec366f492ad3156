package site

import (
	"strings"
	"time"
)

func (s *SiteConfiguration) TransformBeforeValidation() error {
	s.Title = strings.TrimSpace(s.Title)
	s.Tagline = strings.TrimSpace(s.Tagline)
	s.URL = strings.TrimRight(strings.TrimSpace(s.URL), "/")
	s.BaseURL = normalizeBaseURL(s.BaseURL)
	s.CopyrightHolder = strings.TrimSpace(s.CopyrightHolder)
	s.Highlight.Theme = strings.TrimSpace(s.Highlight.Theme)

	for i := range s.Navigation {
		s.Navigation[i].Label = strings.TrimSpace(s.Navigation[i].Label)
		s.Navigation[i].Doc = strings.TrimSpace(s.Navigation[i].Doc)
		s.Navigation[i].Href = strings.TrimSpace(s.Navigation[i].Href)
	}
	for i := range s.Scripts {
		s.Scripts[i] = strings.TrimSpace(s.Scripts[i])
	}
	for slot, c := range s.Colors {
		s.Colors[slot] = strings.ToLower(strings.TrimSpace(c))
	}
	return nil
}

func (s *SiteConfiguration) TransformAfterValidation(now time.Time) error {
	s.StampCopyright(now)
	return nil
}

// normalizeBaseURL keeps "" as is so validation can report it.
func normalizeBaseURL(b string) string {
	b = strings.TrimSpace(b)
	if b == "" {
		return b
	}
	if !strings.HasPrefix(b, "/") {
		b = "/" + b
	}
	if !strings.HasSuffix(b, "/") {
		b += "/"
	}
	return b
}
