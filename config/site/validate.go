package site

import (
	"fmt"
	"strings"

	"github.com/difysjs/docsite/config/validate"
)

func (s *SiteConfiguration) Validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/title", s.Title)
	validate.RequireAbsoluteURL(v, path+"/url", s.URL)
	s.validateBaseURL(v, path+"/baseUrl")
	if s.RepoURL != "" {
		validate.RequireAbsoluteURL(v, path+"/repoUrl", s.RepoURL)
	}

	s.validateNavigation(v, path+"/headerLinks")
	s.Colors.validate(v, path+"/colors")
	s.validateScripts(v, path+"/scripts")

	validate.RequireOneOf(v, path+"/onPageNav", s.OnPageNav, []OnPageNav{OnPageNavSeparate, OnPageNavNone})
}

func (s *SiteConfiguration) validateBaseURL(v *validate.ValidationErrors, path string) {
	if !validate.RequireString(v, path, s.BaseURL) {
		return
	}
	if !strings.HasPrefix(s.BaseURL, "/") {
		err := validate.ErrInvalid(path, "must start with /")
		validate.LogConfigError(path, s.BaseURL, err)
		v.Add(err)
	}
}

func (s *SiteConfiguration) validateNavigation(v *validate.ValidationErrors, path string) {
	for i, n := range s.Navigation {
		n.validate(v, fmt.Sprintf("%s[%d]", path, i))
	}
}

func (n NavEntry) validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/label", n.Label)

	switch {
	case n.Doc != "" && n.Href != "":
		err := validate.ErrInvalid(path, "doc and href are mutually exclusive")
		validate.LogConfigError(path, n, err)
		v.Add(err)
	case n.Doc == "" && n.Href == "":
		err := validate.ErrInvalid(path, "one of doc or href is required")
		validate.LogConfigError(path, n, err)
		v.Add(err)
	case n.IsExternal():
		validate.RequireAbsoluteURL(v, path+"/href", n.Href)
	default:
		if strings.HasPrefix(n.Doc, "/") {
			err := validate.ErrInvalid(path+"/doc", "document reference must be relative")
			validate.LogConfigError(path+"/doc", n.Doc, err)
			v.Add(err)
		} else {
			validate.LogConfigOK(path+"/doc", n.Doc)
		}
	}
}

func (c ColorTheme) validate(v *validate.ValidationErrors, path string) {
	for _, slot := range []ThemeSlot{SlotPrimary, SlotSecondary} {
		validate.RequireColor(v, path+"/"+string(slot), c[slot])
	}
	for slot, value := range c {
		if slot == SlotPrimary || slot == SlotSecondary {
			continue
		}
		validate.RequireColor(v, path+"/"+string(slot), value)
	}
}

func (s *SiteConfiguration) validateScripts(v *validate.ValidationErrors, path string) {
	seen := make(map[string]struct{}, len(s.Scripts))
	for i, src := range s.Scripts {
		p := fmt.Sprintf("%s[%d]", path, i)
		if !validate.RequireString(v, p, src) {
			continue
		}
		if _, ok := seen[src]; ok {
			err := validate.ErrInvalid(p, "duplicate script")
			validate.LogConfigError(p, src, err)
			v.Add(err)
			continue
		}
		seen[src] = struct{}{}

		if !strings.HasPrefix(src, "/") && !validate.IsAbsoluteURL(src) {
			err := validate.ErrInvalid(p, "must be a local path or an absolute http(s) URL")
			validate.LogConfigError(p, src, err)
			v.Add(err)
		}
	}
}
