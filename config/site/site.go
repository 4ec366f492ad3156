package site

import (
	"encoding/json"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"
)

type ThemeSlot string

const (
	SlotPrimary   ThemeSlot = "primary"
	SlotSecondary ThemeSlot = "secondary"
)

type OnPageNav string

const (
	OnPageNavSeparate OnPageNav = "separate"
	OnPageNavNone     OnPageNav = "none"
)

// SiteConfiguration is handed to the documentation generator as-is.
// It is built once per run and only read afterwards; use Clone before
// handing it to code that might keep or mutate it.
type SiteConfiguration struct {
	Title            string `yaml:"title" json:"title"`
	Tagline          string `yaml:"tagline" json:"tagline"`
	URL              string `yaml:"url" json:"url"`
	BaseURL          string `yaml:"baseUrl" json:"baseUrl"`
	DocsURL          string `yaml:"docsUrl" json:"docsUrl"`
	ProjectName      string `yaml:"projectName" json:"projectName"`
	OrganizationName string `yaml:"organizationName" json:"organizationName"`

	Navigation []NavEntry `yaml:"headerLinks" json:"headerLinks"`

	HeaderIcon string `yaml:"headerIcon" json:"headerIcon"`
	FooterIcon string `yaml:"footerIcon" json:"footerIcon"`
	Favicon    string `yaml:"favicon" json:"favicon"`

	Colors  ColorTheme `yaml:"colors" json:"colors"`
	Scripts []string   `yaml:"scripts" json:"scripts"`

	CopyrightHolder string `yaml:"copyrightHolder" json:"-"`
	Copyright       string `yaml:"-" json:"copyright"`

	Highlight Highlight `yaml:"highlight" json:"highlight"`
	OnPageNav OnPageNav `yaml:"onPageNav" json:"onPageNav"`
	RepoURL   string    `yaml:"repoUrl" json:"repoUrl"`

	NavCollapsible      bool `yaml:"docsSideNavCollapsible" json:"docsSideNavCollapsible"`
	CleanURLs           bool `yaml:"cleanUrl" json:"cleanUrl"`
	ShowLastUpdatedBy   bool `yaml:"enableUpdateBy" json:"enableUpdateBy"`
	ShowLastUpdatedTime bool `yaml:"enableUpdateTime" json:"enableUpdateTime"`
}

// NavEntry points either to an internal document (Doc) or to an external
// link (Href). Exactly one of them is set.
type NavEntry struct {
	Doc   string `yaml:"doc,omitempty" json:"doc,omitempty"`
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
	Label string `yaml:"label" json:"label"`
}

type Highlight struct {
	Theme string `yaml:"theme" json:"theme"`
}

type ColorTheme map[ThemeSlot]string

func (n NavEntry) IsDoc() bool {
	return n.Doc != ""
}

func (n NavEntry) IsExternal() bool {
	return n.Href != ""
}

func (n NavEntry) Target() string {
	if n.IsDoc() {
		return n.Doc
	}
	return n.Href
}

func (s SiteConfiguration) Clone() SiteConfiguration {
	out := s
	out.Navigation = append([]NavEntry(nil), s.Navigation...)
	out.Scripts = append([]string(nil), s.Scripts...)
	out.Colors = maps.Clone(s.Colors)
	return out
}

// MarshalJSON uses the generator's key names, e.g. "primaryColor".
func (c ColorTheme) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(c))
	for slot, v := range c {
		out[string(slot)+"Color"] = v
	}
	return json.Marshal(out)
}

// UnmarshalYAML merges into the existing theme and accepts the generator's
// spelling ("primaryColor") as well as the bare slot name.
func (c *ColorTheme) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if *c == nil {
		*c = make(ColorTheme, len(raw))
	}
	for k, v := range raw {
		(*c)[ThemeSlot(strings.TrimSuffix(k, "Color"))] = v
	}
	return nil
}
