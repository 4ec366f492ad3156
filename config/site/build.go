package site

import (
	"fmt"
	"time"
)

const DefaultCopyrightHolder = "Difys team"

// Defaults returns the site literals without the computed copyright.
func Defaults() SiteConfiguration {
	return SiteConfiguration{
		Title:            "difys docs",
		Tagline:          "Touch botting framework",
		URL:              "https://difysjs.github.io",
		BaseURL:          "/",
		DocsURL:          "",
		ProjectName:      "difysjs",
		OrganizationName: "difysjs",
		Navigation: []NavEntry{
			{Doc: "introduction/quick-start", Label: "Quick Start"},
			{Href: "https://www.github.com/difysjs/difys", Label: "Github"},
		},
		HeaderIcon: "img/difys.svg",
		FooterIcon: "img/difys.svg",
		Favicon:    "img/favicon.ico",
		Colors: ColorTheme{
			SlotPrimary:   "#151515",
			SlotSecondary: "#ffb800",
		},
		Scripts: []string{
			"/scripts/sidebarScroll.js",
			"/scripts/codeblock.js",
			"https://cdnjs.cloudflare.com/ajax/libs/clipboard.js/2.0.6/clipboard.min.js",
			"https://buttons.github.io/buttons.js",
		},
		CopyrightHolder:     DefaultCopyrightHolder,
		Highlight:           Highlight{Theme: "monokai"},
		OnPageNav:           OnPageNavSeparate,
		RepoURL:             "https://github.com/difysjs/difys",
		NavCollapsible:      true,
		CleanURLs:           true,
		ShowLastUpdatedBy:   true,
		ShowLastUpdatedTime: true,
	}
}

func CopyrightNotice(year int, holder string) string {
	return fmt.Sprintf("Copyright © %d %s", year, holder)
}

// Build returns the default configuration stamped with the year of now.
func Build(now time.Time) SiteConfiguration {
	s := Defaults()
	s.StampCopyright(now)
	return s
}

func BuildSiteConfiguration() SiteConfiguration {
	return Build(time.Now())
}

func (s *SiteConfiguration) StampCopyright(now time.Time) {
	holder := s.CopyrightHolder
	if holder == "" {
		holder = DefaultCopyrightHolder
	}
	s.Copyright = CopyrightNotice(now.Year(), holder)
}
