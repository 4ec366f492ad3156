package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/difysjs/docsite/config/site"
	"github.com/difysjs/docsite/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func testSite() site.SiteConfiguration {
	return site.Build(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("out/siteConfig.yml") != FormatYAML {
		t.Error("yml extension not detected as yaml")
	}
	if FormatFromPath("siteConfig.json") != FormatJSON {
		t.Error("json extension not detected as json")
	}
	if FormatFromPath("siteConfig") != FormatJSON {
		t.Error("missing extension must default to json")
	}
}

func TestEncode_JSON(t *testing.T) {
	data, err := Encode(testSite(), FormatJSON)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc["copyright"] != "Copyright © 2024 Difys team" {
		t.Errorf("copyright = %v", doc["copyright"])
	}
	if _, ok := doc["copyrightHolder"]; ok {
		t.Error("copyrightHolder must not be exported")
	}
	colors, _ := doc["colors"].(map[string]any)
	if colors["primaryColor"] != "#151515" || colors["secondaryColor"] != "#ffb800" {
		t.Errorf("colors = %v", colors)
	}
	highlight, _ := doc["highlight"].(map[string]any)
	if highlight["theme"] != "monokai" {
		t.Errorf("highlight = %v", doc["highlight"])
	}
	if _, ok := doc["highlightTheme"]; ok {
		t.Error("highlight theme must be nested under highlight")
	}
	links, _ := doc["headerLinks"].([]any)
	if len(links) != 2 {
		t.Fatalf("headerLinks = %v", doc["headerLinks"])
	}
	first, _ := links[0].(map[string]any)
	if first["label"] != "Quick Start" || first["doc"] != "introduction/quick-start" {
		t.Errorf("headerLinks[0] = %v", first)
	}
	if _, ok := first["href"]; ok {
		t.Error("doc link must not carry href")
	}
}

func TestEncode_YAMLKeepsOrder(t *testing.T) {
	data, err := Encode(testSite(), FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "title: difys docs\n") {
		t.Errorf("yaml does not start with title:\n%s", out)
	}
	if strings.Index(out, "sidebarScroll.js") > strings.Index(out, "buttons.js") {
		t.Error("script order not preserved")
	}

	var back struct {
		Colors    map[string]string `yaml:"colors"`
		Scripts   []string          `yaml:"scripts"`
		DocsURL   string            `yaml:"docsUrl"`
		Highlight struct {
			Theme string `yaml:"theme"`
		} `yaml:"highlight"`
	}
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if back.Colors["primaryColor"] != "#151515" {
		t.Errorf("primaryColor = %q", back.Colors["primaryColor"])
	}
	if len(back.Scripts) != 4 {
		t.Errorf("scripts = %v", back.Scripts)
	}
	if back.Highlight.Theme != "monokai" {
		t.Errorf("highlight.theme = %q", back.Highlight.Theme)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testSite(), FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"tagline": "Touch botting framework"`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteFile_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "siteConfig.json")
	if err := os.WriteFile(path, []byte("stale"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, testSite(), FormatJSON); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Encode(testSite(), FormatJSON)
	if sum, err := utils.ComputeFileHash(path); err != nil || sum != utils.HashBytes(want) {
		t.Errorf("file hash = %s (%v), want %s", sum, err, utils.HashBytes(want))
	}
	if !json.Valid(data) {
		t.Errorf("file is not valid JSON:\n%s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "siteConfig.json")
	if err := WriteFile(path, testSite(), FormatJSON); err == nil {
		t.Error("WriteFile() expected error for missing directory, got nil")
	}
}
