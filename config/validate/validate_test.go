package validate

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://difysjs.github.io", true},
		{"http://localhost:3000/docs", true},
		{"//cdn.example.com/x.js", false},
		{"/scripts/codeblock.js", false},
		{"ftp://example.com", false},
		{"https://", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAbsoluteURL(tt.in); got != tt.want {
			t.Errorf("IsAbsoluteURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRequireColor(t *testing.T) {
	for _, c := range []string{"#151515", "#FFB800", "#abc"} {
		var v ValidationErrors
		if !RequireColor(&v, "colors/primary", c) {
			t.Errorf("RequireColor(%q) rejected: %v", c, v.Error())
		}
	}
	for _, c := range []string{"", "151515", "#12345", "#gggggg", "red"} {
		var v ValidationErrors
		if RequireColor(&v, "colors/primary", c) {
			t.Errorf("RequireColor(%q) accepted", c)
		}
		if v.Len() != 1 {
			t.Errorf("RequireColor(%q) recorded %d errors, want 1", c, v.Len())
		}
	}
}

func TestRequireOneOf(t *testing.T) {
	var v ValidationErrors
	if !RequireOneOf(&v, "mode", "a", []string{"a", "b"}) {
		t.Error("RequireOneOf rejected allowed value")
	}
	if RequireOneOf(&v, "mode", "c", []string{"a", "b"}) {
		t.Error("RequireOneOf accepted unknown value")
	}
	if !strings.Contains(v.Error(), "mode must be one of [a b] (got c)") {
		t.Errorf("unexpected message: %q", v.Error())
	}
}

func TestCheckDuration(t *testing.T) {
	var v ValidationErrors
	CheckDuration(&v, "server/timeouts/read", time.Second)
	CheckDuration(&v, "server/timeouts/idle", 0)
	if v.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", v.Len())
	}
}

func TestValidationErrors(t *testing.T) {
	var v ValidationErrors
	if v.HasErrors() {
		t.Error("empty ValidationErrors reports errors")
	}
	v.Add(nil)
	if v.HasErrors() {
		t.Error("Add(nil) recorded an error")
	}

	sentinel := errors.New("title is required")
	v.Add(sentinel)
	v.Add(ErrRequired("url"))

	if !errors.Is(&v, sentinel) {
		t.Error("errors.Is does not see wrapped error")
	}
	msg := v.Error()
	if !strings.HasPrefix(msg, "configuration validation failed:\n") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, " - url is required\n") {
		t.Errorf("Error() missing entry: %q", msg)
	}
}
