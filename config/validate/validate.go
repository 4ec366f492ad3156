package validate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Standardized error message helpers

func ErrRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func ErrOneOf(field string, allowed any, value any) error {
	return fmt.Errorf("%s must be one of %v (got %v)", field, allowed, value)
}

func ErrInvalid(field string, reason string) error {
	return fmt.Errorf("%s: %s", field, reason)
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(path)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	err := ErrOneOf(path, allowed, value)
	LogConfigError(path, value, err)
	v.Add(err)
	return false
}

// RequireAbsoluteURL accepts http and https URLs with a host.
func RequireAbsoluteURL(v *ValidationErrors, path string, value string) bool {
	if !RequireString(v, path, value) {
		return false
	}
	if !IsAbsoluteURL(value) {
		err := ErrInvalid(path, "must be an absolute http(s) URL")
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	return true
}

func RequireColor(v *ValidationErrors, path string, value string) bool {
	if !RequireString(v, path, value) {
		return false
	}
	if !hexColor.MatchString(value) {
		err := ErrInvalid(path, "must be a #rgb or #rrggbb color")
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	return true
}

func IsAbsoluteURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Len() int {
	return len(v.errors)
}

func (v *ValidationErrors) Unwrap() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func LogConfigOK(path string, value any) {
	log.Logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

func CheckDuration(v *ValidationErrors, path string, d time.Duration) {
	if d <= 0 {
		err := errors.New("must be > 0")
		LogConfigError(path, d, err)
		v.Add(fmt.Errorf("%s %w", path, err))
	} else {
		LogConfigOK(path, d)
	}
}
