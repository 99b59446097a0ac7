package core

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ErrInvalid marks input that fails domain validation. Callers match it with
// errors.Is and surface the wrapped detail to the user.
var ErrInvalid = errors.New("invalid input")

// DefaultColor is assigned to sections created without an explicit color.
const DefaultColor = "slate"

var allowedColors = map[string]bool{
	"slate": true, "gray": true,
	"blue": true, "navy": true, "indigo": true, "sky": true, "cyan": true,
	"teal": true, "mint": true,
	"green": true, "lime": true,
	"amber": true, "gold": true, "orange": true,
	"red":    true,
	"pink":   true,
	"purple": true,
	"coffee": true,
}

// NormalizeName trims surrounding whitespace from a user-supplied name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateSectionName rejects names that are empty after trimming.
func ValidateSectionName(name string) error {
	if NormalizeName(name) == "" {
		return fmt.Errorf("%w: section name cannot be empty", ErrInvalid)
	}
	return nil
}

// ValidateColor checks a color against the fixed allowlist. The comparison is
// case-insensitive; use NormalizeColor for the canonical form.
func ValidateColor(color string) error {
	if !allowedColors[NormalizeColor(color)] {
		return fmt.Errorf("%w: invalid color %q (allowed: %s)", ErrInvalid, color, strings.Join(AllowedColors(), ", "))
	}
	return nil
}

func NormalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}

// AllowedColors returns the color allowlist in sorted order.
func AllowedColors() []string {
	colors := make([]string, 0, len(allowedColors))
	for c := range allowedColors {
		colors = append(colors, c)
	}
	sort.Strings(colors)
	return colors
}

// ValidateLinkTitle rejects titles that are empty after trimming.
func ValidateLinkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: link title cannot be empty", ErrInvalid)
	}
	return nil
}

// ValidateLinkURL requires an absolute http or https URL.
func ValidateLinkURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return fmt.Errorf("%w: link url cannot be empty", ErrInvalid)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("%w: link url is not valid: %v", ErrInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: link url must use http or https", ErrInvalid)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: link url must be absolute", ErrInvalid)
	}

	return nil
}
