package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexTripletRegex matches a six-digit hex triplet color string ("#RRGGBB").
// Shorthand ("#RGB") and alpha-carrying forms are rejected: layer alpha is
// stored as a separate attribute, never inside the color string.
var hexTripletRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexTriplet validates a color string as a "#RRGGBB" hex triplet.
//
// The layer model itself accepts any string in its color setters; this
// function is for boundary layers (CLI, dialogs) that want to reject bad
// input before it is stored.
func ValidateHexTriplet(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexTripletRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex triplet: %q (expected #RRGGBB)", s)
	}
	return nil
}

// ValidateLabel validates a layer label for display and persistence.
//
// The rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidLabel, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateProjectPath validates a project or manifest file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateProjectPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
