package errors

import (
	"strings"
	"unicode"
)

// ValidateCitationPath validates a citation path for use as a node
// identifier. The core accepts any non-empty string; this catches inputs
// that would silently match nothing or corrupt output files.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 256 characters
//   - No control characters or null bytes
//   - No backslashes (citation paths use forward slashes)
//   - No empty segments (leading, trailing, or doubled slashes)
func ValidateCitationPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "citation path cannot be empty")
	}

	const maxPathLength = 256
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "citation path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "citation path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "citation path cannot contain backslashes")
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return New(ErrCodeInvalidPath, "citation path cannot contain empty segments")
		}
	}

	return nil
}

// ValidateSectionRange validates an inclusive numeric section range.
func ValidateSectionRange(min, max int) error {
	if min < 0 || max < 0 {
		return New(ErrCodeInvalidRange, "section numbers cannot be negative")
	}
	if max < min {
		return New(ErrCodeInvalidRange, "range max %d is below min %d", max, min)
	}
	return nil
}
