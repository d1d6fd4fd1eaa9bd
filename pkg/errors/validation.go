package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength bounds board, list and card names.
const MaxNameLength = 256

// ValidateName validates a user-visible name such as a list or card title.
//
// The validation rules are intentionally conservative:
//   - No empty or all-whitespace names
//   - No control characters (they corrupt terminal rendering)
//   - Valid UTF-8
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "%s name is not valid UTF-8", kind)
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "%s name too long (max %d characters)", kind, MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}

	return nil
}

// ValidateFilePath validates a board or script path given on the command
// line. ext, when non-empty, is the required extension (e.g. ".toml").
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//   - Must carry ext when ext is set
func ValidateFilePath(path, ext string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	if ext != "" && !strings.EqualFold(filepath.Ext(path), ext) {
		return New(ErrCodeInvalidPath, "path must have a %s extension", ext)
	}

	return nil
}
