package errors

import (
	"strings"
	"unicode"
)

// ValidatePositionID checks that a position id is a usable board position.
// Position ids are 1-indexed; zero and negative ids have no slot.
func ValidatePositionID(id int) error {
	if id < 1 {
		return New(ErrCodeInvalidInput, "position id must be >= 1, got %d", id)
	}
	return nil
}

// ValidateQuantity checks that a gun quantity is non-negative.
func ValidateQuantity(qty int) error {
	if qty < 0 {
		return New(ErrCodeInvalidInput, "quantity must be >= 0, got %d", qty)
	}
	return nil
}

// ValidateOutputDir validates the directory artifacts are written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}

// ValidateUploadName validates a file name supplied by an API client.
// It must be a simple basename so it can be echoed back safely.
func ValidateUploadName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "file name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "file name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "file name cannot contain path traversal sequences (..)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "file name contains invalid control characters")
		}
	}
	return nil
}
