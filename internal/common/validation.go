package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateTargetPath validates a target file path: non-empty and without
// parent-directory components that would escape the base directory
func ValidateTargetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("target path cannot be empty")
	}

	cleaned := filepath.ToSlash(filepath.Clean(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("target path must stay inside the base directory: %s", path)
	}

	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("target path must name a file, not a directory: %s", path)
	}

	return nil
}

// ValidateTypeAssertion validates the text inserted after a call expression
func ValidateTypeAssertion(suffix string) error {
	if strings.TrimSpace(suffix) == "" {
		return fmt.Errorf("type assertion cannot be empty")
	}

	if strings.ContainsAny(suffix, "\r\n") {
		return fmt.Errorf("type assertion must be a single line")
	}

	if !strings.HasPrefix(strings.TrimLeft(suffix, " "), "as ") {
		return fmt.Errorf("type assertion must start with 'as': %s", suffix)
	}

	return nil
}

// ValidateBool validates a true/false setting
func ValidateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value: %s", value)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
