package config

import (
	"fmt"

	"github.com/zoro11031/fix-result-types/internal/common"
	"github.com/zoro11031/fix-result-types/internal/patcher"
)

// Configuration key constants to prevent typos and enable autocomplete
const (
	KeyTargetFiles   = "TARGET_FILES"   // Comma-separated list of files to patch
	KeyTypeAssertion = "TYPE_ASSERTION" // Text inserted after each matched call
	KeyBackup        = "BACKUP"         // Keep a timestamped copy before writing
)

// DefaultFileName is the config file looked up in the base directory
const DefaultFileName = ".fix-result-types.conf"

// Defaults holds values used when a key is not set in the config file.
// TARGET_FILES has no entry here; the built-in list comes from patcher.Targets.
var Defaults = map[string]string{
	KeyTypeAssertion: patcher.DefaultTypeAssertion,
	KeyBackup:        "false",
}

// validators check a value before it is stored
var validators = map[string]func(string) error{
	KeyTargetFiles: func(v string) error {
		paths := splitList(v)
		if len(paths) == 0 {
			return fmt.Errorf("target list cannot be empty")
		}
		for _, p := range paths {
			if err := common.ValidateTargetPath(p); err != nil {
				return err
			}
		}
		return nil
	},
	KeyTypeAssertion: common.ValidateTypeAssertion,
	KeyBackup:        common.ValidateBool,
}

// IsKnownKey reports whether key is a recognised configuration key
func IsKnownKey(key string) bool {
	_, ok := validators[key]
	return ok
}

// ValidateValue checks value against the rules for key
func ValidateValue(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return nil
	}
	return validate(value)
}
