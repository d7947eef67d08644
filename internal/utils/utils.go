// Package utils contains general helper functions used across the codefeed tool.
package utils

import "strings"

// Ignore file constants used across the project.
const (
	// IgnoreFileName is the name of the project's ignore file.
	IgnoreFileName = ".ignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
)

const hiddenNamePrefix = "."

// IsHiddenName reports whether a base name denotes a hidden filesystem entry.
// The bare current-directory alias "." is not considered hidden.
func IsHiddenName(baseName string) bool {
	if baseName == hiddenNamePrefix {
		return false
	}
	return strings.HasPrefix(baseName, hiddenNamePrefix)
}
