package utils

import "regexp"

var pathSeparators = regexp.MustCompile(`[/\\:]`)

// SanitizeFileName replaces path separators and drive colons with '-'
func SanitizeFileName(name string) string {
	return pathSeparators.ReplaceAllString(name, "-")
}
