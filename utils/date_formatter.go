package utils

import "strings"

// splitDate splits YYYY-MM-DD into its three non-empty parts
func splitDate(date string) ([]string, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, false
	}
	return parts, true
}

// FormatDate converts YYYY-MM-DD to DD/MM/YYYY.
// Input that does not have three parts is returned unchanged.
func FormatDate(date string) string {
	parts, ok := splitDate(date)
	if !ok {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FileDate converts YYYY-MM-DD to DD-MM-YYYY for use in file names.
// Input that does not have three parts is returned unchanged.
func FileDate(date string) string {
	parts, ok := splitDate(date)
	if !ok {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
