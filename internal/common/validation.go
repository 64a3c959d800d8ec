package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks that format is one of the configured supported
// formats. An empty supported list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s', expected one of: %s",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns the configured format list for shell completion.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
