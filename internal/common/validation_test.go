package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
	}{
		{
			name:             "valid format",
			format:           "json",
			supportedFormats: supported,
		},
		{
			name:             "unsupported format",
			format:           "yaml",
			supportedFormats: supported,
			expectError:      true,
		},
		{
			name:             "case sensitive",
			format:           "JSON",
			supportedFormats: supported,
			expectError:      true,
		},
		{
			name:             "empty format string",
			format:           "",
			supportedFormats: supported,
			expectError:      true,
		},
		{
			name:             "no restrictions configured",
			format:           "yaml",
			supportedFormats: []string{},
		},
		{
			name:             "single supported format",
			format:           "markdown",
			supportedFormats: []string{"markdown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error for format %q but got none", tt.format)
				}
				if !strings.Contains(err.Error(), tt.format) {
					t.Errorf("Error %q does not mention the rejected format %q", err.Error(), tt.format)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text", "markdown"}
	result := GetSupportedFormats(formats)

	if len(result) != len(formats) {
		t.Fatalf("Expected %d formats, got %d", len(formats), len(result))
	}
	for i, want := range formats {
		if result[i] != want {
			t.Errorf("Expected format[%d] = %q, got %q", i, want, result[i])
		}
	}
}
