package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"atsmatch/internal/errors"
)

func TestNewVaultClientDisabled(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)

	client, err := NewVaultClient(VaultConfig{Enabled: false}, logger)
	if err != nil {
		t.Fatalf("Expected no error for disabled vault, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when vault is disabled")
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	logger := errors.NewLogger(slog.LevelError)
	config := &Config{
		Vault: VaultConfig{Enabled: false},
	}

	if err := ApplyVaultSecrets(config, logger); err != nil {
		t.Fatalf("Expected no error for disabled vault, got: %v", err)
	}
	if len(config.Server.APIKeys) != 0 {
		t.Error("Expected no API keys to be applied when vault is disabled")
	}
}

func TestResolveVaultToken(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("  file-token\n"), 0600); err != nil {
		t.Fatalf("Failed to write token file: %v", err)
	}

	tests := []struct {
		name        string
		config      VaultConfig
		expected    string
		expectError bool
	}{
		{
			name:     "direct token",
			config:   VaultConfig{Token: "direct-token"},
			expected: "direct-token",
		},
		{
			name:     "token from file is trimmed",
			config:   VaultConfig{TokenFile: tokenFile},
			expected: "file-token",
		},
		{
			name:     "direct token takes precedence over file",
			config:   VaultConfig{Token: "direct-token", TokenFile: tokenFile},
			expected: "direct-token",
		},
		{
			name:        "missing token file",
			config:      VaultConfig{TokenFile: filepath.Join(t.TempDir(), "missing")},
			expectError: true,
		},
		{
			name:        "no token configured",
			config:      VaultConfig{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := resolveVaultToken(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if token != tt.expected {
				t.Errorf("Expected token %q, got %q", tt.expected, token)
			}
		})
	}
}

func TestGetSecretV2NilClient(t *testing.T) {
	var client *VaultClient

	if _, err := client.GetSecretV2("secret/data/atsmatch"); err == nil {
		t.Error("Expected error from nil vault client")
	}
}
