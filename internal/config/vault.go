package config

import (
	"fmt"
	"os"
	"strings"

	"atsmatch/internal/errors"

	"github.com/hashicorp/vault/api"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	// Secret paths
	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets defines where to find secrets in Vault
type VaultSecrets struct {
	// APIKeys expects a single "keys" field with comma-separated values,
	// e.g. "key1,key2,key3"
	APIKeys   string `mapstructure:"apiKeys"`   // Path to server API keys secret
	GeminiKey string `mapstructure:"geminiKey"` // Path to Gemini API key
}

// VaultClient wraps the Vault API client
type VaultClient struct {
	client *api.Client
	config VaultConfig
	logger *errors.Logger
}

// NewVaultClient creates a new Vault client from configuration
func NewVaultClient(config VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !config.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled")
		}
		return nil, nil
	}

	vaultConfig := api.DefaultConfig()
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
	}

	token, err := resolveVaultToken(config)
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to resolve Vault token")
		}
		return nil, err
	}
	client.SetToken(token)

	health, err := client.Sys().Health()
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to connect to Vault", "address", vaultConfig.Address)
		}
		return nil, fmt.Errorf("failed to connect to vault: %w", err)
	}

	if logger != nil {
		logger.Info("Connected to Vault",
			"address", vaultConfig.Address,
			"version", health.Version,
			"sealed", health.Sealed)
	}

	return &VaultClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// resolveVaultToken resolves the Vault token from config or file
func resolveVaultToken(config VaultConfig) (string, error) {
	token := config.Token

	if token == "" && config.TokenFile != "" {
		tokenBytes, err := os.ReadFile(config.TokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(tokenBytes))
	}

	if token == "" {
		return "", fmt.Errorf("vault token is required when vault is enabled")
	}

	return token, nil
}

// GetSecretV2 retrieves a secret's data from a Vault KVv2 store.
func (vc *VaultClient) GetSecretV2(path string) (map[string]any, error) {
	if vc == nil {
		return nil, fmt.Errorf("vault client not initialized")
	}

	secret, err := vc.client.Logical().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret from %s: %w", path, err)
	}

	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("secret not found at path: %s", path)
	}

	data, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'data' field)", path)
	}

	return data, nil
}

// GetStringSecret retrieves a string value from a Vault secret
func (vc *VaultClient) GetStringSecret(path, key string) (string, error) {
	data, err := vc.GetSecretV2(path)
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in secret %s", key, path)
	}
	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key '%s' is not a string in secret %s", key, path)
	}
	return strValue, nil
}

// GetStringSliceSecret retrieves a comma-separated string as a slice from Vault
func (vc *VaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	value, err := vc.GetStringSecret(path, key)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []string{}, nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, len(parts))
	for i, part := range parts {
		result[i] = strings.TrimSpace(part)
	}
	return result, nil
}

// ApplyVaultSecrets loads secrets from Vault and applies them to the config
func ApplyVaultSecrets(config *Config, logger *errors.Logger) error {
	if !config.Vault.Enabled {
		return nil
	}

	client, err := NewVaultClient(config.Vault, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize vault client: %w", err)
	}
	if client == nil {
		return nil
	}

	if err := loadServerAPIKeysFromVault(client, config, logger); err != nil {
		return err
	}

	if err := loadGeminiKeyFromVault(client, config, logger); err != nil {
		return err
	}

	return nil
}

// loadServerAPIKeysFromVault loads server API keys from Vault
func loadServerAPIKeysFromVault(client *VaultClient, config *Config, logger *errors.Logger) error {
	path := config.Vault.Secrets.APIKeys
	if path == "" {
		return nil
	}

	apiKeys, err := client.GetStringSliceSecret(path, "keys")
	if err != nil {
		return fmt.Errorf("failed to load API keys from vault: %w", err)
	}

	if len(apiKeys) > 0 {
		config.Server.APIKeys = apiKeys
		if logger != nil {
			logger.Info("API keys loaded from Vault", "count", len(apiKeys))
		}
	} else if logger != nil {
		logger.Warn("No API keys found in Vault", "path", path)
	}

	return nil
}

// loadGeminiKeyFromVault loads the Gemini API key from Vault and applies it
// to every AI operation that has no explicit key of its own
func loadGeminiKeyFromVault(client *VaultClient, config *Config, logger *errors.Logger) error {
	path := config.Vault.Secrets.GeminiKey
	if path == "" {
		return nil
	}

	geminiKey, err := client.GetStringSecret(path, "api_key")
	if err != nil {
		return fmt.Errorf("failed to load Gemini API key from vault: %w", err)
	}

	if geminiKey == "" {
		if logger != nil {
			logger.Warn("Empty Gemini API key found in Vault", "path", path)
		}
		return nil
	}

	config.AI.APIKey = geminiKey
	if config.AI.Extract.APIKey == "" {
		config.AI.Extract.APIKey = geminiKey
	}
	if config.AI.Suggest.APIKey == "" {
		config.AI.Suggest.APIKey = geminiKey
	}
	if config.AI.Embedding.APIKey == "" {
		config.AI.Embedding.APIKey = geminiKey
	}

	if logger != nil {
		logger.Info("Gemini API key loaded from Vault")
	}

	return nil
}
