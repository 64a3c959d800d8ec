package config

import (
	"atsmatch/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// WatchWeights watches the loaded config file and invokes onChange with the
// freshly parsed scoring configuration whenever the file is rewritten. Only
// the engine section is hot-reloadable; server and AI settings require a
// restart. No-op when the config came entirely from defaults and environment.
func (c *Config) WatchWeights(logger *errors.Logger, onChange func(EngineConfig)) {
	if c.viper == nil || c.viper.ConfigFileUsed() == "" {
		return
	}

	c.viper.OnConfigChange(func(e fsnotify.Event) {
		var updated Config
		if err := c.viper.Unmarshal(&updated); err != nil {
			if logger != nil {
				logger.Warn("Ignoring config change, unmarshal failed", "file", e.Name, "error", err)
			}
			return
		}

		if err := updated.validateEngineConfig(); err != nil {
			if logger != nil {
				logger.Warn("Ignoring config change, invalid engine settings", "file", e.Name, "error", err)
			}
			return
		}

		if logger != nil {
			logger.Info("Scoring configuration reloaded", "file", e.Name)
		}
		onChange(updated.Engine)
	})
	c.viper.WatchConfig()
}
