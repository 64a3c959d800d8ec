package cli

import (
	"fmt"

	"atsmatch/internal/config"
	"atsmatch/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume scoring and skill extraction",
	Long: `Start an HTTP server that provides REST API endpoints for resume
scoring and skill extraction.

Available endpoints:
- POST /score: Score a resume against a job description
- POST /extract: Extract skills from a job description
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

Scoring weights are reloaded from the config file while the server runs,
so a weight change takes effect without a restart.

TLS Configuration:
- Use --tls-mode to set TLS mode: disabled, server
- Use --cert-file and --key-file for TLS certificates`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tls-mode", "", "TLS mode: disabled, server (overrides config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.mode", "tls-mode")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Validate TLS configuration after applying overrides
	tempConfig := &config.Config{Server: cfg.Server}
	if err := tempConfig.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("invalid TLS configuration: %w", err)
	}

	pipeline, err := buildAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	// Scoring weight changes in the config file apply to in-flight servers
	// without a restart.
	cfg.WatchWeights(logger, func(engineCfg config.EngineConfig) {
		pipeline.UpdateEngine(engineCfg.Weights, engineCfg.Suggestions)
		logger.Info("Scoring engine configuration reloaded",
			"skill", engineCfg.Weights.Skill,
			"semantic", engineCfg.Weights.Semantic,
			"structure", engineCfg.Weights.Structure,
			"experience", engineCfg.Weights.Experience,
			"suggestions", engineCfg.Suggestions)
	})

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, pipeline, logger).Start()
}
