package server

import (
	"crypto/tls"
	"fmt"
	"net/http"
)

// configureTLS applies the configured TLS mode to the HTTP server
func (s *Server) configureTLS(httpServer *http.Server) error {
	switch s.TLSConfig.Mode {
	case "", "disabled":
		return nil
	case "server":
		tlsConfig, err := s.buildTLSConfig()
		if err != nil {
			return fmt.Errorf("failed to build TLS configuration: %w", err)
		}
		httpServer.TLSConfig = tlsConfig
		return nil
	default:
		return fmt.Errorf("unsupported TLS mode: %s", s.TLSConfig.Mode)
	}
}

// buildTLSConfig creates the TLS configuration for server mode
func (s *Server) buildTLSConfig() (*tls.Config, error) {
	if s.TLSConfig.CertFile == "" || s.TLSConfig.KeyFile == "" {
		return nil, fmt.Errorf("TLS server mode requires certFile and keyFile")
	}

	// Verify the certificate pair loads before the listener starts
	if _, err := tls.LoadX509KeyPair(s.TLSConfig.CertFile, s.TLSConfig.KeyFile); err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	switch s.TLSConfig.MinVersion {
	case "1.2", "":
		tlsConfig.MinVersion = tls.VersionTLS12
	case "1.3":
		tlsConfig.MinVersion = tls.VersionTLS13
	default:
		return nil, fmt.Errorf("unsupported minimum TLS version: %s", s.TLSConfig.MinVersion)
	}

	return tlsConfig, nil
}
