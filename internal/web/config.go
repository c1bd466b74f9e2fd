package web

import (
	"errors"
	"fmt"
	"strings"
)

// Config configures the browser renderer.
type Config struct {
	Bind    string
	Port    int
	Prefix  string
	TLSCert string
	TLSKey  string
	Profile bool
	Version string
}

// Validate checks the listener settings.
func (c *Config) Validate() error {
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.TLSCert != "" && c.TLSKey != "" {
		return "https"
	}
	return "http"
}

// prefix returns the mount path without a trailing slash.
func (c *Config) prefix() string {
	return strings.TrimSuffix(c.Prefix, "/")
}
