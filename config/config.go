// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads a moosed node's YAML configuration: its own
// identity, the address it listens on, a role->identity assignment,
// and its metrics, choreographer and TLS settings.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/luxfi/moose/ids"
)

// Config is the top-level moosed configuration document.
type Config struct {
	// Self is this node's own identity, handed to the choreography server
	// and logged at startup. It does not select which operations run:
	// every operation of a launched computation is executed.
	Self string `yaml:"self"`

	// ListenAddr is the address the choreography gRPC server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// Roles is a role assignment, available through RoleAssignment.
	// moosed does not apply it to launches: each launch uses the
	// assignment it carries.
	Roles map[string]string `yaml:"roles"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// MetricsAddr, if set, is the address an HTTP /metrics endpoint is
	// served on. Empty disables the metrics server.
	MetricsAddr string `yaml:"metrics_addr"`

	// Choreographer, if set, is the identity (extracted from the
	// caller's peer TLS certificate) that alone may launch, retrieve, or
	// abort sessions on this node. Empty leaves the server unconfigured,
	// in which case a request carrying any identity is rejected too.
	Choreographer string `yaml:"choreographer"`

	// TLSCertFile and TLSKeyFile are this node's own server certificate
	// and key. TLSClientCAFile, if set, is the CA used to verify callers'
	// client certificates so Choreographer can be enforced; it requires
	// TLSCertFile/TLSKeyFile to also be set.
	TLSCertFile     string `yaml:"tls_cert_file"`
	TLSKeyFile      string `yaml:"tls_key_file"`
	TLSClientCAFile string `yaml:"tls_client_ca_file"`
}

// Load reads and parses a Config from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RoleAssignment converts the configured Roles map into an
// ids.RoleAssignment.
func (c Config) RoleAssignment() ids.RoleAssignment {
	ra := make(ids.RoleAssignment, len(c.Roles))
	for role, identity := range c.Roles {
		ra[ids.Role(role)] = ids.Identity(identity)
	}
	return ra
}
