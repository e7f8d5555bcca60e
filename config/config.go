// Package config embeds the configuration used when no config file is given.
package config

import _ "embed"

// DefaultConfigYml targets a local devnet with postgres and redis on their
// default ports.
//
//go:embed default.config.yml
var DefaultConfigYml string
