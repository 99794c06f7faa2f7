// Package config handles configuration management for pear2modman.
// Configuration is layered with koanf: the embedded defaults.toml first,
// then an optional .pear2modman.toml in the package root, then
// PEAR2MODMAN_ environment variables, then command-line overrides.
package config
