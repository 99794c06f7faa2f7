package config

import (
	"github.com/arthur-debert/pear2modman/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Marshal renders a configuration as TOML, in the same shape the loader reads
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return data, nil
}
