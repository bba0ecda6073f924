package manager

import (
	"encoding/json"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config is the environment-supplied manager configuration.  Plugin names
// an implementation directly; ConfigPath points at a json document that
// can additionally carry settings.  When both are set, Plugin wins for
// the identifier.
type Config struct {
	Plugin     string `env:"ASSETRESOLVE_PLUGIN"`
	ConfigPath string `env:"ASSETRESOLVE_CONFIG"`
}

// FileConfig is the contents of a manager configuration document.
type FileConfig struct {
	Identifier string                 `json:"identifier"`
	Settings   map[string]interface{} `json:"settings"`
}

// ConfigFromEnv loads manager configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "could not parse manager config from environment")
	}
	return cfg, nil
}

// ParseConfig parses a byte stream into a manager configuration document
func ParseConfig(r io.Reader, c *FileConfig) error {
	err := json.NewDecoder(r).Decode(c)
	if err != nil {
		return errors.Wrap(err, "could not decode json manager config")
	}
	return nil
}

func readConfigFile(path string) (fc FileConfig, err error) {
	file, err := os.Open(path)
	if err != nil {
		return fc, errors.Wrapf(err, "could not open manager config at %s", path)
	}
	defer func() {
		if e := file.Close(); e != nil {
			err = errors.Wrapf(err, "error closing config file at %s", path)
		}
	}()

	err = ParseConfig(file, &fc)
	if err != nil {
		return fc, errors.Wrapf(err, "could not parse manager config at %s", path)
	}

	return fc, nil
}
