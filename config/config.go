package config

import (
	"github.com/agentsmithers/mcp-server-config/utils"
	"gopkg.in/yaml.v2"
)

// Config is the effective configuration of the mcp-config tool: its own
// logging settings plus the server settings it manages.
type Config struct {
	Log    *Log    `yaml:"log"    json:"log"`
	Server *Server `yaml:"server" json:"server"`
}

func New() *Config {
	return &Config{
		Log:    &Log{},
		Server: DefaultServer(),
	}
}

func (cfg *Config) Validate() error {
	errs := []error{}

	if cfg.Log != nil {
		if err := cfg.Log.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if cfg.Server != nil {
		if err := cfg.Server.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return utils.FlattenErrors(errs)
}

func (cfg *Config) String() string {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(bytes)
}
