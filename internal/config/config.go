// Package config loads go-mdb settings from a YAML file and GOMDB_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/obfuscation"
)

type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`

	Output struct {
		Format   string `mapstructure:"format"` // text, json or summary
		Digest   bool   `mapstructure:"digest"`
		MaxPages int    `mapstructure:"max_pages"` // 0 = all
	} `mapstructure:"output"`

	Obfuscation struct {
		KeyLength int `mapstructure:"key_length"`
	} `mapstructure:"obfuscation"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.digest", false)
	v.SetDefault("output.max_pages", 0)
	v.SetDefault("obfuscation.key_length", obfuscation.DefaultKeyLength)
}

// Load reads path if it is not empty, then applies environment overrides
// such as GOMDB_OUTPUT_FORMAT=json. The result is not validated; callers
// apply their own overrides first and then call Validate.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("gomdb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "summary":
	default:
		return fmt.Errorf("config: output.format %q must be text, json or summary", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q must be text or json", c.Log.Format)
	}
	if c.Obfuscation.KeyLength < 1 || c.Obfuscation.KeyLength > format.SecretSize {
		return fmt.Errorf("config: obfuscation.key_length %d outside [1, %d]", c.Obfuscation.KeyLength, format.SecretSize)
	}
	if c.Output.MaxPages < 0 {
		return fmt.Errorf("config: output.max_pages must not be negative")
	}
	return nil
}
