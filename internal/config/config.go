package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/patrickayoup/gobunpro/internal/client"
	"github.com/patrickayoup/gobunpro/pkg/validator"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1s"`
	Debug   bool          `mapstructure:"debug"`
	JSON    bool          `mapstructure:"json"`
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"api-key":  "api_key",
	"base-url": "base_url",
	"timeout":  "timeout",
	"debug":    "debug",
	"json":     "json",
}

var envKeys = map[string]string{
	"api_key":  "BUNPRO_API_KEY",
	"base_url": "BUNPRO_BASE_URL",
	"timeout":  "BUNPRO_TIMEOUT",
	"debug":    "BUNPRO_DEBUG",
	"json":     "BUNPRO_JSON",
}

// Init resolves the configuration from flags, environment and an optional
// config file, in that order of precedence.
func Init(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("timeout", client.DefaultTimeout)

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// readConfigFile loads CONFIG_PATH when set. Otherwise it looks for
// CONFIG_NAME (default "default") in ./configs and ~/.config/gobunpro and
// carries on without one.
func readConfigFile(v *viper.Viper) error {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.SetConfigName(configName)
	v.AddConfigPath("configs")
	v.AddConfigPath("$HOME/.config/gobunpro")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}
