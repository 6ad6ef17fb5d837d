package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	Store  StoreConfig
	Random RandomConfig
	UI     UIConfig
	Log    LogConfig
}

// StoreConfig selects where named lists are persisted.
type StoreConfig struct {
	Backend string `validate:"oneof=json sqlite badger"`
	Dir     string // empty: per-user data dir
}

// RandomConfig holds the seed; 0 means a fresh random seed per run.
type RandomConfig struct {
	Seed int64
}

// UIConfig holds the counts prefilled in the interactive view.
type UIConfig struct {
	Groups int `validate:"min=1"`
	Draw   int `validate:"min=1"`
}

// LogConfig holds logging settings. File empty means <data dir>/randogroup.log.
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
	File  string
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"store":     "store.backend",
	"data-dir":  "store.dir",
	"seed":      "random.seed",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from defaults, the config file, env and flags, in
// increasing priority. Env var overrides use prefix RANDOGROUP_.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("store.backend", "json")
	v.SetDefault("store.dir", "")
	v.SetDefault("random.seed", 0)
	v.SetDefault("ui.groups", 2)
	v.SetDefault("ui.draw", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RANDOGROUP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "randogroup"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RANDOGROUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
