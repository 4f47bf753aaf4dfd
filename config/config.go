// Package config loads command line settings from defaults, an optional
// TOML file, FRACTRAN_* environment variables and flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ezrec/fractran/translate"
)

var f = translate.From

// Config holds interpreter settings.
type Config struct {
	Limit   int    // Maximum trace length, 0 for unlimited.
	Verbose bool   // Log every fraction applied.
	Factor  bool   // Print states as prime powers.
	State   string // Starlark expression overriding the initial state.
	Lang    string // Locale for messages, overriding the detected one.
}

type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Load reads the configuration, binding any flags in flags by name.
// A "config" flag or FRACTRAN_CONFIG names an explicit config file,
// which must exist; otherwise ~/.config/fractran/config.toml is read
// if present.
func Load(flags *pflag.FlagSet) (cfg Config, err error) {
	v := viper.New()

	v.SetDefault("limit", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("factor", false)
	v.SetDefault("state", "")
	v.SetDefault("lang", "")

	v.SetEnvPrefix("FRACTRAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		err = v.BindPFlags(flags)
		if err != nil {
			return
		}
	}

	v.SetConfigType("toml")

	path := v.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
			return
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fractran"))
		v.SetConfigName("config")
		err = v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			err = nil
		}
		if err != nil {
			err = &ErrConfig{Path: v.ConfigFileUsed(), Err: err}
			return
		}
	}

	err = v.Unmarshal(&cfg)
	return
}
