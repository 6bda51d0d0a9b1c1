package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keySoundEnabled  = "sound.enabled"
	keySoundFile     = "sound.file"
	keyLogLevel      = "log.level"
	keyLogMaxSize    = "log.max_size"
	keyLogMaxBackups = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath. A missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundFile, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
