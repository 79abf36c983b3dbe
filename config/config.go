// Package config registers the configuration fields and loads them with
// viper from the TOML file, STEREOPLAY_* variables and defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/where"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads the configuration. A missing config file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)
	for k, f := range Default {
		viper.MustBindEnv(k)
		viper.SetDefault(k, f.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}
