// Package config loads the batch tool settings.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings drives the calc-index run: where the unit records live,
// where the index goes, and the advisory thresholds fed to the rule
// engine.
type Settings struct {
	UnitsDir             string  `mapstructure:"unitsDir"`
	OutputPath           string  `mapstructure:"outputPath"`
	Compress             bool    `mapstructure:"compress"`
	LogLevel             string  `mapstructure:"logLevel"`
	ExternalHeatSinkWarn int     `mapstructure:"externalHeatSinkWarn"`
	ArmorCoverageWarn    float64 `mapstructure:"armorCoverageWarn"`
}

// Load reads calc-index.cfg.json from dir, falling back to defaults for
// anything unset. A missing config file is not an error.
func Load(dir string) (Settings, error) {
	v := viper.New()
	v.SetDefault("unitsDir", "./units")
	v.SetDefault("outputPath", "./index.json")
	v.SetDefault("compress", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("externalHeatSinkWarn", 15)
	v.SetDefault("armorCoverageWarn", 0.5)

	v.SetConfigName("calc-index.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}
