// Package config holds the numeric bounds the visualizer core consumes.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMinN       = 5
	DefaultMaxN       = 200
	DefaultN          = 32
	DefaultMinVal     = 1
	DefaultMaxVal     = 200
	DefaultFPSMin     = 1
	DefaultFPSMax     = 60
	DefaultFPS        = 24
	DefaultStride     = 200
	DefaultDataDirVal = ".sortviz"
)

type Config struct {
	MinN             int    `yaml:"min_n" mapstructure:"min_n"`
	MaxN             int    `yaml:"max_n" mapstructure:"max_n"`
	DefaultN         int    `yaml:"default_n" mapstructure:"default_n"`
	MinVal           int    `yaml:"min_val" mapstructure:"min_val"`
	MaxVal           int    `yaml:"max_val" mapstructure:"max_val"`
	FPSMin           int    `yaml:"fps_min" mapstructure:"fps_min"`
	FPSMax           int    `yaml:"fps_max" mapstructure:"fps_max"`
	FPSDefault       int    `yaml:"fps_default" mapstructure:"fps_default"`
	CheckpointStride int    `yaml:"checkpoint_stride" mapstructure:"checkpoint_stride"`
	DataDir          string `yaml:"data_dir" mapstructure:"data_dir"`
}

func Default() *Config {
	return &Config{
		MinN:             DefaultMinN,
		MaxN:             DefaultMaxN,
		DefaultN:         DefaultN,
		MinVal:           DefaultMinVal,
		MaxVal:           DefaultMaxVal,
		FPSMin:           DefaultFPSMin,
		FPSMax:           DefaultFPSMax,
		FPSDefault:       DefaultFPS,
		CheckpointStride: DefaultStride,
		DataDir:          DefaultDataDirVal,
	}
}

// Load layers defaults, an optional yaml file and SORTVIZ_* environment
// overrides (SORTVIZ_MAX_N, SORTVIZ_FPS_DEFAULT, ...). An empty path skips
// the file layer.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("min_n", def.MinN)
	v.SetDefault("max_n", def.MaxN)
	v.SetDefault("default_n", def.DefaultN)
	v.SetDefault("min_val", def.MinVal)
	v.SetDefault("max_val", def.MaxVal)
	v.SetDefault("fps_min", def.FPSMin)
	v.SetDefault("fps_max", def.FPSMax)
	v.SetDefault("fps_default", def.FPSDefault)
	v.SetDefault("checkpoint_stride", def.CheckpointStride)
	v.SetDefault("data_dir", def.DataDir)

	v.SetEnvPrefix("SORTVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.MinN < 1 || c.MaxN < c.MinN {
		return fmt.Errorf("invalid size bounds [%d, %d]", c.MinN, c.MaxN)
	}
	if c.DefaultN < 1 || c.DefaultN > c.MaxN {
		return fmt.Errorf("default_n %d outside [1, %d]", c.DefaultN, c.MaxN)
	}
	if c.MaxVal < c.MinVal {
		return fmt.Errorf("invalid value bounds [%d, %d]", c.MinVal, c.MaxVal)
	}
	if c.FPSMin < 1 || c.FPSMax < c.FPSMin {
		return fmt.Errorf("invalid fps bounds [%d, %d]", c.FPSMin, c.FPSMax)
	}
	if c.CheckpointStride < 1 {
		return fmt.Errorf("checkpoint_stride must be positive, got %d", c.CheckpointStride)
	}
	return nil
}

// ClampFPS forces an externally supplied playback rate into
// [FPSMin, FPSMax].
func (c *Config) ClampFPS(fps int) int {
	if fps < c.FPSMin {
		return c.FPSMin
	}
	if fps > c.FPSMax {
		return c.FPSMax
	}
	return fps
}
