package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultConfigFile = ".sketchpad.yaml"
	defaultServer     = "http://localhost:5000"
	defaultEndpoint   = "/process_image"

	// the processing service only accepts 448x448 images
	DefaultCanvasSize = 448
	DefaultOutputSize = 280
	DefaultLineWidth  = 25
	DefaultBatchSize  = 3
)

type Config struct {
	Server        string        `yaml:"server"`
	Endpoint      string        `yaml:"endpoint"`
	Secret        string        `yaml:"secret,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty"`
	CanvasWidth   int           `yaml:"canvas_width"`
	CanvasHeight  int           `yaml:"canvas_height"`
	DisplayWidth  int           `yaml:"display_width,omitempty"`
	DisplayHeight int           `yaml:"display_height,omitempty"`
	OutputSize    int           `yaml:"output_size"`
	LineWidth     float64       `yaml:"line_width"`
	BatchSize     int64         `yaml:"batch_size"`
	Listen        string        `yaml:"listen"`
	StaticDir     string        `yaml:"static_dir"`
}

func Default() Config {
	return Config{
		Server:       defaultServer,
		Endpoint:     defaultEndpoint,
		CanvasWidth:  DefaultCanvasSize,
		CanvasHeight: DefaultCanvasSize,
		OutputSize:   DefaultOutputSize,
		LineWidth:    DefaultLineWidth,
		BatchSize:    DefaultBatchSize,
		Listen:       ":8080",
		StaticDir:    "static",
	}
}

// ConfigPath returns SKETCHPAD_CONFIG or ~/.sketchpad.yaml
func ConfigPath() (string, error) {
	if p := os.Getenv("SKETCHPAD_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "can't resolve home directory")
	}
	return filepath.Join(home, defaultConfigFile), nil
}

// Load reads the file at path on top of the defaults and applies the
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, errors.Wrapf(err, "can't read config %s", path)
	default:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "can't parse config %s", path)
		}
	}

	applyEnv(&cfg)
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes cfg to path as YAML
func Save(cfg Config, path string) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "can't serialize config")
	}
	return ioutil.WriteFile(path, content, 0600)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SKETCHPAD_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := os.Getenv("SKETCHPAD_SECRET"); v != "" {
		cfg.Secret = v
	}
}

// zero values in a partial file fall back to the defaults
func (cfg *Config) fillDefaults() {
	def := Default()
	if cfg.Server == "" {
		cfg.Server = def.Server
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.DisplayWidth <= 0 {
		cfg.DisplayWidth = cfg.CanvasWidth
	}
	if cfg.DisplayHeight <= 0 {
		cfg.DisplayHeight = cfg.CanvasHeight
	}
	if cfg.OutputSize <= 0 {
		cfg.OutputSize = def.OutputSize
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = def.StaticDir
	}
}
