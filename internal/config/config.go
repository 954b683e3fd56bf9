package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qevolve/internal/quantum"
)

const (
	DefaultLogLevel = "info"
)

type Config struct {
	States   int       `yaml:"states"`
	Freq     float64   `yaml:"freq"`
	Coupling float64   `yaml:"coupling"`
	Steps    int       `yaml:"steps"`
	Log      LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

func DefaultConfig() *Config {
	return &Config{
		States:   quantum.DefaultStates,
		Freq:     quantum.DefaultFreq,
		Coupling: quantum.DefaultCoupling,
		Steps:    quantum.DefaultSteps,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the file at path onto cfg. Keys absent from the file keep
// the values already in cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() quantum.Params {
	return quantum.Params{
		States:   c.States,
		Freq:     c.Freq,
		Coupling: c.Coupling,
		Steps:    c.Steps,
	}
}

func (c *Config) Validate() error {
	return c.Params().Validate()
}
