package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1e-4
	DefaultDuration = 10.0
	DefaultPoints   = 1000
	DefaultMethod   = "lind"
	DefaultDim      = 10
)

type Config struct {
	System    string       `yaml:"system"`
	Method    string       `yaml:"method"`
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
	Points    int          `yaml:"points"`
	Params    ParamsConfig `yaml:"params"`
	InitState InitConfig   `yaml:"init_state"`
}

type ParamsConfig struct {
	Omega     float64 `yaml:"omega"`
	Detuning  float64 `yaml:"detuning"`
	Gamma     float64 `yaml:"gamma"`
	Dephasing float64 `yaml:"dephasing"`
	Kappa     float64 `yaml:"kappa"`
	Dim       int     `yaml:"dim"`
}

type InitConfig struct {
	Level int  `yaml:"level"`
	Plus  bool `yaml:"plus"`
}

func DefaultConfig() *Config {
	return &Config{
		System:   "qubit",
		Method:   DefaultMethod,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Points:   DefaultPoints,
		Params: ParamsConfig{
			Omega: 1.0,
			Dim:   DefaultDim,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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
