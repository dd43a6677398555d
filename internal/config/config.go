package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	App struct {
		Title string `yaml:"title"`
	} `yaml:"app"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Default config so the demo runs without a config file at all.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.App.Title = "Web Clarity & Empathy Analyzer"
	cfg.RateLimit.Capacity = 30
	cfg.RateLimit.RefillRate = 10
	cfg.CORS.AllowedOrigins = []string{"*"}
	return &cfg
}

// Load baca file config.yaml; a missing file falls back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr helper untuk http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
