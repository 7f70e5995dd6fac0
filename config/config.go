// Package config handles configuration loading for the pokedex daemon.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"logLevel"`
	Store    struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"store"`
	Catalog struct {
		BaseUrl        string `yaml:"baseUrl"`
		Limit          int    `yaml:"limit"`
		RefreshMinutes int    `yaml:"refreshMinutes"`
	} `yaml:"catalog"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	c := &Config{}
	c.Host = "127.0.0.1"
	c.Port = 8080
	c.LogLevel = "info"
	c.Store.Type = "persisted"
	c.Store.Path = "pokedex.db"
	c.Catalog.BaseUrl = "https://pokeapi.co/api/v2"
	c.Catalog.Limit = 150
	c.Catalog.RefreshMinutes = 60
	return c
}

// Load reads configuration from the given yaml file. A missing file is not an
// error, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
