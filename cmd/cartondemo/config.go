package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo configuration.
type Config struct {
	Panels []PanelConfig
}

// PanelConfig describes one panel of the demo split.
type PanelConfig struct {
	Title       string
	Min         float64
	Weight      float64
	Collapsible bool
}

// Load reads configuration from file and env. Env var overrides use
// prefix CARTONDEMO_.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	cfgPath := os.Getenv("CARTONDEMO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cartondemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CARTONDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Panels) == 0 {
		c.Panels = defaultPanels()
	}
	for i, p := range c.Panels {
		if p.Title == "" {
			c.Panels[i].Title = fmt.Sprintf("panel %d", i+1)
		}
	}
	return c, nil
}

// defaultPanels is the layout used when no config file defines one: a
// collapsible sidebar, a dominant main area, and an inspector.
func defaultPanels() []PanelConfig {
	return []PanelConfig{
		{Title: "sidebar", Min: 12, Weight: 1, Collapsible: true},
		{Title: "main", Min: 20, Weight: 2},
		{Title: "inspector", Min: 16, Weight: 1},
	}
}
