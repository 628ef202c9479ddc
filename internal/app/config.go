package app

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the launch parameters for the station. A rate of 0
// means "use the simulation's default".
type Config struct {
	Sim    string  `yaml:"sim"`
	Scale  int     `yaml:"scale"`
	Rate   float64 `yaml:"rate"`
	Paused bool    `yaml:"paused"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "", Scale: 2, Rate: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to load at startup")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "target update rate in Hz (0 = sim default)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.File, "config", c.File, "YAML preset file")
}

// Resolve merges a preset file, if one was named, under the parsed flags.
// Values given explicitly on the command line win over file values.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	fileCfg := NewConfig()
	if err := fileCfg.loadFile(c.File); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["sim"] {
		c.Sim = fileCfg.Sim
	}
	if !set["scale"] {
		c.Scale = fileCfg.Scale
	}
	if !set["rate"] {
		c.Rate = fileCfg.Rate
	}
	if !set["paused"] {
		c.Paused = fileCfg.Paused
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse preset %s: %w", path, err)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return nil
}
