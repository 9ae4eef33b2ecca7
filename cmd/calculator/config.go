package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config holds the settings of a run. A YAML config file supplies defaults for
// any flags not given on the command line.
type config struct {
	Format string `yaml:"format"`
	Lines  bool   `yaml:"lines"`
	Echo   bool   `yaml:"echo"`
	Assoc  bool   `yaml:"assoc"`
}

// loadConfig reads a config file. Unknown keys are an error.
func loadConfig(name string) (config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return config{}, errors.Wrap(err, "reading config")
	}
	var c config
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return config{}, errors.Wrapf(err, "parsing config %s", name)
	}
	return c, nil
}

// merge returns c with each field replaced by the one in file, unless the
// flag for that field is in set. An empty format in file is ignored.
func (c config) merge(file config, set map[string]bool) config {
	if !set["fmt"] && file.Format != "" {
		c.Format = file.Format
	}
	if !set["n"] {
		c.Lines = file.Lines
	}
	if !set["echo"] {
		c.Echo = file.Echo
	}
	if !set["assoc"] {
		c.Assoc = file.Assoc
	}
	return c
}
