package main

import (
	"context"
	"os"

	"github.com/herohde/jieqi/pkg/engine"
	"github.com/seekerror/logw"
	"gopkg.in/yaml.v3"
)

// configFile is the optional YAML sidecar overriding engine defaults. A
// missing file is not an error: the engine simply runs with its defaults,
// matching the FEN-parsing laxity policy. A malformed file is logged and
// likewise ignored.
const configFile = "jieqi.yaml"

type config struct {
	Depth uint `yaml:"depth"`
	Noise uint `yaml:"noise"`
}

// loadOptions reads configFile from the working directory, if present, and
// returns the engine options it specifies. Parse errors are logged and
// ignored; the zero Options (engine defaults) is returned in that case.
func loadOptions(ctx context.Context) engine.Options {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return engine.Options{}
	}

	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		logw.Errorf(ctx, "Ignoring malformed %v: %v", configFile, err)
		return engine.Options{}
	}

	return engine.Options{Depth: c.Depth, Noise: c.Noise}
}
