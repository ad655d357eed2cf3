// Package cliconfig loads the optional YAML overlay the CLI's solve and
// bench subcommands use to set per-algorithm parameters, as an
// alternative to repeating every flag on the command line. A loaded
// overlay only ever replaces the sections it actually names; algorithms
// it is silent about keep their defaults, and explicit CLI flags are
// applied on top of whichever configuration wins.
package cliconfig

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"maneuversched/internal/aco"
	"maneuversched/internal/pso"
	"maneuversched/internal/sa"
	"maneuversched/internal/ts"
)

// Overrides holds one optional parameter set per metaheuristic. A nil
// field means the config file said nothing about that algorithm.
type Overrides struct {
	SA  *sa.Config  `yaml:"sa"`
	TS  *ts.Config  `yaml:"ts"`
	ACO *aco.Config `yaml:"aco"`
	PSO *pso.Config `yaml:"pso"`
}

// Load parses a YAML file at path into an Overrides.
func Load(path string) (*Overrides, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("cliconfig: load %s: %w", path, err)
	}

	var overrides Overrides
	if err := k.UnmarshalWithConf("", &overrides, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("cliconfig: parse %s: %w", path, err)
	}
	return &overrides, nil
}
