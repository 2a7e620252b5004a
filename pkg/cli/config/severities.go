package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/complia-lab/themis/pkg/domain/model"
)

// Severities holds the severity tag configuration source
type Severities struct {
	Path string
}

// Flags returns CLI flags for Severities configuration
func (s *Severities) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "severities",
			Usage:       "Severity tags YAML file (built-in defaults when empty)",
			Category:    "Audit",
			Sources:     cli.EnvVars("THEMIS_SEVERITIES"),
			Destination: &s.Path,
		},
	}
}

// Configure loads the severity tag set, falling back to the defaults
// when no file is configured
func (s *Severities) Configure() (*model.SeveritiesConfig, error) {
	if s.Path == "" {
		return model.DefaultSeverities(), nil
	}
	return LoadSeveritiesFromFile(s.Path)
}

// LoadSeveritiesFromFile loads severity tags from a YAML file
func LoadSeveritiesFromFile(path string) (*model.SeveritiesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "severities file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read severities file",
			goerr.V("path", path))
	}

	var config model.SeveritiesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse severities YAML",
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid severities configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
