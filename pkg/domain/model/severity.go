package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// SeverityTag represents a question severity tag. Questions carry a color
// code indicating how critical a finding against them is.
type SeverityTag struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g. "red")
	Name        string `yaml:"name"`        // Display name
	ColorCode   string `yaml:"color"`       // Hex color for rendering
	Description string `yaml:"description"` // Description for selection help (optional)
	Level       int    `yaml:"level"`       // Criticality level (0-99)
}

// Validate validates the severity tag
func (s *SeverityTag) Validate() error {
	if s.ID == "" {
		return goerr.New("severity ID is required", goerr.T(ErrTagInvalid))
	}
	if s.Name == "" {
		return goerr.New("severity name is required", goerr.T(ErrTagInvalid))
	}
	if s.Level < 0 || s.Level > 99 {
		return goerr.New("severity level must be between 0 and 99",
			goerr.V("level", s.Level), goerr.T(ErrTagInvalid))
	}
	return nil
}

// SeveritiesConfig represents the configured severity tag set
type SeveritiesConfig struct {
	Severities []SeverityTag `yaml:"severities"`
}

// DefaultSeverities returns the built-in severity tag set used when no
// configuration file is provided.
func DefaultSeverities() *SeveritiesConfig {
	return &SeveritiesConfig{
		Severities: []SeverityTag{
			{ID: "green", Name: "Minor", ColorCode: "#2e7d32", Level: 10},
			{ID: "yellow", Name: "Moderate", ColorCode: "#f9a825", Level: 40},
			{ID: "orange", Name: "Major", ColorCode: "#ef6c00", Level: 70},
			{ID: "red", Name: "Critical", ColorCode: "#c62828", Level: 90},
		},
	}
}

// Validate validates the severities configuration
func (c *SeveritiesConfig) Validate() error {
	if len(c.Severities) == 0 {
		return goerr.New("at least one severity is required", goerr.T(ErrTagInvalid))
	}

	idMap := make(map[string]bool)
	for i, sev := range c.Severities {
		if err := sev.Validate(); err != nil {
			return goerr.Wrap(err, "invalid severity at index",
				goerr.V("index", i),
				goerr.V("id", sev.ID))
		}
		if idMap[sev.ID] {
			return goerr.New("duplicate severity ID", goerr.V("id", sev.ID), goerr.T(ErrTagInvalid))
		}
		idMap[sev.ID] = true
	}

	return nil
}

// FindByID finds a severity tag by its ID
func (c *SeveritiesConfig) FindByID(id string) *SeverityTag {
	for _, sev := range c.Severities {
		if sev.ID == id {
			result := sev
			return &result
		}
	}
	return nil
}

// IsValidID checks if the given severity ID exists
func (c *SeveritiesConfig) IsValidID(id string) bool {
	return c.FindByID(id) != nil
}
