// Package config reads picker documents and tooltip data files.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lululau/datepick/internal/tooltip"
)

// Document mirrors the picker's host properties.
type Document struct {
	Type          string          `yaml:"type" validate:"omitempty,oneof=single multiple range"`
	MinDate       string          `yaml:"min-date,omitempty"`
	MaxDate       string          `yaml:"max-date,omitempty"`
	DisabledDates DateList        `yaml:"disabled-dates,omitempty"`
	Value         DateList        `yaml:"value,omitempty"`
	StartOfWeek   *int            `yaml:"start-of-week,omitempty" validate:"omitempty,min=0,max=6"`
	Locale        string          `yaml:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	Tooltips      []tooltip.Entry `yaml:"tooltips,omitempty" validate:"omitempty,dive"`
	TooltipsFile  string          `yaml:"tooltips-file,omitempty"`
}

// DateList accepts either a CSV scalar or a sequence of date strings.
type DateList []string

// UnmarshalYAML decodes scalars and sequences alike.
func (l *DateList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value == "" {
			*l = nil
			return nil
		}
		*l = DateList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: dates must be a string or a list of strings", value.Line)
}

// Strings returns the raw tokens for the normalizer.
func (l DateList) Strings() []string {
	return []string(l)
}
