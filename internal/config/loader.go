package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lululau/datepick/internal/tooltip"
)

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
	validate      = validator.New()
)

// GetDefaultPath returns the picker document path in the user config directory.
func GetDefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "datepick", "config.yaml"), nil
}

// LoadDefault loads the document at GetDefaultPath. A missing file yields an
// empty document.
func LoadDefault() (*Document, error) {
	path, err := GetDefaultPath()
	if err != nil {
		return nil, err
	}
	doc, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	return doc, err
}

// Load reads, decodes and validates a YAML picker document. Tooltips from
// tooltips-file are loaded ahead of inline ones, so inline entries win.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewParseError(path, extractLine(err), err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	if doc.TooltipsFile != "" {
		tipPath := doc.TooltipsFile
		if !filepath.IsAbs(tipPath) {
			tipPath = filepath.Join(filepath.Dir(path), tipPath)
		}
		entries, err := LoadTooltips(tipPath)
		if err != nil {
			return nil, err
		}
		doc.Tooltips = append(entries, doc.Tooltips...)
	}
	return &doc, nil
}

// LoadTooltips reads a JSON array of {"dates": [...], "tooltip": "..."}.
func LoadTooltips(path string) ([]tooltip.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, err)
	}

	var entries []tooltip.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, NewParseError(path, 0, fmt.Errorf("failed to parse tooltips JSON: %w", err))
	}
	for i := range entries {
		if err := validate.Struct(&entries[i]); err != nil {
			return nil, convertValidationError(err, fmt.Sprintf("tooltips[%d]", i))
		}
	}
	return entries, nil
}

// Validate checks field constraints on doc.
func Validate(doc *Document) error {
	if err := validate.Struct(doc); err != nil {
		return convertValidationError(err, "")
	}
	return nil
}

func convertValidationError(err error, prefix string) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		if prefix != "" {
			field = prefix + "." + field
		}
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return NewValidationError(field, msg, err)
	}
	return NewValidationError(prefix, err.Error(), err)
}

// yamlishFieldName turns "Document.StartOfWeek" into "start-of-week" style
// paths, keeping slice indexes.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = kebab(part)
	}
	return strings.Join(parts, ".")
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
