package config

import (
	"errors"
	"fmt"

	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/selection"
)

// Options returns the construction-time settings of doc.
func (d *Document) Options() ([]picker.Option, error) {
	mode, err := selection.ParseMode(d.Type)
	if err != nil {
		return nil, NewValidationError("type", err.Error(), err)
	}
	opts := []picker.Option{picker.WithMode(mode)}
	if d.StartOfWeek != nil {
		opts = append(opts, picker.WithStartOfWeek(*d.StartOfWeek))
	}
	if d.Locale != "" {
		opts = append(opts, picker.WithLocale(d.Locale))
	}
	return opts, nil
}

// Apply assigns the document's properties to p. Every property is attempted;
// rejected ones leave p's previous state in place and are reported together.
func (d *Document) Apply(p *picker.Picker) error {
	var errs []error
	if d.MinDate != "" {
		if err := p.SetMinDate(d.MinDate); err != nil {
			errs = append(errs, fmt.Errorf("min-date: %w", err))
		}
	}
	if d.MaxDate != "" {
		if err := p.SetMaxDate(d.MaxDate); err != nil {
			errs = append(errs, fmt.Errorf("max-date: %w", err))
		}
	}
	if len(d.DisabledDates) > 0 {
		if err := p.SetDisabledDates(d.DisabledDates.Strings()); err != nil {
			errs = append(errs, fmt.Errorf("disabled-dates: %w", err))
		}
	}
	if len(d.Tooltips) > 0 {
		p.SetTooltips(d.Tooltips)
	}
	if len(d.Value) > 0 {
		if err := p.SetValue(d.Value.Strings()); err != nil {
			errs = append(errs, fmt.Errorf("value: %w", err))
		}
	}
	return errors.Join(errs...)
}
