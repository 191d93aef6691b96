// Package locale supplies month and weekday display names. It does not affect
// calendar arithmetic.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Names holds the display strings for one language.
type Names struct {
	Tag         language.Tag
	Months      [12]string
	ShortMonths [12]string
	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays [7]string
	title    func(year int, month string, m time.Month) string
}

// Month returns the full month name.
func (n Names) Month(m time.Month) string {
	return n.Months[(int(m)+11)%12]
}

// ShortMonth returns the abbreviated month name.
func (n Names) ShortMonth(m time.Month) string {
	return n.ShortMonths[(int(m)+11)%12]
}

// Weekday returns the short weekday header.
func (n Names) Weekday(w time.Weekday) string {
	return n.Weekdays[int(w)%7]
}

// Title renders the page heading for the given month.
func (n Names) Title(year int, m time.Month) string {
	if n.title == nil {
		return fmt.Sprintf("%s %d", n.Month(m), year)
	}
	return n.title(year, n.Month(m), m)
}

func numericMonths(suffix string) [12]string {
	var out [12]string
	for i := range out {
		out[i] = fmt.Sprintf("%d%s", i+1, suffix)
	}
	return out
}

var tables = []Names{
	{
		Tag:         language.English,
		Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		ShortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	},
	{
		Tag:         language.Chinese,
		Months:      numericMonths(" 月"),
		ShortMonths: numericMonths("月"),
		Weekdays:    [7]string{"日", "一", "二", "三", "四", "五", "六"},
		title: func(year int, _ string, m time.Month) string {
			return fmt.Sprintf("%d 年 %d 月", year, int(m))
		},
	},
	{
		Tag:         language.Japanese,
		Months:      numericMonths("月"),
		ShortMonths: numericMonths("月"),
		Weekdays:    [7]string{"日", "月", "火", "水", "木", "金", "土"},
		title: func(year int, _ string, m time.Month) string {
			return fmt.Sprintf("%d年%d月", year, int(m))
		},
	},
	{
		Tag:         language.German,
		Months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		ShortMonths: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		Weekdays:    [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		Tag:         language.French,
		Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		ShortMonths: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		Weekdays:    [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
	},
	{
		Tag:         language.Spanish,
		Months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		ShortMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		Weekdays:    [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
		title: func(year int, month string, _ time.Month) string {
			return fmt.Sprintf("%s de %d", month, year)
		},
	},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.Tag
	}
	return tags
}

// Default returns the English names.
func Default() Names {
	return tables[0]
}

// Lookup resolves a BCP 47 tag such as "zh-CN" or "de" to the closest
// supported language. Unknown or malformed tags fall back to English.
func Lookup(tag string) Names {
	if tag == "" {
		return Default()
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return tables[idx]
}
