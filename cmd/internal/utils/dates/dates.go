// Package dates formats the ISO dates stored in menus for pt-BR display.
//
// Plain "YYYY-MM-DD" values are always built as a local-midnight date from
// their components, so a viewer west of UTC never sees the previous day.
package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/pt_BR"
)

const (
	ISODate = "2006-01-02"

	// Placeholder is shown for dates that cannot be parsed at all.
	Placeholder = "-"
)

type Style int

const (
	Short  Style = iota // 10/03/2025
	Medium              // 10 de mar. de 2025
	Long                // 10 de março de 2025
	Full                // segunda-feira, 10 de março de 2025
)

type Options struct {
	Style Style
	// Location used to build the date. Defaults to time.Local.
	Location *time.Location
}

var translator locales.Translator = pt_BR.New()

// FormatDate renders iso in pt-BR using opts.Style.
func FormatDate(iso string, opts Options) string {
	t, ok := Parse(iso, opts.Location)
	if !ok {
		return Placeholder
	}

	switch opts.Style {
	case Medium:
		return translator.FmtDateMedium(t)
	case Long:
		return translator.FmtDateLong(t)
	case Full:
		return translator.FmtDateFull(t)
	default:
		return translator.FmtDateShort(t)
	}
}

// FormatDayMonth renders only "dd/MM".
func FormatDayMonth(iso string) string {
	t, ok := Parse(iso, nil)
	if !ok {
		return Placeholder
	}
	return t.Format("02/01")
}

// FormatRange renders "dd/MM/yyyy - dd/MM/yyyy".
func FormatRange(startISO, endISO string) string {
	return FormatDate(startISO, Options{}) + " - " + FormatDate(endISO, Options{})
}

// Parse splits iso on "-" and builds a midnight date in loc from the
// year, month and day components. The day is taken from the leading digits
// of the third component, so "2025-03-10T00:00:00.000Z" also yields March 10.
// Values without three components fall back to RFC3339 and then plain ISO
// parsing.
func Parse(iso string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}

	if parts := strings.Split(iso, "-"); len(parts) == 3 {
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		d, errD := strconv.Atoi(leadingDigits(parts[2]))
		if errY == nil && errM == nil && errD == nil {
			t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
			// time.Date normalizes 2025-02-30 into March; such dates are invalid.
			if t.Year() == y && t.Month() == time.Month(m) && t.Day() == d {
				return t, true
			}
		}
	}

	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.In(loc), true
	}
	if t, err := time.ParseInLocation(ISODate, iso, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
