// internal/app/reporting/format/locale.go
//
// Package format turns roll-up results into display rows: localized dates
// and numbers, sorted tables with footers, and spreadsheet exports.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BuddhistEraOffset is added to a Gregorian year to get the Thai year.
const BuddhistEraOffset = 543

// Locale renders dates, numbers and year labels for one audience.
type Locale interface {
	Name() string
	Location() *time.Location
	FormatDate(t time.Time) string
	FormatShortDate(t time.Time) string
	FormatNumber(n int64) string
	YearLabel(gregorian int) string
	FiscalYearLabel(fy int) string
}

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// Thai renders Buddhist era years and Thai month names.
type Thai struct {
	loc     *time.Location
	printer *message.Printer
}

// NewThai returns a Thai locale showing times in loc (nil means UTC).
func NewThai(loc *time.Location) *Thai {
	if loc == nil {
		loc = time.UTC
	}
	return &Thai{loc: loc, printer: message.NewPrinter(language.Thai)}
}

func (l *Thai) Name() string             { return "th" }
func (l *Thai) Location() *time.Location { return l.loc }

// FormatDate renders "14 มีนาคม 2568".
func (l *Thai) FormatDate(t time.Time) string {
	t = t.In(l.loc)
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+BuddhistEraOffset)
}

// FormatShortDate renders "14/3/2568".
func (l *Thai) FormatShortDate(t time.Time) string {
	t = t.In(l.loc)
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+BuddhistEraOffset)
}

func (l *Thai) FormatNumber(n int64) string { return l.printer.Sprintf("%d", n) }

func (l *Thai) YearLabel(gregorian int) string {
	return fmt.Sprintf("%d", gregorian+BuddhistEraOffset)
}

func (l *Thai) FiscalYearLabel(fy int) string {
	return "ปีงบประมาณ " + l.YearLabel(fy)
}

// English renders Gregorian dates.
type English struct {
	loc     *time.Location
	printer *message.Printer
}

// NewEnglish returns an English locale showing times in loc (nil means UTC).
func NewEnglish(loc *time.Location) *English {
	if loc == nil {
		loc = time.UTC
	}
	return &English{loc: loc, printer: message.NewPrinter(language.English)}
}

func (l *English) Name() string             { return "en" }
func (l *English) Location() *time.Location { return l.loc }

// FormatDate renders "March 14, 2025".
func (l *English) FormatDate(t time.Time) string { return t.In(l.loc).Format("January 2, 2006") }

// FormatShortDate renders "3/14/2025".
func (l *English) FormatShortDate(t time.Time) string { return t.In(l.loc).Format("1/2/2006") }

func (l *English) FormatNumber(n int64) string { return l.printer.Sprintf("%d", n) }

func (l *English) YearLabel(gregorian int) string { return fmt.Sprintf("%d", gregorian) }

func (l *English) FiscalYearLabel(fy int) string { return "Fiscal year " + l.YearLabel(fy) }

// LocaleByName returns the locale for "th" or "en". Anything else is Thai.
func LocaleByName(name string, loc *time.Location) Locale {
	if strings.EqualFold(strings.TrimSpace(name), "en") {
		return NewEnglish(loc)
	}
	return NewThai(loc)
}

// NoDate is shown for missing dates.
const NoDate = "-"

// FormatDate renders t in the locale's long form, or NoDate for a zero time.
func FormatDate(t time.Time, l Locale) string {
	if t.IsZero() {
		return NoDate
	}
	return l.FormatDate(t)
}

// FormatShortDate is FormatDate in the locale's numeric form.
func FormatShortDate(t time.Time, l Locale) string {
	if t.IsZero() {
		return NoDate
	}
	return l.FormatShortDate(t)
}
