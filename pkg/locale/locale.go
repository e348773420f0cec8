// Package locale renders country names and capitalized text for one display language.
package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Placeholder is shown when a value is missing
const Placeholder = "—"

// Table is read-only after creation and safe for concurrent use
type Table struct {
	tag     language.Tag
	regions display.Namer
}

// New creates a Table for a BCP 47 language such as "es". Unknown languages fall back to Spanish.
func New(lang string) *Table {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}

	regions := display.Regions(tag)
	if regions == nil {
		tag = language.Spanish
		regions = display.Regions(tag)
	}

	return &Table{tag: tag, regions: regions}
}

// Tag returns the display language
func (t *Table) Tag() language.Tag {
	return t.tag
}

// CountryName returns the localized name of an ISO 3166 country code, the code itself when it is
// unknown and Placeholder when it is empty.
func (t *Table) CountryName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return Placeholder
	}

	region, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil {
		return code
	}

	if name := t.regions.Name(region); name != "" {
		return name
	}
	return code
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func (t *Table) Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	// Casers keep state, so each call gets its own.
	return cases.Upper(t.tag).String(s[:size]) + cases.Lower(t.tag).String(s[size:])
}

// TimezoneText renders an offset in seconds as "UTC +2h" or "UTC -3:30h".
func TimezoneText(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}

	hours, minutes := offsetSeconds/3600, (offsetSeconds%3600)/60
	if minutes == 0 {
		return fmt.Sprintf("UTC %s%dh", sign, hours)
	}
	return fmt.Sprintf("UTC %s%d:%02dh", sign, hours, minutes)
}
