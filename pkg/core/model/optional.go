package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date format used throughout the roster spreadsheet.
const DateLayout = "02/01/2006"

// absentMarkers are cell values the spreadsheet uses for "no value".
var absentMarkers = map[string]bool{
	"":     true,
	"-":    true,
	"None": true,
}

// OptString is a spreadsheet cell that may be absent.
// Blank cells, "-" and "None" are all treated as absent.
type OptString struct {
	value   string
	present bool
}

// NewOptString parses a raw cell into an OptString, trimming whitespace.
func NewOptString(raw string) OptString {
	trimmed := strings.TrimSpace(raw)
	if absentMarkers[trimmed] {
		return OptString{}
	}
	return OptString{value: trimmed, present: true}
}

func (s OptString) Present() bool { return s.present }

func (s OptString) Value() string { return s.value }

// Or returns the value, or def when the cell is absent.
func (s OptString) Or(def string) string {
	if !s.present {
		return def
	}
	return s.value
}

// OptFloat is a numeric cell that may be absent. Comma decimals ("4,5")
// are accepted; malformed values are treated as absent, never as an error.
type OptFloat struct {
	value   float64
	present bool
}

// ParseOptFloat parses a raw cell into an OptFloat.
func ParseOptFloat(raw string) OptFloat {
	trimmed := strings.TrimSpace(raw)
	if absentMarkers[trimmed] {
		return OptFloat{}
	}
	normalized := strings.ReplaceAll(trimmed, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return OptFloat{}
	}
	return OptFloat{value: value, present: true}
}

func (f OptFloat) Present() bool { return f.present }

func (f OptFloat) Value() float64 { return f.value }

// Or returns the value, or def when the cell is absent or malformed.
func (f OptFloat) Or(def float64) float64 {
	if !f.present {
		return def
	}
	return f.value
}

// OptDate is a dd/mm/yyyy cell that may be absent.
// Unparseable dates are treated as absent.
type OptDate struct {
	value   time.Time
	present bool
}

// ParseOptDate parses a raw cell into an OptDate.
func ParseOptDate(raw string) OptDate {
	trimmed := strings.TrimSpace(raw)
	if absentMarkers[trimmed] {
		return OptDate{}
	}
	value, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return OptDate{}
	}
	return OptDate{value: value, present: true}
}

// DateOf wraps a concrete time into a present OptDate. Used by tests and
// by sources that already hold typed dates.
func DateOf(t time.Time) OptDate {
	return OptDate{value: t, present: true}
}

func (d OptDate) Present() bool { return d.present }

func (d OptDate) Value() time.Time { return d.value }
