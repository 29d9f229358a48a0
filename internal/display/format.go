package display

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unit is the temperature unit used for display.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// Symbol returns the suffix appended to rendered temperatures.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Other returns the unit a toggle would switch to.
func (u Unit) Other() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// ParseUnit accepts "celsius"/"c" and "fahrenheit"/"f", case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return Celsius, fmt.Errorf("unknown unit %q", s)
	}
}

// Convert converts a Kelvin temperature into u.
func Convert(kelvin float64, u Unit) float64 {
	if u == Fahrenheit {
		return kelvin*9/5 - 459.67
	}
	return kelvin - 273.15
}

// FormatTemperature renders kelvin in u with no decimals, e.g. "10°C".
func FormatTemperature(kelvin float64, u Unit) string {
	return fmt.Sprintf("%.0f%s", Convert(kelvin, u), u.Symbol())
}

// FormatDescription upper-cases the first letter and leaves the rest as is.
func FormatDescription(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
