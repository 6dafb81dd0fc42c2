// Package units converts and formats meter-based measurements for
// display. All conversion goes through one shared pure function so that
// every rendering path in the application produces identical output for
// the same input.
package units

import (
	"fmt"
	"strconv"
)

// Unit is a display unit for lengths, areas and volumes.
type Unit int

const (
	Meters Unit = iota
	Centimeters
	Feet
	Inches
)

// Linear conversion factors from meters. Feet and inches are the
// reciprocals of 0.3048 and 0.0254.
const (
	metersPerMeter      = 1.0
	centimetersPerMeter = 100.0
	feetPerMeter        = 3.28084
	inchesPerMeter      = 39.3701
)

// Factor returns the linear per-meter conversion factor for the unit.
func (u Unit) Factor() float64 {
	switch u {
	case Centimeters:
		return centimetersPerMeter
	case Feet:
		return feetPerMeter
	case Inches:
		return inchesPerMeter
	default:
		return metersPerMeter
	}
}

// Abbrev returns the unit's abbreviation suffix.
func (u Unit) Abbrev() string {
	switch u {
	case Centimeters:
		return "cm"
	case Feet:
		return "ft"
	case Inches:
		return "in"
	default:
		return "m"
	}
}

func (u Unit) String() string {
	switch u {
	case Meters:
		return "meters"
	case Centimeters:
		return "centimeters"
	case Feet:
		return "feet"
	case Inches:
		return "inches"
	default:
		return "unknown"
	}
}

// Parse maps a unit name or abbreviation to a Unit.
func Parse(s string) (Unit, error) {
	switch s {
	case "m", "meters", "metres":
		return Meters, nil
	case "cm", "centimeters", "centimetres":
		return Centimeters, nil
	case "ft", "feet":
		return Feet, nil
	case "in", "inches":
		return Inches, nil
	default:
		return Meters, fmt.Errorf("units: unknown unit %q", s)
	}
}

// ConvertLength converts meters to the target unit.
func ConvertLength(meters float64, to Unit) float64 {
	return meters * to.Factor()
}

// ConvertArea converts square meters to the target unit; the linear
// factor is squared.
func ConvertArea(squareMeters float64, to Unit) float64 {
	f := to.Factor()
	return squareMeters * f * f
}

// ConvertVolume converts cubic meters to the target unit; the linear
// factor is cubed.
func ConvertVolume(cubicMeters float64, to Unit) float64 {
	f := to.Factor()
	return cubicMeters * f * f * f
}

// Formatter renders meter-based values as fixed-decimal strings in a
// target unit. The zero value formats in meters with no decimals.
type Formatter struct {
	Unit     Unit
	Decimals int
}

// format is the single shared rendering function behind every public
// formatting path.
func (f Formatter) format(value float64, suffix string) string {
	return strconv.FormatFloat(value, 'f', f.Decimals, 64) + " " + f.Unit.Abbrev() + suffix
}

// Length renders a length given in meters.
func (f Formatter) Length(meters float64) string {
	return f.format(ConvertLength(meters, f.Unit), "")
}

// Area renders an area given in square meters; the suffix carries a
// superscript 2.
func (f Formatter) Area(squareMeters float64) string {
	return f.format(ConvertArea(squareMeters, f.Unit), "²")
}

// Volume renders a volume given in cubic meters; the suffix carries a
// superscript 3.
func (f Formatter) Volume(cubicMeters float64) string {
	return f.format(ConvertVolume(cubicMeters, f.Unit), "³")
}
