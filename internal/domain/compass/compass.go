// Package compass maps wind bearings to one of the eight compass sectors.
package compass

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Unavailable is shown in place of a label or degree value when no bearing is known
const Unavailable = "—"

const sectorWidth = 45.0

var (
	arrows = [8]string{"⬆️", "↗️", "➡️", "↘️", "⬇️", "↙️", "⬅️", "↖️"}
	labels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// Reading is the display form of a bearing.
type Reading struct {
	Arrow     string `json:"arrow" msgpack:"arrow"`
	Label     string `json:"label" msgpack:"label"`
	Degrees   int    `json:"degrees" msgpack:"degrees"`
	Available bool   `json:"available" msgpack:"available"`
}

// UnavailableReading is returned for missing or non-numeric bearings
func UnavailableReading() Reading {
	return Reading{Arrow: "", Label: Unavailable}
}

// DegreesText returns the rounded bearing, or "—" when unavailable.
func (r Reading) DegreesText() string {
	if !r.Available {
		return Unavailable
	}
	return strconv.Itoa(r.Degrees)
}

// Encode accepts any value that can be read as a number (float, int, numeric string, pointers to
// those). Nil pointers, blank strings and anything else non-numeric, including NaN and infinities,
// yield the unavailable reading.
func Encode(value any) Reading {
	if deg, ok := value.(*float64); ok {
		return FromDegrees(deg)
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return UnavailableReading()
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid, reflect.Bool:
		return UnavailableReading()
	case reflect.String:
		if strings.TrimSpace(v.String()) == "" {
			return UnavailableReading()
		}
	}

	deg, err := cast.ToFloat64E(v.Interface())
	if err != nil {
		return UnavailableReading()
	}
	return fromFloat(deg)
}

// FromDegrees encodes an optional bearing.
func FromDegrees(deg *float64) Reading {
	if deg == nil {
		return UnavailableReading()
	}
	return fromFloat(*deg)
}

func fromFloat(deg float64) Reading {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return UnavailableReading()
	}

	d := Normalize(deg)
	idx := int(math.Mod(d+sectorWidth/2, 360) / sectorWidth)

	rounded := int(math.Round(d))
	if rounded == 360 {
		rounded = 0
	}

	return Reading{
		Arrow:     arrows[idx],
		Label:     labels[idx],
		Degrees:   rounded,
		Available: true,
	}
}

// Normalize folds any finite angle into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -1e-14 + 360 rounds to exactly 360 in float64
	if d >= 360 {
		d = 0
	}
	return d
}
