// Package format holds the text formatting shared by the dashboard and the chat bot.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"go-weather/internal/domain/compass"
	"go-weather/pkg/locale"
)

const (
	dayLayout = "Mon 02 Jan"
	utcLayout = "2006-01-02 15:04 UTC"
)

// Number renders an optional value with at most one decimal, or the placeholder
func Number(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return locale.Placeholder
	}
	return strconv.FormatFloat(math.Round(*v*10)/10, 'f', -1, 64)
}

// Percent renders a 0..1 probability as a whole percentage
func Percent(p float64) int {
	return int(math.Round(p * 100))
}

// Coordinate renders a latitude or longitude with four decimals
func Coordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Wind renders "<speed> m/s <arrow> <deg>° (<label>)", or only the speed when the bearing is unavailable.
func Wind(speed *float64, reading compass.Reading) string {
	if !reading.Available {
		return Number(speed) + " m/s"
	}
	return fmt.Sprintf("%s m/s %s %d° (%s)", Number(speed), reading.Arrow, reading.Degrees, reading.Label)
}

func Day(t time.Time) string {
	return t.Format(dayLayout)
}

func UTC(t time.Time) string {
	return t.UTC().Format(utcLayout)
}

// OrPlaceholder returns s, or the placeholder when s is empty
func OrPlaceholder(s string) string {
	if s == "" {
		return locale.Placeholder
	}
	return s
}
