package compass

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		arrow   string
		label   string
		degrees string
	}{
		{name: "north", input: 0.0, arrow: "⬆️", label: "N", degrees: "0"},
		{name: "north east", input: 45.0, arrow: "↗️", label: "NE", degrees: "45"},
		{name: "full turn wraps to north", input: 360.0, arrow: "⬆️", label: "N", degrees: "0"},
		{name: "east", input: 90, arrow: "➡️", label: "E", degrees: "90"},
		{name: "south east", input: 135.4, arrow: "↘️", label: "SE", degrees: "135"},
		{name: "south", input: 180.0, arrow: "⬇️", label: "S", degrees: "180"},
		{name: "south west", input: 225.0, arrow: "↙️", label: "SW", degrees: "225"},
		{name: "west", input: 270.0, arrow: "⬅️", label: "W", degrees: "270"},
		{name: "north west", input: 315.0, arrow: "↖️", label: "NW", degrees: "315"},
		{name: "sector boundary belongs to next sector", input: 22.5, arrow: "↗️", label: "NE", degrees: "23"},
		{name: "just below boundary", input: 22.4, arrow: "⬆️", label: "N", degrees: "22"},
		{name: "late north west wraps to north", input: 350.0, arrow: "⬆️", label: "N", degrees: "350"},
		{name: "negative bearing", input: -90.0, arrow: "⬅️", label: "W", degrees: "270"},
		{name: "above full turn", input: 405.0, arrow: "↗️", label: "NE", degrees: "45"},
		{name: "rounds up to full turn", input: 359.7, arrow: "⬆️", label: "N", degrees: "0"},
		{name: "numeric string", input: "180", arrow: "⬇️", label: "S", degrees: "180"},
		{name: "nil", input: nil, arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "placeholder string", input: "—", arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "bool", input: true, arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "NaN", input: math.NaN(), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "infinity", input: math.Inf(1), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "nil float pointer", input: (*float64)(nil), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "nil int pointer", input: (*int)(nil), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "nil string pointer", input: (*string)(nil), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "nil int64 pointer", input: (*int64)(nil), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "nil float32 pointer", input: (*float32)(nil), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "empty string", input: "", arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "blank string", input: "  ", arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "pointer to empty string", input: strPtr(""), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "empty json number", input: json.Number(""), arrow: "", label: Unavailable, degrees: Unavailable},
		{name: "json number", input: json.Number("90"), arrow: "➡️", label: "E", degrees: "90"},
		{name: "pointer to numeric string", input: strPtr("225"), arrow: "↙️", label: "SW", degrees: "225"},
		{name: "int64", input: int64(315), arrow: "↖️", label: "NW", degrees: "315"},
		{name: "float32 pointer", input: float32Ptr(45), arrow: "↗️", label: "NE", degrees: "45"},
		{name: "slice", input: []int{90}, arrow: "", label: Unavailable, degrees: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			if got.Arrow != tt.arrow || got.Label != tt.label || got.DegreesText() != tt.degrees {
				t.Errorf("Encode(%v) = (%q, %q, %q), want (%q, %q, %q)",
					tt.input, got.Arrow, got.Label, got.DegreesText(), tt.arrow, tt.label, tt.degrees)
			}
		})
	}
}

func TestFromDegrees(t *testing.T) {
	deg := 200.0
	got := FromDegrees(&deg)
	if !got.Available || got.Label != "S" || got.Degrees != 200 {
		t.Errorf("FromDegrees(200) = %+v", got)
	}

	if got := FromDegrees(nil); got.Available || got.Label != Unavailable {
		t.Errorf("FromDegrees(nil) = %+v, want unavailable", got)
	}
}

func TestEncodeIntPointer(t *testing.T) {
	deg := 315
	if got := Encode(&deg); got.Label != "NW" || got.Degrees != 315 {
		t.Errorf("Encode(&315) = %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{360, 0},
		{720.5, 0.5},
		{-10, 350},
		{-360, 0},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func strPtr(v string) *string { return &v }

func float32Ptr(v float32) *float32 { return &v }
