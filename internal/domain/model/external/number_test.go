package external

import (
	"encoding/json"
	"testing"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *float64
	}{
		{name: "number", body: `{"temp": 21.3}`, expected: float(21.3)},
		{name: "numeric string", body: `{"temp": " 7.5 "}`, expected: float(7.5)},
		{name: "zero", body: `{"temp": 0}`, expected: float(0)},
		{name: "absent", body: `{}`, expected: nil},
		{name: "null", body: `{"temp": null}`, expected: nil},
		{name: "blank string", body: `{"temp": ""}`, expected: nil},
		{name: "text", body: `{"temp": "n/a"}`, expected: nil},
		{name: "bool", body: `{"temp": true}`, expected: nil},
		{name: "object", body: `{"temp": {"value": 1}}`, expected: nil},
		{name: "array", body: `{"temp": [1]}`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var main MainDTO
			if err := json.Unmarshal([]byte(tt.body), &main); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}

			got := main.Temp.Ptr()
			switch {
			case tt.expected == nil && got != nil:
				t.Errorf("Temp = %v, want unset", *got)
			case tt.expected != nil && got == nil:
				t.Errorf("Temp unset, want %v", *tt.expected)
			case tt.expected != nil && *got != *tt.expected:
				t.Errorf("Temp = %v, want %v", *got, *tt.expected)
			}
		})
	}
}

func float(v float64) *float64 { return &v }
