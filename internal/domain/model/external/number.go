package external

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Number is a provider numeric field. Numbers and numeric strings are read; null, blanks and
// anything malformed leave it unset so one bad field never fails the whole answer.
type Number struct {
	value *float64
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.value = nil

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		n.set(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		if parsed, err := cast.ToFloat64E(strings.TrimSpace(v)); err == nil {
			n.set(parsed)
		}
	}
	return nil
}

// Ptr returns the decoded value, or nil when the field was absent or malformed
func (n Number) Ptr() *float64 {
	return n.value
}

func (n *Number) set(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	n.value = &v
}
