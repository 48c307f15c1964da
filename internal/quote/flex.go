package quote

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Flex holds a scalar supplied either as a JSON string or a JSON number.
// Quote forms submit vessel particulars both ways, so the engine accepts
// both and keeps track of whether the field was present at all: an absent
// GRT renders formula placeholders, while an explicit empty string coerces
// to zero.
type Flex struct {
	raw string
	set bool
}

// String wraps a literal string value.
func String(s string) Flex {
	return Flex{raw: s, set: true}
}

// Number wraps a numeric value using its shortest decimal representation.
func Number(v float64) Flex {
	return Flex{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

// Defined reports whether the value was supplied.
func (f Flex) Defined() bool { return f.set }

// Raw returns the underlying text, empty when the value is absent.
func (f Flex) Raw() string { return f.raw }

// Or returns the raw text when it is non-blank, otherwise the fallback.
func (f Flex) Or(fallback string) string {
	if f.set && f.raw != "" {
		return f.raw
	}
	return fallback
}

// Num parses the value as a number after stripping thousands-separator
// commas. An absent value or unparseable text reports ok=false; a present
// empty string parses as zero.
func (f Flex) Num() (float64, bool) {
	if !f.set {
		return 0, false
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(f.raw, ",", ""))
	if cleaned == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON accepts strings, numbers and null.
func (f *Flex) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = Flex{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = String(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("quote: value must be a string or number: %w", err)
	}
	*f = Number(v)
	return nil
}

// MarshalJSON emits numbers as numbers and everything else as strings.
func (f Flex) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(f.raw, 64); err == nil && f.raw != "" {
		return []byte(f.raw), nil
	}
	return json.Marshal(f.raw)
}

// IsZero lets encoding/json treat the absent value as empty.
func (f Flex) IsZero() bool { return !f.set }
