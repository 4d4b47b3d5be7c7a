package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// numericField holds a JSON number or numeric string as sent by the client.
// Decoding never fails, so a value of the wrong type surfaces as a field
// error from the validator instead of aborting the whole bind.
type numericField struct {
	raw string
}

func (n *numericField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		n.raw = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.raw = strings.TrimSpace(s)
	default:
		n.raw = string(b)
	}
	return nil
}

func (n numericField) float() (float64, bool) {
	f, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (n numericField) int() (int, bool) {
	i, err := strconv.Atoi(n.raw)
	if err != nil {
		return 0, false
	}
	return i, true
}
