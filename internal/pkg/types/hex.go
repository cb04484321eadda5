package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a quantity encoded as a 0x-prefixed hexadecimal string, the form
// JSON-RPC providers use for block numbers and similar counters.
type Hex string

// HexFromString validates s and returns it as a Hex value.
func HexFromString(s string) (Hex, error) {
	if err := checkHex(s); err != nil {
		return "", err
	}

	return Hex(s), nil
}

// checkHex verifies the 0x prefix and that the remainder parses as a
// hexadecimal number.
func checkHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// MarshalJSON encodes the value as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON decodes and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := checkHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Add returns the value shifted by n, keeping the 0x encoding. An invalid
// receiver counts as zero.
func (h Hex) Add(n int64) Hex {
	return Hex(fmt.Sprintf("0x%x", h.Int()+n))
}

// Int decodes the value as an int64, returning zero when the receiver does
// not parse.
func (h Hex) Int() int64 {
	if len(h) < 2 {
		return 0
	}

	v, _ := strconv.ParseInt(string(h)[2:], 16, 64)
	return v
}
