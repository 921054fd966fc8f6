package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Legacy back-office clients send booleans as 1/0, "1"/"0" or "true"/"false",
// and numbers as either JSON numbers or strings. These wrappers normalize
// such fields at the API boundary so the rest of the code only ever sees
// strict Go types.

// LooseBool accepts bool, number and string encodings of a boolean.
type LooseBool bool

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1":
		*b = true
		return nil
	case "false", "0", "null":
		*b = false
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot parse %q as boolean", data)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "oui":
		*b = true
	case "false", "0", "no", "non", "":
		*b = false
	default:
		return fmt.Errorf("cannot parse %q as boolean", s)
	}
	return nil
}

func (b LooseBool) Bool() bool { return bool(b) }

// LooseInt accepts number and numeric-string encodings of an integer.
type LooseInt int

func (i *LooseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("cannot parse %q as integer", s)
		}
		*i = LooseInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot parse %q as integer", data)
	}
	*i = LooseInt(v)
	return nil
}

func (i LooseInt) Int() int { return int(i) }

// LooseFloat accepts number and numeric-string encodings of a float.
type LooseFloat float64

func (f *LooseFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as number", s)
		}
		*f = LooseFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot parse %q as number", data)
	}
	*f = LooseFloat(v)
	return nil
}

func (f LooseFloat) Float64() float64 { return float64(f) }
