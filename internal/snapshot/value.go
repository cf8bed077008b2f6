package snapshot

import (
	"encoding/json"
	"strconv"
)

// NAPlaceholder is how an unreadable counter is rendered.
const NAPlaceholder = "N/A"

// Value is a single counter or rate reading. A Value is either a number or
// not-available; not-available means the field could not be read from the
// counters database, which is distinct from a reading of zero.
type Value struct {
	n  uint64
	ok bool
}

// N returns a numeric Value.
func N(n uint64) Value {
	return Value{n: n, ok: true}
}

// NA returns the not-available Value.
func NA() Value {
	return Value{}
}

// ParseValue interprets a raw field from the counters database. Counters are
// unsigned decimals; rate fields may carry a fractional part, which is
// rounded. Anything else is treated as not-available.
func ParseValue(raw string) Value {
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return N(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 0 {
		return N(uint64(f + 0.5))
	}
	return NA()
}

// IsNA reports whether the value is not-available.
func (v Value) IsNA() bool {
	return !v.ok
}

// Uint64 returns the numeric value. Only meaningful when IsNA is false.
func (v Value) Uint64() uint64 {
	return v.n
}

func (v Value) String() string {
	if !v.ok {
		return NAPlaceholder
	}
	return strconv.FormatUint(v.n, 10)
}

// MarshalJSON encodes a numeric Value as a JSON number and a not-available
// Value as null, so snapshots round-trip exactly through the store.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(v.n, 10)), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NA()
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = N(n)
	return nil
}
