package ql

import (
	"time"
)

// Precisions are decimal fractional digits of a second. The engine keeps
// timestamps at microsecond precision internally; the client wire format
// carries milliseconds. Conversion between the two is always explicit and
// happens only at the wire boundary.
const (
	internalPrecision = 6
	wirePrecision     = 3
)

// Timestamp wraps a signed 64-bit microsecond count since the Unix epoch.
type Timestamp struct {
	micros int64
}

// NewTimestamp creates a timestamp from an internal-precision count.
func NewTimestamp(micros int64) Timestamp {
	return Timestamp{micros: micros}
}

// ToInt64 returns the raw internal-precision count.
func (t Timestamp) ToInt64() int64 {
	return t.micros
}

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(t.micros).UTC()
}

// String renders the timestamp as a calendar string. Diagnostic only.
func (t Timestamp) String() string {
	return t.Time().Format("2006-01-02 15:04:05.000000")
}

// adjustPrecision rescales v between two precisions. Scaling down divides
// with truncation toward zero, so sub-target fractions are dropped the same
// way for positive and negative counts.
func adjustPrecision(v int64, from, to int) int64 {
	for ; from < to; from++ {
		v *= 10
	}
	for ; from > to; from-- {
		v /= 10
	}
	return v
}
