package ql

import (
	"fmt"
	"strconv"
)

// Value is the capability set shared by both value representations: a
// tagged nullable holder for exactly one DataType's payload.
//
// Typed getters require a non-null value of the matching kind; violating
// that precondition is a bug in the calling code and panics. Callers check
// IsNull and Type first. Typed setters always succeed and replace any prior
// payload, whatever its kind.
//
// A Value is safe for concurrent use only across distinct instances; a
// single instance needs external locking for mixed mutation and reads.
type Value interface {
	Type() DataType
	IsNull() bool
	SetNull()

	Int8() int8
	Int16() int16
	Int32() int32
	Int64() int64
	Float() float32
	Double() float64
	Bool() bool
	StringValue() string
	Timestamp() Timestamp

	SetInt8(int8)
	SetInt16(int16)
	SetInt32(int32)
	SetInt64(int64)
	SetFloat(float32)
	SetDouble(float64)
	SetBool(bool)
	SetStringValue(string)
	SetTimestamp(Timestamp)

	// String renders the diagnostic "<KIND>:<value>" form. See DebugString.
	String() string
}

// requirePayload enforces the typed-getter precondition for both
// representations.
func requirePayload(v Value, t DataType) {
	if v.IsNull() {
		panic(fmt.Sprintf("internal error: reading %s payload of a null value", t))
	}
	if got := v.Type(); got != t {
		panic(fmt.Sprintf("internal error: reading %s payload of a %s value", t, got))
	}
}

// Scalar is the direct in-memory Value representation. It owns its payload
// exclusively; string payloads are copies, never views into wire buffers.
// A Scalar remembers its declared kind across SetNull.
type Scalar struct {
	typ  DataType
	null bool

	// Integer kinds and the timestamp share the widened i field; the typed
	// getters narrow back to the declared kind.
	i int64
	f float64
	b bool
	s string
}

// NewScalar creates a null value of the declared kind.
func NewScalar(t DataType) *Scalar {
	return &Scalar{typ: t, null: true}
}

func NewInt8(v int8) *Scalar   { s := NewScalar(TypeInt8); s.SetInt8(v); return s }
func NewInt16(v int16) *Scalar { s := NewScalar(TypeInt16); s.SetInt16(v); return s }
func NewInt32(v int32) *Scalar { s := NewScalar(TypeInt32); s.SetInt32(v); return s }
func NewInt64(v int64) *Scalar { s := NewScalar(TypeInt64); s.SetInt64(v); return s }
func NewFloat(v float32) *Scalar {
	s := NewScalar(TypeFloat)
	s.SetFloat(v)
	return s
}
func NewDouble(v float64) *Scalar {
	s := NewScalar(TypeDouble)
	s.SetDouble(v)
	return s
}
func NewString(v string) *Scalar {
	s := NewScalar(TypeString)
	s.SetStringValue(v)
	return s
}
func NewBool(v bool) *Scalar { s := NewScalar(TypeBool); s.SetBool(v); return s }
func NewTime(v Timestamp) *Scalar {
	s := NewScalar(TypeTimestamp)
	s.SetTimestamp(v)
	return s
}

func (v *Scalar) Type() DataType { return v.typ }
func (v *Scalar) IsNull() bool   { return v.null }

// SetNull clears the payload but keeps the declared kind discoverable.
func (v *Scalar) SetNull() {
	*v = Scalar{typ: v.typ, null: true}
}

func (v *Scalar) Int8() int8   { requirePayload(v, TypeInt8); return int8(v.i) }
func (v *Scalar) Int16() int16 { requirePayload(v, TypeInt16); return int16(v.i) }
func (v *Scalar) Int32() int32 { requirePayload(v, TypeInt32); return int32(v.i) }
func (v *Scalar) Int64() int64 { requirePayload(v, TypeInt64); return v.i }
func (v *Scalar) Float() float32 {
	requirePayload(v, TypeFloat)
	return float32(v.f)
}
func (v *Scalar) Double() float64 { requirePayload(v, TypeDouble); return v.f }
func (v *Scalar) Bool() bool      { requirePayload(v, TypeBool); return v.b }
func (v *Scalar) StringValue() string {
	requirePayload(v, TypeString)
	return v.s
}
func (v *Scalar) Timestamp() Timestamp {
	requirePayload(v, TypeTimestamp)
	return NewTimestamp(v.i)
}

// reset replaces the whole value so payload fields stay mutually exclusive.
func (v *Scalar) reset(t DataType) {
	*v = Scalar{typ: t}
}

func (v *Scalar) SetInt8(x int8)   { v.reset(TypeInt8); v.i = int64(x) }
func (v *Scalar) SetInt16(x int16) { v.reset(TypeInt16); v.i = int64(x) }
func (v *Scalar) SetInt32(x int32) { v.reset(TypeInt32); v.i = int64(x) }
func (v *Scalar) SetInt64(x int64) { v.reset(TypeInt64); v.i = x }
func (v *Scalar) SetFloat(x float32) {
	v.reset(TypeFloat)
	v.f = float64(x)
}
func (v *Scalar) SetDouble(x float64) { v.reset(TypeDouble); v.f = x }
func (v *Scalar) SetBool(x bool)      { v.reset(TypeBool); v.b = x }
func (v *Scalar) SetStringValue(x string) {
	v.reset(TypeString)
	v.s = x
}
func (v *Scalar) SetTimestamp(x Timestamp) {
	v.reset(TypeTimestamp)
	v.i = x.ToInt64()
}

func (v *Scalar) String() string { return DebugString(v) }

// DebugString renders v as "<KIND>:<value>", or "<KIND>:null" when null.
// String payloads go through a byte-safe quoting formatter. This form is
// diagnostic only and carries no round-trip guarantee.
func DebugString(v Value) string {
	s := v.Type().String() + ":"
	if v.IsNull() {
		return s + "null"
	}

	switch v.Type() {
	case TypeInt8:
		return s + strconv.FormatInt(int64(v.Int8()), 10)
	case TypeInt16:
		return s + strconv.FormatInt(int64(v.Int16()), 10)
	case TypeInt32:
		return s + strconv.FormatInt(int64(v.Int32()), 10)
	case TypeInt64:
		return s + strconv.FormatInt(v.Int64(), 10)
	case TypeFloat:
		return s + strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case TypeDouble:
		return s + strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case TypeString:
		return s + strconv.Quote(v.StringValue())
	case TypeBool:
		if v.Bool() {
			return s + "true"
		}
		return s + "false"
	case TypeTimestamp:
		return s + v.Timestamp().String()

	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeBinary, TypeUnknown:
	}

	unsupportedKind("DebugString", v.Type())
	return s
}
