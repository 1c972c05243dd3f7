package ql

// ValueCase tracks which ValueMessage payload field is populated: exactly
// one case at a time, or CaseNotSet.
type ValueCase int8

const (
	CaseNotSet ValueCase = iota
	CaseInt8
	CaseInt16
	CaseInt32
	CaseInt64
	CaseFloat
	CaseDouble
	CaseString
	CaseBool
	CaseTimestamp
)

// ValueMessage is the structured record form of a scalar value, shared with
// the catalog persistence and replication paths. Field presence is the
// message's own: clearing the payload also forgets the kind, so a null
// message reports TypeUnknown. The direct Scalar representation remembers
// its declared kind instead; code that needs the kind of a null message must
// carry it separately.
type ValueMessage struct {
	Case ValueCase

	Int8Val   int8
	Int16Val  int16
	Int32Val  int32
	Int64Val  int64
	FloatVal  float32
	DoubleVal float64
	StringVal string
	BoolVal   bool
	// TimestampVal is an internal-precision (microsecond) count.
	TimestampVal int64
}

// The free functions below operate on a raw message without a wrapper, for
// code that already holds one (reading a persisted record, inspecting a
// replication entry). Each delegates to the single interface-level
// implementation of its algorithm, so the two entry points cannot drift.

// MessageDataType maps the populated case to a DataType. A cleared message
// reports TypeUnknown.
func MessageDataType(m *ValueMessage) DataType {
	switch m.Case {
	case CaseInt8:
		return TypeInt8
	case CaseInt16:
		return TypeInt16
	case CaseInt32:
		return TypeInt32
	case CaseInt64:
		return TypeInt64
	case CaseFloat:
		return TypeFloat
	case CaseDouble:
		return TypeDouble
	case CaseString:
		return TypeString
	case CaseBool:
		return TypeBool
	case CaseTimestamp:
		return TypeTimestamp
	case CaseNotSet:
		return TypeUnknown
	}
	return TypeUnknown
}

func MessageIsNull(m *ValueMessage) bool {
	return m.Case == CaseNotSet
}

// MessageSetNull clears the populated field along with the case.
func MessageSetNull(m *ValueMessage) {
	*m = ValueMessage{}
}

func CompareMessages(a, b *ValueMessage) int {
	return Compare(WrapMessage(a), WrapMessage(b))
}

func SerializeMessage(m *ValueMessage, client Client, buf []byte) []byte {
	return Serialize(WrapMessage(m), client, buf)
}

func DeserializeMessage(m *ValueMessage, t DataType, client Client, data *Cursor) error {
	return Deserialize(WrapMessage(m), t, client, data)
}

func MessageString(m *ValueMessage) string {
	return DebugString(WrapMessage(m))
}

func MessageLess(a, b *ValueMessage) bool {
	return Less(WrapMessage(a), WrapMessage(b))
}

func MessageGreater(a, b *ValueMessage) bool {
	return Greater(WrapMessage(a), WrapMessage(b))
}

func MessageLessOrEqual(a, b *ValueMessage) bool {
	return LessOrEqual(WrapMessage(a), WrapMessage(b))
}

func MessageGreaterOrEqual(a, b *ValueMessage) bool {
	return GreaterOrEqual(WrapMessage(a), WrapMessage(b))
}

func MessageEqual(a, b *ValueMessage) bool {
	return Equal(WrapMessage(a), WrapMessage(b))
}

func MessageNotEqual(a, b *ValueMessage) bool {
	return NotEqual(WrapMessage(a), WrapMessage(b))
}

// MessageValue adapts a ValueMessage to the Value interface. It holds only
// a reference to the message; all state lives in the message itself, under
// the message's own field-presence rules.
type MessageValue struct {
	Msg *ValueMessage
}

// WrapMessage wraps an existing message without copying it.
func WrapMessage(m *ValueMessage) MessageValue {
	return MessageValue{Msg: m}
}

func (v MessageValue) Type() DataType { return MessageDataType(v.Msg) }
func (v MessageValue) IsNull() bool   { return MessageIsNull(v.Msg) }
func (v MessageValue) SetNull()       { MessageSetNull(v.Msg) }

func (v MessageValue) Int8() int8 {
	requirePayload(v, TypeInt8)
	return v.Msg.Int8Val
}

func (v MessageValue) Int16() int16 {
	requirePayload(v, TypeInt16)
	return v.Msg.Int16Val
}

func (v MessageValue) Int32() int32 {
	requirePayload(v, TypeInt32)
	return v.Msg.Int32Val
}

func (v MessageValue) Int64() int64 {
	requirePayload(v, TypeInt64)
	return v.Msg.Int64Val
}

func (v MessageValue) Float() float32 {
	requirePayload(v, TypeFloat)
	return v.Msg.FloatVal
}

func (v MessageValue) Double() float64 {
	requirePayload(v, TypeDouble)
	return v.Msg.DoubleVal
}

func (v MessageValue) Bool() bool {
	requirePayload(v, TypeBool)
	return v.Msg.BoolVal
}

func (v MessageValue) StringValue() string {
	requirePayload(v, TypeString)
	return v.Msg.StringVal
}

func (v MessageValue) Timestamp() Timestamp {
	requirePayload(v, TypeTimestamp)
	return NewTimestamp(v.Msg.TimestampVal)
}

// Setters replace the whole message, keeping payload fields mutually
// exclusive the same way the Scalar representation does.

func (v MessageValue) SetInt8(x int8) {
	*v.Msg = ValueMessage{Case: CaseInt8, Int8Val: x}
}

func (v MessageValue) SetInt16(x int16) {
	*v.Msg = ValueMessage{Case: CaseInt16, Int16Val: x}
}

func (v MessageValue) SetInt32(x int32) {
	*v.Msg = ValueMessage{Case: CaseInt32, Int32Val: x}
}

func (v MessageValue) SetInt64(x int64) {
	*v.Msg = ValueMessage{Case: CaseInt64, Int64Val: x}
}

func (v MessageValue) SetFloat(x float32) {
	*v.Msg = ValueMessage{Case: CaseFloat, FloatVal: x}
}

func (v MessageValue) SetDouble(x float64) {
	*v.Msg = ValueMessage{Case: CaseDouble, DoubleVal: x}
}

func (v MessageValue) SetBool(x bool) {
	*v.Msg = ValueMessage{Case: CaseBool, BoolVal: x}
}

func (v MessageValue) SetStringValue(x string) {
	*v.Msg = ValueMessage{Case: CaseString, StringVal: x}
}

func (v MessageValue) SetTimestamp(x Timestamp) {
	*v.Msg = ValueMessage{Case: CaseTimestamp, TimestampVal: x.ToInt64()}
}

func (v MessageValue) String() string { return DebugString(v) }
