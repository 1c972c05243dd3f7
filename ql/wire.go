package ql

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Client identifies which wire protocol variant a buffer is encoded for.
// Only the CQL variant exists today; any other discriminator reaching the
// codec is a caller bug.
type Client int8

const (
	ClientUnknown Client = iota
	ClientCQL
)

func (c Client) String() string {
	switch c {
	case ClientCQL:
		return "CQL"
	default:
		return fmt.Sprintf("CLIENT(%d)", int8(c))
	}
}

func checkClient(client Client) {
	if client != ClientCQL {
		panic(fmt.Sprintf("internal error: unsupported client %s", client))
	}
}

// Cursor consumes bytes from the front of an inbound wire buffer. A short
// buffer is a recoverable decode error, never a panic.
type Cursor struct {
	data []byte
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Remaining reports how many bytes are left unconsumed.
func (c *Cursor) Remaining() int {
	return len(c.data)
}

// Consume removes and returns the next n bytes. The returned slice aliases
// the buffer; callers that outlive the buffer must copy.
func (c *Cursor) Consume(n int) ([]byte, error) {
	if n > len(c.data) {
		return nil, fmt.Errorf("insufficient data: need %d bytes, have %d", n, len(c.data))
	}
	b := c.data[:n]
	c.data = c.data[n:]
	return b, nil
}

// Every encoded value starts with a 4-byte network-order signed length.
// -1 means null with no payload; fixed-width kinds still carry the length
// even though it is redundant with the kind's natural width.

func appendLength(buf []byte, n int32) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(n))
}

func decodeLength(data *Cursor) (int32, error) {
	b, err := data.Consume(4)
	if err != nil {
		return 0, fmt.Errorf("decoding value length: %w", err)
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// Serialize appends v's wire encoding for the given client protocol to buf
// and returns the extended buffer. A null value encodes as the -1 length
// frame alone, whatever its declared kind.
func Serialize(v Value, client Client, buf []byte) []byte {
	checkClient(client)
	if v.IsNull() {
		return appendLength(buf, -1)
	}

	switch v.Type() {
	case TypeInt8:
		buf = appendLength(buf, 1)
		return append(buf, byte(v.Int8()))
	case TypeInt16:
		buf = appendLength(buf, 2)
		return binary.BigEndian.AppendUint16(buf, uint16(v.Int16()))
	case TypeInt32:
		buf = appendLength(buf, 4)
		return binary.BigEndian.AppendUint32(buf, uint32(v.Int32()))
	case TypeInt64:
		buf = appendLength(buf, 8)
		return binary.BigEndian.AppendUint64(buf, uint64(v.Int64()))
	case TypeFloat:
		buf = appendLength(buf, 4)
		return binary.BigEndian.AppendUint32(buf, math.Float32bits(v.Float()))
	case TypeDouble:
		buf = appendLength(buf, 8)
		return binary.BigEndian.AppendUint64(buf, math.Float64bits(v.Double()))
	case TypeString:
		s := v.StringValue()
		buf = appendLength(buf, int32(len(s)))
		return append(buf, s...)
	case TypeBool:
		buf = appendLength(buf, 1)
		if v.Bool() {
			return append(buf, 1)
		}
		return append(buf, 0)
	case TypeTimestamp:
		// The wire carries milliseconds; the engine keeps microseconds.
		ms := adjustPrecision(v.Timestamp().ToInt64(), internalPrecision, wirePrecision)
		buf = appendLength(buf, 8)
		return binary.BigEndian.AppendUint64(buf, uint64(ms))

	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeBinary, TypeUnknown:
	}

	unsupportedKind("Serialize", v.Type())
	return buf
}

// Deserialize decodes one wire value into v. The declared kind comes from
// schema metadata supplied by the caller, so a kind the codec does not
// implement is a decode error to report, not a bug. A -1 length sets v to
// null and succeeds for any declared kind.
func Deserialize(v Value, t DataType, client Client, data *Cursor) error {
	checkClient(client)
	length, err := decodeLength(data)
	if err != nil {
		return err
	}
	if length == -1 {
		v.SetNull()
		return nil
	}
	if length < 0 {
		return fmt.Errorf("invalid value length %d", length)
	}

	switch t {
	case TypeInt8:
		b, err := consumeFixed(data, length, 1, t)
		if err != nil {
			return err
		}
		v.SetInt8(int8(b[0]))
	case TypeInt16:
		b, err := consumeFixed(data, length, 2, t)
		if err != nil {
			return err
		}
		v.SetInt16(int16(binary.BigEndian.Uint16(b)))
	case TypeInt32:
		b, err := consumeFixed(data, length, 4, t)
		if err != nil {
			return err
		}
		v.SetInt32(int32(binary.BigEndian.Uint32(b)))
	case TypeInt64:
		b, err := consumeFixed(data, length, 8, t)
		if err != nil {
			return err
		}
		v.SetInt64(int64(binary.BigEndian.Uint64(b)))
	case TypeFloat:
		b, err := consumeFixed(data, length, 4, t)
		if err != nil {
			return err
		}
		v.SetFloat(math.Float32frombits(binary.BigEndian.Uint32(b)))
	case TypeDouble:
		b, err := consumeFixed(data, length, 8, t)
		if err != nil {
			return err
		}
		v.SetDouble(math.Float64frombits(binary.BigEndian.Uint64(b)))
	case TypeString:
		b, err := data.Consume(int(length))
		if err != nil {
			return fmt.Errorf("decoding %s value: %w", t, err)
		}
		// string(b) copies, so the value owns its payload once the wire
		// buffer is recycled.
		v.SetStringValue(string(b))
	case TypeBool:
		b, err := consumeFixed(data, length, 1, t)
		if err != nil {
			return err
		}
		v.SetBool(b[0] != 0)
	case TypeTimestamp:
		b, err := consumeFixed(data, length, 8, t)
		if err != nil {
			return err
		}
		ms := int64(binary.BigEndian.Uint64(b))
		v.SetTimestamp(NewTimestamp(adjustPrecision(ms, wirePrecision, internalPrecision)))

	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeBinary, TypeUnknown:
		return fmt.Errorf("unsupported type %s requested by client", t)
	default:
		return fmt.Errorf("unknown data type %d requested by client", int8(t))
	}
	return nil
}

// consumeFixed reads one fixed-width payload, checking the redundant length
// field against the kind's natural width.
func consumeFixed(data *Cursor, length int32, width int, t DataType) ([]byte, error) {
	if int(length) != width {
		return nil, fmt.Errorf("unexpected length %d for %s value, expected %d", length, t, width)
	}
	b, err := data.Consume(width)
	if err != nil {
		return nil, fmt.Errorf("decoding %s value: %w", t, err)
	}
	return b, nil
}
