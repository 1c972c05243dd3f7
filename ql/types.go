package ql

import (
	"fmt"
)

// DataType identifies which scalar kind a value holds. The set is closed;
// the comparator and the wire codec switch exhaustively over it.
type DataType int8

const (
	TypeUnknown DataType = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat
	TypeDouble
	TypeString
	TypeBool
	TypeTimestamp

	// Recognized but never produced as a live payload's kind. A live value
	// carrying one of these is a caller bug; an external decode request for
	// one is a recoverable error (see Deserialize).
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeBinary
)

var typeNames = map[DataType]string{
	TypeUnknown:   "UNKNOWN",
	TypeInt8:      "INT8",
	TypeInt16:     "INT16",
	TypeInt32:     "INT32",
	TypeInt64:     "INT64",
	TypeFloat:     "FLOAT",
	TypeDouble:    "DOUBLE",
	TypeString:    "STRING",
	TypeBool:      "BOOL",
	TypeTimestamp: "TIMESTAMP",
	TypeUint8:     "UINT8",
	TypeUint16:    "UINT16",
	TypeUint32:    "UINT32",
	TypeUint64:    "UINT64",
	TypeBinary:    "BINARY",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DATATYPE(%d)", int8(t))
}

// IsSupported reports whether values of this kind may appear as live
// payloads in the codec and comparator paths.
func (t DataType) IsSupported() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeFloat, TypeDouble, TypeString, TypeBool, TypeTimestamp:
		return true
	}
	return false
}

// IsComparable reports whether a total order is defined for this kind.
// BOOL supports equality only, never ordering.
func (t DataType) IsComparable() bool {
	return t.IsSupported() && t != TypeBool
}

// unsupportedKind is the single policy for the unsupported arm of the kind
// switches. Reaching it means a live value carries a kind that should never
// exist, which is a bug in the calling code, not bad input.
func unsupportedKind(op string, t DataType) {
	panic(fmt.Sprintf("internal error: unsupported type %s in %s", t, op))
}
