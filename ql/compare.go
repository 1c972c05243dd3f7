package ql

import (
	"cmp"
	"fmt"
	"strings"
)

// Compare orders a against b, returning -1, 0 or 1. Both values must be
// non-null and of the same comparable declared kind; anything else is a bug
// in the calling code and panics. BOOL is deliberately not orderable.
func Compare(a, b Value) int {
	if a.Type() != b.Type() {
		panic(fmt.Sprintf("internal error: comparing %s against %s", a.Type(), b.Type()))
	}
	if a.IsNull() || b.IsNull() {
		panic("internal error: comparing a null value")
	}

	switch a.Type() {
	case TypeInt8:
		return genericCompare(a.Int8(), b.Int8())
	case TypeInt16:
		return genericCompare(a.Int16(), b.Int16())
	case TypeInt32:
		return genericCompare(a.Int32(), b.Int32())
	case TypeInt64:
		return genericCompare(a.Int64(), b.Int64())
	case TypeFloat:
		return genericCompare(a.Float(), b.Float())
	case TypeDouble:
		return genericCompare(a.Double(), b.Double())
	case TypeString:
		return strings.Compare(a.StringValue(), b.StringValue())
	case TypeBool:
		panic("internal error: bool type not comparable")
	case TypeTimestamp:
		return genericCompare(a.Timestamp().ToInt64(), b.Timestamp().ToInt64())

	case TypeUint8, TypeUint16, TypeUint32, TypeUint64, TypeBinary, TypeUnknown:
	}

	unsupportedKind("Compare", a.Type())
	return 0
}

func genericCompare[T cmp.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func bothNotNull(a, b Value) bool {
	return !a.IsNull() && !b.IsNull()
}

// Relational predicates absorb null: when either operand is null, every
// predicate reports false, equality included. This is the one place
// nullness is swallowed instead of reported.

func Less(a, b Value) bool           { return bothNotNull(a, b) && Compare(a, b) < 0 }
func Greater(a, b Value) bool        { return bothNotNull(a, b) && Compare(a, b) > 0 }
func LessOrEqual(a, b Value) bool    { return bothNotNull(a, b) && Compare(a, b) <= 0 }
func GreaterOrEqual(a, b Value) bool { return bothNotNull(a, b) && Compare(a, b) >= 0 }

// Equal supports BOOL directly since booleans have equality but no order.
func Equal(a, b Value) bool {
	if !bothNotNull(a, b) {
		return false
	}
	if a.Type() == TypeBool && b.Type() == TypeBool {
		return a.Bool() == b.Bool()
	}
	return Compare(a, b) == 0
}

func NotEqual(a, b Value) bool {
	if !bothNotNull(a, b) {
		return false
	}
	if a.Type() == TypeBool && b.Type() == TypeBool {
		return a.Bool() != b.Bool()
	}
	return Compare(a, b) != 0
}
