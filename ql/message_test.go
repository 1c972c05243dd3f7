package ql

import (
	"bytes"
	"testing"
)

func TestMessageNullForgetsKind(t *testing.T) {
	var m ValueMessage
	w := WrapMessage(&m)
	w.SetInt32(42)

	if MessageDataType(&m) != TypeInt32 {
		t.Errorf("expected INT32, got %s", MessageDataType(&m))
	}

	MessageSetNull(&m)
	if !MessageIsNull(&m) {
		t.Error("message should be null after MessageSetNull")
	}
	// Unlike Scalar, the message's presence model has no memory of the
	// cleared kind.
	if MessageDataType(&m) != TypeUnknown {
		t.Errorf("expected UNKNOWN for a cleared message, got %s", MessageDataType(&m))
	}
}

func TestMessageSettersExclusive(t *testing.T) {
	var m ValueMessage
	w := WrapMessage(&m)

	w.SetStringValue("hello")
	w.SetInt32(7)

	if m.Case != CaseInt32 {
		t.Errorf("expected CaseInt32, got %d", m.Case)
	}
	if m.StringVal != "" {
		t.Errorf("previous string payload not cleared: %q", m.StringVal)
	}
	if m.Int32Val != 7 {
		t.Errorf("expected 7, got %d", m.Int32Val)
	}
}

func TestMessageGetterPreconditions(t *testing.T) {
	var m ValueMessage
	w := WrapMessage(&m)

	expectPanic(t, "getter on null message", func() { w.Int32() })

	w.SetInt32(7)
	expectPanic(t, "mismatched kind getter", func() { w.Int64() })
}

// fixturePair builds the same logical value in both representations.
type fixturePair struct {
	name   string
	scalar *Scalar
	msg    *ValueMessage
}

func fixturePairs() []fixturePair {
	pairs := []fixturePair{}
	add := func(name string, set func(v Value)) {
		s := NewScalar(TypeUnknown)
		var m ValueMessage
		set(s)
		set(WrapMessage(&m))
		pairs = append(pairs, fixturePair{name: name, scalar: s, msg: &m})
	}

	add("int8", func(v Value) { v.SetInt8(-3) })
	add("int16", func(v Value) { v.SetInt16(1234) })
	add("int32", func(v Value) { v.SetInt32(-1) })
	add("int64", func(v Value) { v.SetInt64(1 << 40) })
	add("float", func(v Value) { v.SetFloat(3.5) })
	add("double", func(v Value) { v.SetDouble(-0.25) })
	add("string", func(v Value) { v.SetStringValue("héllo") })
	add("bool", func(v Value) { v.SetBool(true) })
	add("timestamp", func(v Value) { v.SetTimestamp(NewTimestamp(1696118400123000)) })
	return pairs
}

func TestCrossRepresentationEquivalence(t *testing.T) {
	for _, p := range fixturePairs() {
		t.Run(p.name, func(t *testing.T) {
			w := WrapMessage(p.msg)

			if p.scalar.Type() != w.Type() {
				t.Errorf("types differ: %s vs %s", p.scalar.Type(), w.Type())
			}
			if !Equal(p.scalar, w) {
				t.Errorf("representations compare unequal: %s vs %s", p.scalar, w)
			}
			if p.scalar.Type() != TypeBool && Compare(p.scalar, w) != 0 {
				t.Error("Compare should report 0 across representations")
			}

			sBuf := Serialize(p.scalar, ClientCQL, nil)
			mBuf := SerializeMessage(p.msg, ClientCQL, nil)
			if !bytes.Equal(sBuf, mBuf) {
				t.Errorf("wire encodings differ: % x vs % x", sBuf, mBuf)
			}

			if p.scalar.String() != MessageString(p.msg) {
				t.Errorf("debug strings differ: %s vs %s", p.scalar, MessageString(p.msg))
			}

			// Decode the scalar's bytes into a fresh message and compare.
			var decoded ValueMessage
			if err := DeserializeMessage(&decoded, p.scalar.Type(), ClientCQL, NewCursor(sBuf)); err != nil {
				t.Fatalf("deserialize into message failed: %v", err)
			}
			if !MessageEqual(&decoded, p.msg) {
				t.Errorf("decoded message differs: %s vs %s", MessageString(&decoded), MessageString(p.msg))
			}
		})
	}
}

func TestCompareAcrossRepresentations(t *testing.T) {
	var m ValueMessage
	WrapMessage(&m).SetInt32(10)

	if got := Compare(NewInt32(5), WrapMessage(&m)); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if got := Compare(WrapMessage(&m), NewInt32(5)); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestMessageFreeFunctionPredicates(t *testing.T) {
	var a, b, null ValueMessage
	WrapMessage(&a).SetInt64(1)
	WrapMessage(&b).SetInt64(2)

	if !MessageLess(&a, &b) || MessageLess(&b, &a) {
		t.Error("MessageLess inconsistent")
	}
	if !MessageGreater(&b, &a) || MessageGreater(&a, &b) {
		t.Error("MessageGreater inconsistent")
	}
	if !MessageLessOrEqual(&a, &a) || !MessageGreaterOrEqual(&a, &a) {
		t.Error("MessageLessOrEqual/GreaterOrEqual should hold for equal values")
	}
	if !MessageEqual(&a, &a) || MessageEqual(&a, &b) {
		t.Error("MessageEqual inconsistent")
	}
	if !MessageNotEqual(&a, &b) || MessageNotEqual(&a, &a) {
		t.Error("MessageNotEqual inconsistent")
	}
	if got := CompareMessages(&a, &b); got != -1 {
		t.Errorf("CompareMessages = %d, expected -1", got)
	}

	// Null absorbs to false through the message entry points too.
	if MessageLess(&null, &a) || MessageLess(&a, &null) ||
		MessageEqual(&null, &null) || MessageNotEqual(&null, &a) ||
		MessageGreaterOrEqual(&a, &null) {
		t.Error("null message must make every predicate false")
	}
}

func TestMessageSerializeNull(t *testing.T) {
	var m ValueMessage
	buf := SerializeMessage(&m, ClientCQL, nil)
	if !bytes.Equal(buf, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("null message encoded as % x", buf)
	}

	// A null frame decodes back to a cleared message under any kind.
	var decoded ValueMessage
	WrapMessage(&decoded).SetBool(true)
	if err := DeserializeMessage(&decoded, TypeInt64, ClientCQL, NewCursor(buf)); err != nil {
		t.Fatalf("deserialize failed: %v", err)
	}
	if decoded.Case != CaseNotSet {
		t.Errorf("expected CaseNotSet, got %d", decoded.Case)
	}
	if decoded.BoolVal {
		t.Error("previous payload survived SetNull")
	}
}

func TestMessageStringRendering(t *testing.T) {
	var m ValueMessage
	if got := MessageString(&m); got != "UNKNOWN:null" {
		t.Errorf("expected UNKNOWN:null, got %q", got)
	}

	WrapMessage(&m).SetStringValue("ab")
	if got := MessageString(&m); got != `STRING:"ab"` {
		t.Errorf(`expected STRING:"ab", got %q`, got)
	}
}
