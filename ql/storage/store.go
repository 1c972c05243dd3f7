package storage

import (
	"fmt"

	"github.com/meridiandb/meridian/ql"
)

// Record is one named catalog value: a column default, a partition split
// point, a config scalar.
type Record struct {
	Key   string
	Value ql.ValueMessage
}

// RecordStore persists named scalar values for the catalog layer.
type RecordStore interface {
	Put(key string, value *ql.ValueMessage) error
	Get(key string) (*ql.ValueMessage, error)
	Delete(key string) error
	List(prefix string) ([]Record, error)
	Close() error
}

// EncodeRecord renders a value as a stored record: one DataType tag byte
// followed by the value's wire encoding. A null message tags as UNKNOWN,
// since the message's presence model does not retain a cleared kind; the -1
// length frame that follows decodes back to null under any tag.
func EncodeRecord(m *ql.ValueMessage) []byte {
	buf := []byte{byte(ql.MessageDataType(m))}
	return ql.SerializeMessage(m, ql.ClientCQL, buf)
}

// DecodeRecord parses a stored record back into a message.
func DecodeRecord(data []byte) (*ql.ValueMessage, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("record too short: %d bytes", len(data))
	}
	t := ql.DataType(data[0])
	cur := ql.NewCursor(data[1:])

	var m ql.ValueMessage
	if err := ql.DeserializeMessage(&m, t, ql.ClientCQL, cur); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	if cur.Remaining() != 0 {
		return nil, fmt.Errorf("record has %d trailing bytes", cur.Remaining())
	}
	return &m, nil
}
