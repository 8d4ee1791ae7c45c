package item

import (
	"math"

	"github.com/arloliu/teafile/encoding"
	"github.com/arloliu/teafile/errs"
	"github.com/arloliu/teafile/format"
)

// Item maps field names to the decoded values of one record.
type Item map[string]any

// Int64 returns an integer field as int64. It fails for floats and for
// uint64 values above math.MaxInt64.
func (it Item) Int64(name string) (int64, bool) {
	switch v := it[name].(type) {
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	default:
		return 0, false
	}
}

// Uint64 returns an integer field as uint64. It fails for floats and
// negative values.
func (it Item) Uint64(name string) (uint64, bool) {
	switch v := it[name].(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	default:
		i, ok := it.Int64(name)
		if !ok || i < 0 {
			return 0, false
		}

		return uint64(i), true
	}
}

// Float64 returns any numeric field as float64.
func (it Item) Float64(name string) (float64, bool) {
	switch v := it[name].(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case uint64:
		return float64(v), true
	default:
		i, ok := it.Int64(name)
		return float64(i), ok
	}
}

// readValue decodes one scalar of type t at the cursor.
func readValue(c *encoding.Cursor, t format.FieldType) (any, error) {
	switch t {
	case format.TypeInt8:
		return c.ReadInt8()
	case format.TypeInt16:
		return c.ReadInt16()
	case format.TypeInt32:
		return c.ReadInt32()
	case format.TypeInt64:
		return c.ReadInt64()
	case format.TypeUint8:
		return c.ReadUint8()
	case format.TypeUint16:
		return c.ReadUint16()
	case format.TypeUint32:
		return c.ReadUint32()
	case format.TypeUint64:
		return c.ReadUint64()
	case format.TypeFloat32:
		return c.ReadFloat32()
	case format.TypeFloat64:
		return c.ReadFloat64()
	default:
		return nil, &errs.FieldTypeError{Code: int32(t), Offset: c.Pos()}
	}
}
