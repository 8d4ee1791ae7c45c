package item

import (
	"testing"

	"github.com/arloliu/teafile/format"
	"github.com/arloliu/teafile/section"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s := &section.ItemSection{
		ItemSize: 16,
		ItemName: "Tick",
		Fields: []section.Field{
			{Type: format.TypeInt64, Offset: 0, Name: "Time"},
			{Type: format.TypeFloat64, Offset: 8, Name: "Price"},
		},
	}

	schema := NewSchema(s)
	require.Equal(t, "Tick", schema.ItemName)
	require.Equal(t, 16, schema.ItemSize)
	require.Equal(t, []string{"Time", "Price"}, schema.FieldNames())
}

func TestSchema_Fingerprint(t *testing.T) {
	base := Schema{
		ItemName: "Tick",
		ItemSize: 16,
		Fields: []section.Field{
			{Type: format.TypeInt64, Offset: 0, Name: "Time"},
			{Type: format.TypeFloat64, Offset: 8, Name: "Price"},
		},
	}

	t.Run("SameLayout", func(t *testing.T) {
		other := base
		other.ItemName = "Quote"
		require.Equal(t, base.Fingerprint(), other.Fingerprint())
	})

	t.Run("DifferentLayout", func(t *testing.T) {
		variants := []Schema{
			{ItemSize: 24, Fields: base.Fields},
			{ItemSize: 16, Fields: []section.Field{base.Fields[1], base.Fields[0]}},
			{ItemSize: 16, Fields: []section.Field{
				{Type: format.TypeUint64, Offset: 0, Name: "Time"},
				base.Fields[1],
			}},
			{ItemSize: 16, Fields: []section.Field{
				base.Fields[0],
				{Type: format.TypeFloat64, Offset: 8, Name: "Bid"},
			}},
			{ItemSize: 16, Fields: base.Fields[:1]},
		}

		fp := base.Fingerprint()
		for i, v := range variants {
			require.NotEqual(t, fp, v.Fingerprint(), "variant %d", i)
		}
	})
}
