// Package item decodes the item area of a TeaFile.
//
// The item area is a packed array of fixed-size records. The item section of
// the file declares the record size and, for every field, its scalar type and
// its byte offset inside a record. Field values are decoded in the byte order
// of the file.
//
// Records are located by pure offset arithmetic over the immutable buffer,
// so any record can be decoded on its own and a Decoder may be used from
// several goroutines at once:
//
//	dec, err := item.NewDecoder(data, header, item.NewSchema(itemSection))
//	if err != nil {
//	    return err
//	}
//	last, err := dec.At(dec.Count() - 1)
//
// Decoded values keep their Go type: int8, int16, int32, int64, uint8,
// uint16, uint32, uint64, float32 or float64.
package item
