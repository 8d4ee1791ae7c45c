package encoding

import (
	"fmt"

	"github.com/arloliu/teafile/errs"
)

// ReadText reads a length-prefixed UTF-8 string.
//
// Encoding format:
//   - 4 bytes: byte count as int32
//   - N bytes: UTF-8 string data
//
// Multi-byte UTF-8 is accepted as-is; invalid sequences are not rejected.
// On error the cursor is restored to where the length prefix started.
func ReadText(c *Cursor) (string, error) {
	start := c.Pos()

	n, err := c.ReadInt32()
	if err != nil {
		return "", err
	}

	if n < 0 {
		c.pos = start
		return "", fmt.Errorf("%w: length %d at offset %d", errs.ErrInvalidText, n, start)
	}

	b, err := c.take(int(n))
	if err != nil {
		c.pos = start
		return "", err
	}

	return string(b), nil
}
