package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/memory/errors"
)

// DefaultHexWidth is the number of bytes per row in HexString.
const DefaultHexWidth = 16

// HexString renders [offset, offset+length) as a hex dump headed by comment,
// the descriptor and the cursor state. Position is not moved.
func (b *Buffer) HexString(comment string, offset, length int64) (string, error) {
	var sb strings.Builder
	if err := b.WriteHex(&sb, comment, offset, length, DefaultHexWidth); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteHex streams the dump produced by HexString with width bytes per row.
func (b *Buffer) WriteHex(w io.Writer, comment string, offset, length int64, width int) error {
	if width <= 0 {
		return errors.InvalidInput(errors.PhaseAccess, fmt.Sprintf("hex width %d must be positive", width))
	}
	data, err := b.window(errors.PhaseAccess, "HexString", offset, length)
	if err != nil {
		return err
	}

	if comment != "" {
		if _, err := fmt.Fprintf(w, "### %s\n", comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s base=%d start=%d position=%d end=%d\n",
		b.desc, b.base, b.start, b.position, b.end); err != nil {
		return err
	}

	row := make([]byte, 0, 4*width+16)
	for i := 0; i < len(data); i += width {
		chunk := data[i:min(i+width, len(data))]
		row = fmt.Appendf(row[:0], "%08x: ", offset+int64(i))
		for j := 0; j < width; j++ {
			if j < len(chunk) {
				row = fmt.Appendf(row, "%02x ", chunk[j])
			} else {
				row = append(row, "   "...)
			}
		}
		row = append(row, '|')
		for _, c := range chunk {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			row = append(row, c)
		}
		row = append(row, '|', '\n')
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
