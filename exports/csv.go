package exports

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// WriteCSV writes the table as CSV. With sjis set the output is
// Shift-JIS encoded, which is what Excel on Japanese Windows expects when
// opening a CSV by double-click.
func WriteCSV(w io.Writer, t Table, sjis bool) error {
	out := w
	var enc *transform.Writer
	if sjis {
		enc = transform.NewWriter(w, japanese.ShiftJIS.NewEncoder())
		out = enc
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i := range row {
			if i < len(r) {
				row[i] = fmt.Sprint(r[i])
			} else {
				row[i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	// the encoder buffers; an unencodable rune can surface only here
	if enc != nil {
		return enc.Close()
	}
	return nil
}
