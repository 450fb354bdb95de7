package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/drafty/internal/platform/atomicfile"
)

// Writer materializes CSV files under a root directory. Files are replaced
// atomically, so readers never observe a partial export.
type Writer struct {
	root string
	pool bytebufferpool.Pool
}

func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

func (w *Writer) Root() string {
	return w.root
}

func (w *Writer) WriteCSV(ctx context.Context, name string, header []string, records [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := w.pool.Get()
	defer w.pool.Put(buf)

	enc := csv.NewWriter(buf)
	if err := enc.Write(header); err != nil {
		return fmt.Errorf("encode %s header: %w", name, err)
	}
	for i, record := range records {
		if len(record) != len(header) {
			return fmt.Errorf("encode %s row %d: %d fields, expected %d", name, i, len(record), len(header))
		}
		if err := enc.Write(record); err != nil {
			return fmt.Errorf("encode %s row %d: %w", name, i, err)
		}
	}
	enc.Flush()
	if err := enc.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	return atomicfile.Write(filepath.Join(w.root, filepath.FromSlash(name)), buf.B)
}
