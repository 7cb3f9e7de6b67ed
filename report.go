package digitfreq

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"sync"
)

type reportEncoder struct {
	buf []byte
}

var reportPool = sync.Pool{
	New: func() interface{} {
		return &reportEncoder{
			buf: make([]byte, 0, 4096),
		}
	},
}

func newReportEncoder() *reportEncoder {
	e := reportPool.Get().(*reportEncoder)
	e.buf = e.buf[:0]
	return e
}

func (e *reportEncoder) release() {
	if cap(e.buf) > 64*1024 {
		e.buf = make([]byte, 0, 4096)
	}
	reportPool.Put(e)
}

const reportChunk = 32 * 1024

// line appends "<distinct> [c1, c2, ...]\n" for t, counts in ascending
// key order, writing to w whenever the buffer fills.
func (e *reportEncoder) line(w io.Writer, t Table) error {
	e.buf = strconv.AppendInt(e.buf, int64(t.Len()), 10)
	e.buf = append(e.buf, ' ', '[')
	first := true
	for _, c := range t.Ascending() {
		if !first {
			e.buf = append(e.buf, ',', ' ')
		}
		first = false
		e.buf = strconv.AppendUint(e.buf, c, 10)
		if err := e.flush(w, reportChunk); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, ']', '\n')
	return nil
}

// flush writes the buffer once it holds at least limit bytes.
func (e *reportEncoder) flush(w io.Writer, limit int) error {
	if len(e.buf) == 0 || len(e.buf) < limit {
		return nil
	}
	_, err := w.Write(e.buf)
	e.buf = e.buf[:0]
	return err
}

// WriteReport writes one line per width 1..MaxWidth: the number of
// distinct values followed by their counts ordered by ascending value.
func WriteReport(w io.Writer, c *Counts) error {
	e := newReportEncoder()
	defer e.release()

	for width := 1; width <= c.MaxWidth(); width++ {
		if err := e.line(w, c.Width(width)); err != nil {
			return err
		}
	}
	return e.flush(w, 0)
}

// ReportHash is the hex SHA-256 of the report WriteReport produces for c.
func ReportHash(c *Counts) (string, error) {
	h := sha256.New()
	if err := WriteReport(h, c); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
