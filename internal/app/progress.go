package app

import (
	"fmt"
	"io"
	"time"
)

// ProgressInterval is how many consumed bytes separate two progress lines.
const ProgressInterval = 10_000_000

// progress prints "Digits: N, Time: S" every ProgressInterval bytes.
type progress struct {
	w      io.Writer
	prefix string
	start  time.Time
	total  uint64
	next   uint64
}

func newProgress(w io.Writer, prefix string) *progress {
	return &progress{w: w, prefix: prefix, start: time.Now(), next: ProgressInterval}
}

func (p *progress) add(n int) {
	p.total += uint64(n)
	for p.total >= p.next {
		p.line("Time", p.next)
		p.next += ProgressInterval
	}
}

func (p *progress) line(label string, digits uint64) {
	if p.w == nil {
		return
	}
	_, _ = fmt.Fprintf(p.w, "%sDigits: %d, %s: %f\n", p.prefix, digits, label, time.Since(p.start).Seconds())
}

func (p *progress) eof()   { p.line("Eof Time", p.total) }
func (p *progress) final() { p.line("Final Time", p.total) }
