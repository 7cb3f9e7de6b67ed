package digitfreq

import (
	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

// counter turns register windows into table increments.
type counter interface {
	scanner.Sink
	// finish runs once after the last window.
	finish()
}

func newCounter(s Strategy, set *store.Set) counter {
	if s == Eager {
		return &eagerCounter{set: set}
	}
	return &deferredCounter{set: set}
}

// eagerCounter counts every prefix of each window immediately.
type eagerCounter struct {
	set *store.Set
}

func (c *eagerCounter) Window(value uint64, width int) {
	v := value & scanner.Masks[width]
	for w := width; w > 0; w-- {
		c.set.Add(w, v)
		v >>= 4
	}
}

func (c *eagerCounter) finish() {}

// deferredCounter counts only the full window; the prefixes are folded
// down width by width in finish.
type deferredCounter struct {
	set *store.Set
}

func (c *deferredCounter) Window(value uint64, width int) {
	c.set.Add(width, value&scanner.Masks[width])
}

func (c *deferredCounter) finish() {
	c.set.FoldPrefixes()
}
