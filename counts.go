package digitfreq

import (
	"fmt"

	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

// Counts is the finalized result of an Engine: one Table per width.
type Counts struct {
	alphabet Alphabet
	set      *store.Set
}

func (c *Counts) MaxWidth() int { return c.set.MaxWidth() }

func (c *Counts) Alphabet() Alphabet { return c.alphabet }

func (c *Counts) Backend() Backend { return c.set.Kind() }

// Width returns the table for width w, 1 <= w <= MaxWidth.
func (c *Counts) Width(w int) Table {
	if w < 1 || w > c.MaxWidth() {
		panic(fmt.Sprintf("digitfreq: width %d out of range 1..%d", w, c.MaxWidth()))
	}
	return c.set.Width(w)
}

// Get returns the count of the digit string key, e.g. "07" at width 2.
// Keys that are not digits of the alphabet have count 0.
func (c *Counts) Get(key string) uint64 {
	w := len(key)
	if w < 1 || w > c.MaxWidth() {
		return 0
	}
	table := c.alphabet.Table()
	var v uint64
	for i := 0; i < w; i++ {
		n := table[key[i]]
		if n == scanner.NotDigit {
			return 0
		}
		v = v<<4 | uint64(n)
	}
	return c.set.Width(w).Get(v)
}

// Merge adds o into c. Counts of disjoint inputs split at run boundaries
// merge into the counts of the whole input.
func (c *Counts) Merge(o *Counts) error {
	if c.alphabet != o.alphabet || c.MaxWidth() != o.MaxWidth() {
		return fmt.Errorf("%w: %s/%d vs %s/%d", ErrWidthMismatch,
			c.alphabet, c.MaxWidth(), o.alphabet, o.MaxWidth())
	}
	return c.set.Merge(o.set)
}

// Equal reports whether c and o hold identical counts at every width.
// The backends are not compared.
func (c *Counts) Equal(o *Counts) bool {
	return c.alphabet == o.alphabet && c.set.Equal(o.set)
}

// Key renders value at width w the way it appears in the input.
func Key(value uint64, w int) string {
	return store.Key(value, w)
}
