package digitfreq_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biggeezerdevelopment/digitfreq"
)

func isDigit(b byte, a digitfreq.Alphabet) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case a == digitfreq.Hex && (b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'):
		return true
	}
	return false
}

// runsOf splits data into maximal digit runs, lowercased.
func runsOf(data []byte, a digitfreq.Alphabet) []string {
	var runs []string
	start := -1
	for i := 0; i <= len(data); i++ {
		if i < len(data) && isDigit(data[i], a) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, strings.ToLower(string(data[start:i])))
			start = -1
		}
	}
	return runs
}

// bruteForce counts every substring of every run directly.
func bruteForce(data []byte, maxWidth int, a digitfreq.Alphabet) map[string]uint64 {
	out := make(map[string]uint64)
	for _, run := range runsOf(data, a) {
		for i := range run {
			for w := 1; w <= maxWidth && i+w <= len(run); w++ {
				out[run[i:i+w]]++
			}
		}
	}
	return out
}

// flatten renders counts keyed by digit string.
func flatten(c *digitfreq.Counts) map[string]uint64 {
	out := make(map[string]uint64)
	for w := 1; w <= c.MaxWidth(); w++ {
		for v, n := range c.Width(w).All() {
			out[digitfreq.Key(v, w)] = n
		}
	}
	return out
}

func mustCount(t testing.TB, data string, maxWidth int, opts ...digitfreq.Option) *digitfreq.Counts {
	t.Helper()
	c, err := digitfreq.CountBytes([]byte(data), maxWidth, opts...)
	require.NoError(t, err)
	return c
}

func randomInput(rng *rand.Rand, n int, alphabet string) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return data
}

type combo struct {
	backend  digitfreq.Backend
	strategy digitfreq.Strategy
}

func (c combo) String() string { return fmt.Sprintf("%s/%s", c.backend, c.strategy) }

func combos(maxWidth int) []combo {
	out := []combo{
		{digitfreq.Sparse, digitfreq.Eager},
		{digitfreq.Sparse, digitfreq.Deferred},
	}
	if maxWidth <= 5 {
		out = append(out,
			combo{digitfreq.Dense, digitfreq.Eager},
			combo{digitfreq.Dense, digitfreq.Deferred})
	}
	return out
}
