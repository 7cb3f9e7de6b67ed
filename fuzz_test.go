package digitfreq_test

import (
	"testing"

	"github.com/biggeezerdevelopment/digitfreq"
)

func FuzzStrategies(f *testing.F) {
	f.Add([]byte("3.14159265358979"), uint8(4))
	f.Add([]byte("1_23_456_7890_abcde_f01234"), uint8(5))
	f.Add([]byte("ffffffffffffffffffff"), uint8(16))

	f.Fuzz(func(t *testing.T, data []byte, width uint8) {
		d := int(width%digitfreq.MaxWidth) + 1

		eager, err := digitfreq.CountBytes(data, d, digitfreq.WithStrategy(digitfreq.Eager))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		deferred, err := digitfreq.CountBytes(data, d, digitfreq.WithStrategy(digitfreq.Deferred))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !eager.Equal(deferred) {
			t.Fatalf("strategies disagree for width %d on %q", d, data)
		}

		runs := runsOf(data, digitfreq.Hex)
		for w := 1; w <= d; w++ {
			var expected uint64
			for _, r := range runs {
				if len(r) >= w {
					expected += uint64(len(r) - w + 1)
				}
			}
			if got := deferred.Width(w).Total(); got != expected {
				t.Fatalf("width %d total %d, expected %d", w, got, expected)
			}
		}
	})
}
