package scanner

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

// recorder collects windows as digit strings.
type recorder struct {
	windows []string
}

func (r *recorder) Window(value uint64, width int) {
	r.windows = append(r.windows, FormatNibbles(value&Masks[width], width))
}

// dequeModel is the literal reading of the register: a deque of at most
// max digits that emits its whole content before evicting the front.
type dequeModel struct {
	digits []uint8
	max    int
	out    []string
}

func (d *dequeModel) emit() {
	s := make([]byte, len(d.digits))
	for i, n := range d.digits {
		s[i] = "0123456789abcdef"[n]
	}
	d.out = append(d.out, string(s))
}

func (d *dequeModel) step(n uint8) {
	if n == NotDigit {
		d.close()
		return
	}
	if len(d.digits) == d.max {
		d.emit()
		d.digits = d.digits[1:]
	}
	d.digits = append(d.digits, n)
}

func (d *dequeModel) close() {
	for len(d.digits) > 0 {
		d.emit()
		d.digits = d.digits[1:]
	}
}

func TestRegister_Windows(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		input    string
		expected []string
	}{
		{"empty", 3, "", nil},
		{"no digits", 3, "xyz.", nil},
		{"single digit", 3, "7", []string{"7"}},
		{"shorter than max", 3, "12", []string{"12", "2"}},
		{"exactly max", 3, "123", []string{"123", "23", "3"}},
		{"slides past max", 2, "1234", []string{"12", "23", "34", "4"}},
		{"two runs", 2, "12_345", []string{"12", "2", "34", "45", "5"}},
		{"width one", 1, "abc", []string{"a", "b", "c"}},
		{"trailing separator", 2, "99.", []string{"99", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			r := NewRegister(tt.max)
			for i := 0; i < len(tt.input); i++ {
				r.Step(Hex.Classify(tt.input[i]), rec)
			}
			r.Close(rec)

			if !reflect.DeepEqual(rec.windows, tt.expected) {
				t.Errorf("windows = %v, expected %v", rec.windows, tt.expected)
			}
			if r.Len() != 0 || r.Value() != 0 {
				t.Errorf("register not reset after Close: len=%d value=%#x", r.Len(), r.Value())
			}
		})
	}
}

func TestRegister_FeedMatchesStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("0123456789abcdefABCDEF_. x")

	for _, max := range []int{1, 2, 5, 16} {
		t.Run(fmt.Sprintf("max_%d", max), func(t *testing.T) {
			data := make([]byte, 4096)
			for i := range data {
				data[i] = alphabet[rng.Intn(len(alphabet))]
			}

			stepped := &recorder{}
			r1 := NewRegister(max)
			for _, b := range data {
				r1.Step(Hex.Classify(b), stepped)
			}
			r1.Close(stepped)

			// Feed in uneven pieces to cross chunk boundaries mid-run.
			fed := &recorder{}
			r2 := NewRegister(max)
			for rest := data; len(rest) > 0; {
				n := min(len(rest), 1+rng.Intn(97))
				r2.Feed(rest[:n], Hex.Table(), fed)
				rest = rest[n:]
			}
			r2.Close(fed)

			if !reflect.DeepEqual(stepped.windows, fed.windows) {
				t.Fatalf("Feed emitted %d windows, Step emitted %d", len(fed.windows), len(stepped.windows))
			}
		})
	}
}

func TestRegister_MatchesDequeModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("0123456789abcdef-")

	for _, max := range []int{1, 2, 3, 7, 16} {
		for trial := 0; trial < 20; trial++ {
			data := make([]byte, rng.Intn(300))
			for i := range data {
				data[i] = alphabet[rng.Intn(len(alphabet))]
			}

			rec := &recorder{}
			r := NewRegister(max)
			r.Feed(data, Hex.Table(), rec)
			r.Close(rec)

			model := &dequeModel{max: max}
			for _, b := range data {
				model.step(Hex.Classify(b))
			}
			model.close()

			if !reflect.DeepEqual(rec.windows, model.out) {
				t.Fatalf("max=%d input=%q\nregister: %v\nmodel:    %v", max, data, rec.windows, model.out)
			}
		}
	}
}

func TestRegister_ValueKeepsNewestDigits(t *testing.T) {
	r := NewRegister(3)
	rec := &recorder{}
	for _, b := range []byte("12345") {
		r.Step(Decimal.Classify(b), rec)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", r.Len())
	}
	if r.Value() != 0x345 {
		t.Errorf("Value() = %#x, expected 0x345", r.Value())
	}
	if r.Max() != 3 {
		t.Errorf("Max() = %d", r.Max())
	}
}
