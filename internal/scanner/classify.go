package scanner

// NotDigit is the class of every byte outside the selected alphabet.
const NotDigit uint8 = 0xff

// MaxNibbles is the number of 4-bit digits one uint64 register can hold.
const MaxNibbles = 16

// Alphabet selects which bytes form runs.
type Alphabet uint8

const (
	Decimal Alphabet = iota
	Hex
)

func (a Alphabet) String() string {
	switch a {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	}
	return "unknown"
}

// Lookup tables for byte classification (256 bytes each, cache-friendly)
var (
	decimalLookup [256]uint8
	hexLookup     [256]uint8
)

// Masks[w] keeps the low w nibbles of a register.
var Masks [MaxNibbles + 1]uint64

func init() {
	for i := range decimalLookup {
		decimalLookup[i] = NotDigit
		hexLookup[i] = NotDigit
	}
	for c := '0'; c <= '9'; c++ {
		decimalLookup[c] = uint8(c - '0')
		hexLookup[c] = uint8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		hexLookup[c] = uint8(c-'a') + 10
		hexLookup[c-'a'+'A'] = uint8(c-'a') + 10
	}

	for w := 1; w <= MaxNibbles; w++ {
		Masks[w] = Masks[w-1]<<4 | 0xf
	}
}

// Table returns the classification table for a. Unknown alphabets
// classify every byte as NotDigit.
func (a Alphabet) Table() *[256]uint8 {
	switch a {
	case Decimal:
		return &decimalLookup
	case Hex:
		return &hexLookup
	}
	return &empty
}

var empty = func() (t [256]uint8) {
	for i := range t {
		t[i] = NotDigit
	}
	return t
}()

// Classify maps b to its nibble value under a, or NotDigit.
func (a Alphabet) Classify(b byte) uint8 {
	return a.Table()[b]
}

// Valid reports whether a is a known alphabet.
func (a Alphabet) Valid() bool {
	return a == Decimal || a == Hex
}

// FormatNibbles renders the low width nibbles of v as lowercase hex digits,
// most significant first.
func FormatNibbles(v uint64, width int) string {
	const hextable = "0123456789abcdef"
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = hextable[v&0xf]
		v >>= 4
	}
	return string(buf)
}
