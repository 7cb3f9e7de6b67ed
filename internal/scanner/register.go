package scanner

// Sink receives the counting events of a Register.
//
// Window is called once per start position of a run: the low 4*width bits of
// value hold the width digits that begin at that position, oldest digit most
// significant. Bits above that are unspecified and must be masked off.
type Sink interface {
	Window(value uint64, width int)
}

// Register tracks the trailing digits of the current run packed as nibbles,
// newest digit in the lowest bits. It never holds more than max digits: once
// full, every further digit first emits the window that starts at the oldest
// retained digit and then shifts the new nibble in.
type Register struct {
	value  uint64
	length int
	max    int
}

func NewRegister(max int) Register {
	return Register{max: max}
}

func (r *Register) Value() uint64 { return r.value & Masks[r.length] }
func (r *Register) Len() int      { return r.length }
func (r *Register) Max() int      { return r.max }

// Step advances the register by one classified byte.
func (r *Register) Step(n uint8, sink Sink) {
	if n == NotDigit {
		r.Close(sink)
		return
	}
	if r.length == r.max {
		sink.Window(r.value, r.length)
		r.length--
	}
	r.value = r.value<<4 | uint64(n)
	r.length++
}

// Close ends the current run. Every start position still held in the
// register gets its window, shortest suffix last.
func (r *Register) Close(sink Sink) {
	for l := r.length; l > 0; l-- {
		sink.Window(r.value&Masks[l], l)
	}
	r.value = 0
	r.length = 0
}

// Feed classifies and steps over every byte of data. It is equivalent to
// calling Step for each byte but keeps the register in locals.
func (r *Register) Feed(data []byte, table *[256]uint8, sink Sink) {
	v, n, max := r.value, r.length, r.max

	for _, b := range data {
		c := table[b]
		if c == NotDigit {
			if n != 0 {
				r.value, r.length = v, n
				r.Close(sink)
				v, n = 0, 0
			}
			continue
		}
		if n == max {
			sink.Window(v, n)
			n--
		}
		v = v<<4 | uint64(c)
		n++
	}

	r.value, r.length = v, n
}
