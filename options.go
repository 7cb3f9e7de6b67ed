package digitfreq

import (
	"fmt"
	"strings"

	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

// Strategy decides when shorter widths are counted.
type Strategy uint8

const (
	// Deferred counts only the widest window per position and derives
	// shorter widths from prefixes once the stream has ended.
	Deferred Strategy = iota
	// Eager counts every width as soon as its window is known.
	Eager
)

func (s Strategy) String() string {
	switch s {
	case Deferred:
		return "deferred"
	case Eager:
		return "eager"
	}
	return "unknown"
}

// DefaultDenseLimit caps the memory of dense tables (1 GiB).
const DefaultDenseLimit = store.DefaultDenseLimit

// Option configures an Engine.
type Option func(*config) error

type config struct {
	alphabet   Alphabet
	backend    Backend
	strategy   Strategy
	denseLimit uint64
}

func defaultConfig() config {
	return config{
		alphabet:   Hex,
		backend:    Sparse,
		strategy:   Deferred,
		denseLimit: DefaultDenseLimit,
	}
}

// WithAlphabet selects which bytes count as digits.
func WithAlphabet(a Alphabet) Option {
	return func(c *config) error {
		if !a.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownAlphabet, a)
		}
		c.alphabet = a
		return nil
	}
}

// WithBackend selects the count storage.
func WithBackend(b Backend) Option {
	return func(c *config) error {
		if b != Sparse && b != Dense {
			return fmt.Errorf("%w: %d", ErrUnknownBackend, b)
		}
		c.backend = b
		return nil
	}
}

// WithStrategy selects the counting strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) error {
		if s != Deferred && s != Eager {
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
		}
		c.strategy = s
		return nil
	}
}

// WithDenseLimit sets the byte ceiling for dense tables.
// It has no effect on the sparse backend.
func WithDenseLimit(bytes uint64) Option {
	return func(c *config) error {
		c.denseLimit = bytes
		return nil
	}
}

// ParseAlphabet accepts "decimal"/"dec" and "hex".
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(s) {
	case "decimal", "dec":
		return Decimal, nil
	case "hex", "hexadecimal":
		return Hex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlphabet, s)
}

// ParseBackend accepts "sparse" and "dense".
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "sparse":
		return Sparse, nil
	case "dense":
		return Dense, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// ParseStrategy accepts "deferred"/"late" and "eager"/"early".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "deferred", "late":
		return Deferred, nil
	case "eager", "early":
		return Eager, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
