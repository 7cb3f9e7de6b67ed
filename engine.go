package digitfreq

import (
	"errors"
	"fmt"

	"github.com/biggeezerdevelopment/digitfreq/internal/scanner"
	"github.com/biggeezerdevelopment/digitfreq/internal/store"
)

// Engine consumes a byte stream in order and counts its digit n-grams.
// It is not safe for concurrent use. Once Finalize has been called the
// engine must not be fed again.
type Engine struct {
	// Hot path
	table   *[256]uint8
	reg     scanner.Register
	counter counter

	cfg  config
	set  *store.Set
	done bool
}

// New creates an engine counting widths 1..maxWidth.
func New(maxWidth int, opts ...Option) (*Engine, error) {
	cfg, err := configure(maxWidth, opts)
	if err != nil {
		return nil, err
	}

	set, err := store.NewSet(cfg.backend, maxWidth, cfg.denseLimit)
	if err != nil {
		return nil, err
	}

	return &Engine{
		table:   cfg.alphabet.Table(),
		reg:     scanner.NewRegister(maxWidth),
		counter: newCounter(cfg.strategy, set),
		cfg:     cfg,
		set:     set,
	}, nil
}

// Consume feeds one input byte. Every byte value is valid input.
func (e *Engine) Consume(b byte) {
	if e.done {
		panic("digitfreq: Consume after Finalize")
	}
	e.reg.Step(e.table[b], e.counter)
}

// Write feeds p in order. It always consumes all of p and never fails,
// so an Engine can be the destination of io.Copy.
func (e *Engine) Write(p []byte) (int, error) {
	if e.done {
		panic("digitfreq: Write after Finalize")
	}
	e.feed(p)
	return len(p), nil
}

func (e *Engine) feed(p []byte) {
	e.reg.Feed(p, e.table, e.counter)
}

// Finalize closes the open run, derives the shorter widths when the
// strategy defers them, and hands the tables to the caller.
func (e *Engine) Finalize() (*Counts, error) {
	if e.done {
		return nil, ErrFinalized
	}
	e.done = true

	e.reg.Close(e.counter)
	e.counter.finish()

	c := &Counts{alphabet: e.cfg.alphabet, set: e.set}
	e.set = nil
	e.counter = nil
	return c, nil
}

// Validate reports the error New would return for the same arguments
// without allocating any tables.
func Validate(maxWidth int, opts ...Option) error {
	_, err := configure(maxWidth, opts)
	return err
}

func configure(maxWidth int, opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	if maxWidth < 1 || maxWidth > MaxWidth {
		return cfg, fmt.Errorf("%w: got %d", ErrInvalidWidth, maxWidth)
	}

	err := store.Check(cfg.backend, maxWidth, cfg.denseLimit)
	if errors.Is(err, store.ErrTooLarge) {
		return cfg, fmt.Errorf("%w: %d (%v)", ErrBackendInfeasible, maxWidth, err)
	}
	return cfg, err
}

func (e *Engine) MaxWidth() int      { return e.reg.Max() }
func (e *Engine) Alphabet() Alphabet { return e.cfg.alphabet }
func (e *Engine) Backend() Backend   { return e.cfg.backend }
func (e *Engine) Strategy() Strategy { return e.cfg.strategy }
