package source

import (
	"bytes"
	"context"
)

// Marker is the byte that conventionally precedes the digits of interest,
// e.g. the decimal point in "3.14159...".
const Marker = '.'

type skipThrough struct {
	Source
	marker byte
}

// SkipThrough drops every byte up to and including the first marker.
// When the stream has no marker nothing reaches the consumer.
func SkipThrough(src Source, marker byte) Source {
	return &skipThrough{Source: src, marker: marker}
}

func (s *skipThrough) Each(ctx context.Context, fn func([]byte) error) error {
	found := false
	return s.Source.Each(ctx, func(chunk []byte) error {
		if !found {
			i := bytes.IndexByte(chunk, s.marker)
			if i < 0 {
				return nil
			}
			found = true
			chunk = chunk[i+1:]
			if len(chunk) == 0 {
				return nil
			}
		}
		return fn(chunk)
	})
}
