package app

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of stdout went away,
// e.g. "digitfreq ... | head". Such errors are not worth reporting.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
