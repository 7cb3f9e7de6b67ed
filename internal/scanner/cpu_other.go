//go:build !amd64 && !arm64

package scanner

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU for diagnostic banners.
func Features() string {
	if cpu.IsBigEndian {
		return runtime.GOARCH + " big-endian"
	}
	return runtime.GOARCH
}
