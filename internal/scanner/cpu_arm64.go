//go:build arm64

package scanner

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU for diagnostic banners.
func Features() string {
	return fmt.Sprintf("arm64 asimd=%t crc32=%t atomics=%t",
		cpu.ARM64.HasASIMD, cpu.ARM64.HasCRC32, cpu.ARM64.HasATOMICS)
}
