//go:build amd64

package scanner

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU for diagnostic banners.
func Features() string {
	return fmt.Sprintf("amd64 avx2=%t sse42=%t bmi2=%t popcnt=%t",
		cpu.X86.HasAVX2, cpu.X86.HasSSE42, cpu.X86.HasBMI2, cpu.X86.HasPOPCNT)
}
