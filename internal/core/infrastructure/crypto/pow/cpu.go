package pow

import "golang.org/x/sys/cpu"

// Features names the most capable SIMD instruction set the host CPU
// reports. golang.org/x/crypto/blake2b picks its own implementation per
// platform at import time; this label describes the CPU, not which
// blake2b code path was selected, and exists only so callers can log it.
func Features() string {
	switch {
	case cpu.X86.HasAVX2:
		return "amd64/avx2"
	case cpu.X86.HasSSE41:
		return "amd64/sse4.1"
	case cpu.X86.HasSSSE3:
		return "amd64/ssse3"
	case cpu.ARM64.HasASIMD:
		return "arm64/neon"
	default:
		return "scalar"
	}
}
