package jscan

import "github.com/klauspost/cpuid/v2"

// width is the number of bytes the kernel processes per aligned-chunk
// iteration. 16 is the portable reference width; CPUs wide enough to
// benefit from fewer, larger iterations get 32. Chosen once at package
// init, mirroring the teacher's own SupportedCPU CPU-feature gate, just
// driving loop granularity instead of an assembly dispatch.
var width = func() int {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		return 32
	}
	return 16
}()

// vectorEnabled gates the aligned-chunk path off entirely on CPUs with no
// vector ISA at all, where the alignment bookkeeping buys nothing over the
// scalar fallback.
var vectorEnabled = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)
