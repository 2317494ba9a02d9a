package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a benchmark ran on, for inclusion in the
// report. Results are meaningless without it.
type HostInfo struct {
	Arch     string
	NumCPU   int
	Features []string
}

// CollectHostInfo gathers architecture and the CPU features relevant to
// 64-bit limb arithmetic. Feature probes report false on architectures
// where they do not apply.
func CollectHostInfo() HostInfo {
	info := HostInfo{
		Arch:   runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
	probes := []struct {
		name string
		have bool
	}{
		{"adx", cpu.X86.HasADX},
		{"bmi2", cpu.X86.HasBMI2},
		{"avx2", cpu.X86.HasAVX2},
		{"sse42", cpu.X86.HasSSE42},
		{"neon", cpu.ARM64.HasASIMD},
	}
	for _, p := range probes {
		if p.have {
			info.Features = append(info.Features, p.name)
		}
	}
	return info
}
