package snapshot

// Offsets of the provider's SystemMetrics struct, natural C alignment on a
// 64-bit little-endian host (int = 4, long = 8, double = 8).
const (
	offCPUModel      = 0
	offCoreCount     = offCPUModel + LineLen // 512, followed by 4 bytes padding
	offCPUFreq       = 520
	offCPUUsage      = offCPUFreq + 8
	offCoresUsage    = offCPUUsage + 8 // 536
	offRAMTotal      = offCoresUsage + MaxCores*8
	offRAMUsed       = offRAMTotal + 8
	offRAMPercent    = offRAMUsed + 8
	offDiskTotal     = offRAMPercent + 8
	offDiskUsed      = offDiskTotal + 8
	offDiskPercent   = offDiskUsed + 8
	offUptime        = offDiskPercent + 8 // 1096
	offOSName        = offUptime + 8
	offKernelVersion = offOSName + LineLen
	offGPUName       = offKernelVersion + LineLen
	offGPUUsage      = offGPUName + LineLen // 2640
	offGPUMemTotal   = offGPUUsage + 8
	offGPUMemUsed    = offGPUMemTotal + 8
	offProcessCount  = offGPUMemUsed + 8 // 2664, followed by 4 bytes padding
	offProcesses     = offProcessCount + 8
	offNetRx         = offProcesses + MaxProcesses*ProcessEntrySize // 18752
	offNetTx         = offNetRx + 8

	// RecordSize is the byte size of one provider record.
	RecordSize = offNetTx + 8 // 18768
)

// ProcessData layout: pid, name[256], 4 bytes padding, cpu, ram, user[256].
const (
	procOffPID  = 0
	procOffName = 4
	procOffCPU  = 264
	procOffRAM  = procOffCPU + 8
	procOffUser = procOffRAM + 8

	// ProcessEntrySize is the byte size of one process entry.
	ProcessEntrySize = procOffUser + StrLen // 536
)
