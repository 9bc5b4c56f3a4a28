package snapshot

import (
	"math"
	"unicode/utf8"
)

// Encode returns the provider byte image of rec.
func Encode(rec Record) []byte {
	buf := make([]byte, RecordSize)
	_ = EncodeInto(rec, buf)
	return buf
}

// EncodeInto writes rec into buf using the provider layout. Text longer than
// its field is truncated so a terminating NUL always fits. buf is fully
// overwritten, so stale bytes from a previous record never leak through.
func EncodeInto(rec Record, buf []byte) error {
	if len(buf) < RecordSize {
		return &ShortRecordError{Got: len(buf)}
	}
	buf = buf[:RecordSize]
	clear(buf)

	putText(buf, offCPUModel, LineLen, rec.CPUModel)
	order.PutUint32(buf[offCoreCount:], uint32(int32(rec.Cores.n)))
	putF64(buf, offCPUFreq, rec.CPUFreqMHz)
	putF64(buf, offCPUUsage, rec.CPUUsagePercent)
	for i := 0; i < rec.Cores.n; i++ {
		putF64(buf, offCoresUsage+i*8, rec.Cores.vals[i])
	}

	putF64(buf, offRAMTotal, rec.RAMTotalGB)
	putF64(buf, offRAMUsed, rec.RAMUsedGB)
	putF64(buf, offRAMPercent, rec.RAMUsagePercent)
	putF64(buf, offDiskTotal, rec.DiskTotalGB)
	putF64(buf, offDiskUsed, rec.DiskUsedGB)
	putF64(buf, offDiskPercent, rec.DiskUsagePercent)

	order.PutUint64(buf[offUptime:], uint64(rec.UptimeSeconds))
	putText(buf, offOSName, LineLen, rec.OSName)
	putText(buf, offKernelVersion, LineLen, rec.KernelVersion)
	putText(buf, offGPUName, LineLen, rec.GPUName)
	putF64(buf, offGPUUsage, rec.GPUUsagePercent)
	putF64(buf, offGPUMemTotal, rec.GPUMemoryTotalGB)
	putF64(buf, offGPUMemUsed, rec.GPUMemoryUsedGB)

	order.PutUint32(buf[offProcessCount:], uint32(int32(rec.Processes.n)))
	for i := 0; i < rec.Processes.n; i++ {
		p := rec.Processes.entries[i]
		entry := buf[offProcesses+i*ProcessEntrySize:][:ProcessEntrySize]
		order.PutUint32(entry[procOffPID:], uint32(p.PID))
		putText(entry, procOffName, StrLen, p.Name)
		putF64(entry, procOffCPU, p.CPUPercent)
		putF64(entry, procOffRAM, p.RAMPercent)
		putText(entry, procOffUser, StrLen, p.User)
	}

	putF64(buf, offNetRx, rec.NetRxKbps)
	putF64(buf, offNetTx, rec.NetTxKbps)
	return nil
}

func putF64(buf []byte, off int, v float64) {
	order.PutUint64(buf[off:], math.Float64bits(v))
}

func putText(buf []byte, off, size int, s string) {
	if n := size - 1; len(s) > n {
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	copy(buf[off:], s)
}
