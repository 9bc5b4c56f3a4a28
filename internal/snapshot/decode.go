package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

var order = binary.LittleEndian

// Report describes how the decoder treated the count fields of a record.
type Report struct {
	ReportedCores     int32
	ReportedProcesses int32
}

// Clamped reports whether either count had to be clamped to the
// container's capacity or raised from a negative value.
func (r Report) Clamped() bool {
	return clampCount(r.ReportedCores, MaxCores) != int(r.ReportedCores) ||
		clampCount(r.ReportedProcesses, MaxProcesses) != int(r.ReportedProcesses)
}

// ShortRecordError is returned when the buffer cannot hold a full record.
type ShortRecordError struct {
	Got int
}

func (e *ShortRecordError) Error() string {
	return fmt.Sprintf("snapshot: record needs %d bytes, got %d", RecordSize, e.Got)
}

// Decode converts a raw provider record into a Record.
//
// Decoding never fails on field values: out-of-range numbers pass through,
// undecodable text becomes "", and counts are clamped to [0, capacity] so no
// entry past the fixed arrays is read. The only error is a buffer shorter
// than RecordSize. Bytes beyond RecordSize are ignored.
func Decode(raw []byte) (Record, Report, error) {
	if len(raw) < RecordSize {
		return Record{}, Report{}, &ShortRecordError{Got: len(raw)}
	}
	raw = raw[:RecordSize]

	rep := Report{
		ReportedCores:     int32(order.Uint32(raw[offCoreCount:])),
		ReportedProcesses: int32(order.Uint32(raw[offProcessCount:])),
	}

	rec := Record{
		CPUModel:         text(raw, offCPUModel, LineLen),
		CPUFreqMHz:       f64(raw, offCPUFreq),
		CPUUsagePercent:  f64(raw, offCPUUsage),
		RAMTotalGB:       f64(raw, offRAMTotal),
		RAMUsedGB:        f64(raw, offRAMUsed),
		RAMUsagePercent:  f64(raw, offRAMPercent),
		DiskTotalGB:      f64(raw, offDiskTotal),
		DiskUsedGB:       f64(raw, offDiskUsed),
		DiskUsagePercent: f64(raw, offDiskPercent),
		UptimeSeconds:    int64(order.Uint64(raw[offUptime:])),
		OSName:           text(raw, offOSName, LineLen),
		KernelVersion:    text(raw, offKernelVersion, LineLen),
		GPUName:          text(raw, offGPUName, LineLen),
		GPUUsagePercent:  f64(raw, offGPUUsage),
		GPUMemoryTotalGB: f64(raw, offGPUMemTotal),
		GPUMemoryUsedGB:  f64(raw, offGPUMemUsed),
		NetRxKbps:        f64(raw, offNetRx),
		NetTxKbps:        f64(raw, offNetTx),
	}

	cores := clampCount(rep.ReportedCores, MaxCores)
	for i := 0; i < cores; i++ {
		rec.Cores.vals[i] = f64(raw, offCoresUsage+i*8)
	}
	rec.Cores.n = cores

	procs := clampCount(rep.ReportedProcesses, MaxProcesses)
	for i := 0; i < procs; i++ {
		rec.Processes.entries[i] = decodeProcess(raw[offProcesses+i*ProcessEntrySize:][:ProcessEntrySize])
	}
	rec.Processes.n = procs

	return rec, rep, nil
}

func decodeProcess(raw []byte) ProcessEntry {
	return ProcessEntry{
		PID:        int32(order.Uint32(raw[procOffPID:])),
		Name:       text(raw, procOffName, StrLen),
		CPUPercent: f64(raw, procOffCPU),
		RAMPercent: f64(raw, procOffRAM),
		User:       text(raw, procOffUser, StrLen),
	}
}

func clampCount(n int32, limit int) int {
	if n < 0 {
		return 0
	}
	if int(n) > limit {
		return limit
	}
	return int(n)
}

func f64(raw []byte, off int) float64 {
	return math.Float64frombits(order.Uint64(raw[off:]))
}

// text reads a fixed-size C string field: bytes up to the first NUL, then
// surrounding whitespace trimmed. Invalid UTF-8 yields "".
func text(raw []byte, off, size int) string {
	field := raw[off : off+size]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if !utf8.Valid(field) {
		return ""
	}
	return strings.TrimSpace(string(field))
}
