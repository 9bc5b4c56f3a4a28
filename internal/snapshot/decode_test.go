package snapshot

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutSize(t *testing.T) {
	assert.Equal(t, 536, ProcessEntrySize)
	assert.Equal(t, 18768, RecordSize)
	assert.Equal(t, 2672, offProcesses)
	assert.Equal(t, 18752, offNetRx)
}

func TestDecodeShortBuffer(t *testing.T) {
	_, _, err := Decode(make([]byte, RecordSize-1))
	require.Error(t, err)

	var short *ShortRecordError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, RecordSize-1, short.Got)
}

func TestDecodeZeroRecord(t *testing.T) {
	rec, rep, err := Decode(make([]byte, RecordSize))
	require.NoError(t, err)

	assert.Equal(t, Record{}, rec)
	assert.False(t, rep.Clamped())
	assert.Equal(t, 0, rec.CoreCount())
	assert.Equal(t, 0, rec.ProcessCount())
}

func TestDecodeRoundTrip(t *testing.T) {
	in := Record{
		CPUModel:         "AMD Ryzen 7 5800X 8-Core Processor",
		CPUFreqMHz:       3800,
		CPUUsagePercent:  12.5,
		Cores:            NewCoreUsage(10, 20, 30, 40),
		RAMTotalGB:       32,
		RAMUsedGB:        9.75,
		RAMUsagePercent:  30.4,
		DiskTotalGB:      512,
		DiskUsedGB:       200,
		DiskUsagePercent: 39.1,
		UptimeSeconds:    86400,
		OSName:           "Ubuntu 24.04 LTS",
		KernelVersion:    "6.8.0-45-generic",
		GPUName:          "NVIDIA GeForce RTX 3080",
		GPUUsagePercent:  45,
		GPUMemoryTotalGB: 10,
		GPUMemoryUsedGB:  2,
		Processes: NewProcessList(
			ProcessEntry{PID: 1, Name: "systemd", CPUPercent: 0.1, RAMPercent: 0.2, User: "root"},
			ProcessEntry{PID: 4242, Name: "firefox", CPUPercent: 22, RAMPercent: 7.5, User: "alice"},
		),
		NetRxKbps: 120.5,
		NetTxKbps: 4.25,
	}

	out, rep, err := Decode(Encode(in))
	require.NoError(t, err)
	assert.False(t, rep.Clamped())
	assert.Equal(t, in, out)
	assert.Equal(t, []float64{10, 20, 30, 40}, out.Cores.Values())
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	raw := append(Encode(Record{CPUModel: "x"}), 0xff, 0xff, 0xff)
	rec, _, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", rec.CPUModel)
}

func TestDecodeClampsProcessCount(t *testing.T) {
	entries := make([]ProcessEntry, MaxProcesses)
	for i := range entries {
		entries[i] = ProcessEntry{PID: int32(i + 1), Name: "p"}
	}
	raw := Encode(Record{Processes: NewProcessList(entries...)})
	binary.LittleEndian.PutUint32(raw[offProcessCount:], 45)

	// The buffer ends right after the fixed arrays, so reading a 31st entry
	// would run off the end.
	rec, rep, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, MaxProcesses, rec.ProcessCount())
	assert.Equal(t, int32(45), rep.ReportedProcesses)
	assert.True(t, rep.Clamped())
	assert.Equal(t, int32(30), rec.Processes.At(29).PID)
}

func TestDecodeClampsCoreCount(t *testing.T) {
	tests := []struct {
		name     string
		reported int32
		want     int
		clamped  bool
	}{
		{"within capacity", 8, 8, false},
		{"at capacity", MaxCores, MaxCores, false},
		{"above capacity", 200, MaxCores, true},
		{"negative", -3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, RecordSize)
			binary.LittleEndian.PutUint32(raw[offCoreCount:], uint32(tt.reported))

			rec, rep, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.CoreCount())
			assert.Equal(t, tt.clamped, rep.Clamped())
		})
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name  string
		field []byte
		want  string
	}{
		{"nul padded", []byte("bash\x00\x00\x00"), "bash"},
		{"surrounding whitespace", []byte("  Intel(R) Core(TM) i7 \n\x00"), "Intel(R) Core(TM) i7"},
		{"garbage after nul", []byte("gcc\x00\xff\xfe"), "gcc"},
		{"invalid utf-8", []byte{'a', 0xff, 'b', 0}, ""},
		{"utf-8", []byte("résumé\x00"), "résumé"},
		{"empty", []byte{0, 0, 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, RecordSize)
			copy(raw[offGPUName:], tt.field)

			rec, _, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.GPUName)
		})
	}
}

func TestDecodeFullWidthTextWithoutNul(t *testing.T) {
	raw := make([]byte, RecordSize)
	copy(raw[offOSName:], strings.Repeat("a", LineLen))

	rec, _, err := Decode(raw)
	require.NoError(t, err)
	assert.Len(t, rec.OSName, LineLen)
	assert.Equal(t, "", rec.KernelVersion)
}

func TestDecodePassesOutOfRangeValues(t *testing.T) {
	in := Record{
		CPUUsagePercent: 140,
		RAMUsagePercent: -5,
		UptimeSeconds:   -10,
		NetRxKbps:       math.Inf(1),
	}

	out, _, err := Decode(Encode(in))
	require.NoError(t, err)
	assert.Equal(t, 140.0, out.CPUUsagePercent)
	assert.Equal(t, -5.0, out.RAMUsagePercent)
	assert.Equal(t, int64(-10), out.UptimeSeconds)
	assert.True(t, math.IsInf(out.NetRxKbps, 1))
}

func TestEncodeTruncatesOnRuneBoundary(t *testing.T) {
	name := strings.Repeat("a", StrLen-2) + "é" // 'é' straddles the last usable byte
	raw := Encode(Record{Processes: NewProcessList(ProcessEntry{Name: name})})

	rec, _, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", StrLen-2), rec.Processes.At(0).Name)
}

func TestEncodeIntoShortBuffer(t *testing.T) {
	err := EncodeInto(Record{}, make([]byte, 10))
	assert.Error(t, err)
}

func TestFixedContainers(t *testing.T) {
	cores := NewCoreUsage(make([]float64, MaxCores+10)...)
	assert.Equal(t, MaxCores, cores.Len())

	procs := NewProcessList(ProcessEntry{PID: 7})
	assert.Equal(t, int32(7), procs.At(0).PID)
	assert.Panics(t, func() { procs.At(1) })
	assert.Panics(t, func() { cores.At(-1) })

	entries := procs.Entries()
	entries[0].PID = 99
	assert.Equal(t, int32(7), procs.At(0).PID, "Entries must return a copy")
}
