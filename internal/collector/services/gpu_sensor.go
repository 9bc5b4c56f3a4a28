package services

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type GPUResult struct {
	Available  bool
	Name       string
	Usage      float64
	MemUsedGB  float64
	MemTotalGB float64
}

// GPUSensor queries the first NVIDIA GPU through nvidia-smi. A host without
// the tool or a GPU yields a zero result, not an error.
type GPUSensor struct {
	timeout time.Duration
	run     func(ctx context.Context, name string, args ...string) (string, error)
}

func NewGPUSensor(timeout time.Duration) *GPUSensor {
	return &GPUSensor{timeout: timeout, run: runCmd}
}

func (s *GPUSensor) Name() string {
	return "GPU"
}

func (s *GPUSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *GPUSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *GPUSensor) Collect(ctx context.Context) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.run(ctx, "nvidia-smi",
		"--query-gpu=name,utilization.gpu,memory.used,memory.total",
		"--format=csv,noheader,nounits")
	if err != nil {
		return GPUResult{}, nil
	}
	return ParseNvidiaSMI(out)
}

// ParseNvidiaSMI reads the first line of
// "nvidia-smi --query-gpu=name,utilization.gpu,memory.used,memory.total
// --format=csv,noheader,nounits". Memory is reported in MiB. "[N/A]" fields
// read as zero.
func ParseNvidiaSMI(output string) (GPUResult, error) {
	sc := bufio.NewScanner(strings.NewReader(output))
	if !sc.Scan() {
		return GPUResult{}, nil
	}
	line := strings.TrimSpace(sc.Text())
	lower := strings.ToLower(line)
	if line == "" || strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "not found") || strings.Contains(lower, "failed") {
		return GPUResult{}, nil
	}

	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return GPUResult{}, fmt.Errorf("nvidia-smi output has insufficient fields: expected 4, got %d", len(fields))
	}

	res := GPUResult{Available: true, Name: strings.TrimSpace(fields[0])}
	vals := make([]float64, 3)
	for i, f := range fields[1:4] {
		f = strings.TrimSpace(f)
		if f == "" || f == "[N/A]" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return GPUResult{}, fmt.Errorf("failed to parse nvidia-smi field %q: %w", f, err)
		}
		vals[i] = v
	}
	res.Usage = vals[0]
	res.MemUsedGB = vals[1] / 1024
	res.MemTotalGB = vals[2] / 1024
	return res, nil
}

func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return string(out), err
}
