// Package history keeps the fixed-size rolling windows that feed the graphs.
package history

// DefaultSize is the number of samples retained per series.
const DefaultSize = 60

// Buffer is a fixed-capacity ring of float64 samples. It starts full of
// zeros, so Values always returns exactly Cap values, oldest first.
// A Buffer is not safe for concurrent use; the scheduler goroutine owns it.
type Buffer struct {
	data  []float64
	head  int
	count int
}

// New creates a buffer with the given capacity. A capacity <= 0 uses
// DefaultSize.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultSize
	}
	return &Buffer{data: make([]float64, capacity)}
}

// Append pushes v as the newest sample, evicting the oldest.
func (b *Buffer) Append(v float64) {
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)
	if b.count < len(b.data) {
		b.count++
	}
}

// Values returns a copy of the window in chronological order (oldest first).
func (b *Buffer) Values() []float64 {
	out := make([]float64, len(b.data))
	// head is the next write slot, which is also the oldest value.
	n := copy(out, b.data[b.head:])
	copy(out[n:], b.data[:b.head])
	return out
}

// Latest returns the most recently appended value, or 0 if nothing has
// been appended.
func (b *Buffer) Latest() float64 {
	return b.data[(b.head-1+len(b.data))%len(b.data)]
}

// Cap returns the window size.
func (b *Buffer) Cap() int { return len(b.data) }

// Count returns how many samples have been appended, saturating at Cap.
func (b *Buffer) Count() int { return b.count }

// ScaleHint returns a y-axis upper bound for graphs that share an axis:
// 1.2 times the largest value across all buffers, never below 1.0.
func ScaleHint(buffers ...*Buffer) float64 {
	peak := 0.0
	for _, b := range buffers {
		if b == nil {
			continue
		}
		for _, v := range b.data {
			if v > peak {
				peak = v
			}
		}
	}
	return max(1.0, peak*1.2)
}
