//go:build darwin || linux

package provider

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"hostdash/internal/snapshot"
)

const librarySymbol = "get_system_metrics"

// Library calls get_system_metrics from a shared object. The function
// writes one SystemMetrics struct through the pointer it is given.
type Library struct {
	mu     sync.Mutex
	handle uintptr
	fill   func(*byte)
	closed bool
}

// OpenLibrary loads the shared object at path and resolves its metrics
// symbol.
func OpenLibrary(path string) (Provider, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	if _, err := purego.Dlsym(handle, librarySymbol); err != nil {
		_ = purego.Dlclose(handle)
		return nil, fmt.Errorf("resolve %s in %s: %w", librarySymbol, path, err)
	}

	lib := &Library{handle: handle}
	purego.RegisterLibFunc(&lib.fill, handle, librarySymbol)
	return lib, nil
}

func (l *Library) Fill(buf []byte) error {
	if len(buf) < snapshot.RecordSize {
		return &snapshot.ShortRecordError{Got: len(buf)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return fmt.Errorf("library provider is closed")
	}
	l.fill((*byte)(unsafe.Pointer(&buf[0])))
	return nil
}

func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return purego.Dlclose(l.handle)
}
