//go:build !darwin && !linux

package provider

import (
	"fmt"
	"runtime"
)

func OpenLibrary(path string) (Provider, error) {
	return nil, fmt.Errorf("library provider is not supported on %s", runtime.GOOS)
}
