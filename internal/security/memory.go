// Package security provides memory hygiene helpers for secret data.
//
// This package implements:
// - Secure memory wiping (prevents passphrase recovery from memory)
// - Memory locking (prevents swapping of sensitive data)
//
// Go's garbage collector does not guarantee secure deallocation, so callers
// must wipe sensitive buffers before they leave scope. Backing storage for
// secrets should be preallocated once so the runtime never copies it during
// growth.
package security

import (
	"runtime"
	"unsafe"
)

// Wipe overwrites a byte slice with zeros.
// Uses volatile-style writes to prevent compiler optimization.
func Wipe(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := 0; i < len(data); i++ {
		ptr := unsafe.Add(unsafe.Pointer(&data[0]), i)
		*(*byte)(ptr) = 0
	}
	// Memory barrier to ensure writes complete
	runtime.KeepAlive(data)
}

// WipeRunes overwrites a rune slice with zeros.
func WipeRunes(data []rune) {
	if len(data) == 0 {
		return
	}
	for i := 0; i < len(data); i++ {
		ptr := unsafe.Add(unsafe.Pointer(&data[0]), uintptr(i)*unsafe.Sizeof(rune(0)))
		*(*rune)(ptr) = 0
	}
	runtime.KeepAlive(data)
}
