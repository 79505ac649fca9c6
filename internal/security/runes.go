package security

import "unsafe"

// runeBytes reinterprets a rune slice as its backing bytes.
func runeBytes(data []rune) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(rune(0))))
}
