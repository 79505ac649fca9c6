//go:build !unix

package security

// Memory locking is not supported on this platform; the wipe guarantees
// still hold.

func LockBytes(data []byte) error   { return nil }
func UnlockBytes(data []byte) error { return nil }
func LockRunes(data []rune) error   { return nil }
func UnlockRunes(data []rune) error { return nil }
