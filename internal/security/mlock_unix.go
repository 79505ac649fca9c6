//go:build unix

package security

import "golang.org/x/sys/unix"

// LockBytes attempts to lock the slice's pages into RAM so the secret cannot
// be written to swap. Failure is non-fatal: unprivileged processes commonly
// exceed RLIMIT_MEMLOCK.
func LockBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Mlock(data)
}

// UnlockBytes releases a lock acquired by LockBytes.
func UnlockBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munlock(data)
}

// LockRunes locks the backing pages of a rune slice.
func LockRunes(data []rune) error {
	return LockBytes(runeBytes(data))
}

// UnlockRunes releases a lock acquired by LockRunes.
func UnlockRunes(data []rune) error {
	return UnlockBytes(runeBytes(data))
}
