package security

import "testing"

func TestWipe(t *testing.T) {
	data := []byte("hunter2")
	Wipe(data)
	for i, b := range data {
		if b != 0 {
			t.Errorf("byte %d not wiped: %#x", i, b)
		}
	}
}

func TestWipeEmpty(t *testing.T) {
	Wipe(nil)
	Wipe([]byte{})
	WipeRunes(nil)
}

func TestWipeRunes(t *testing.T) {
	data := []rune("pässwörd")
	WipeRunes(data)
	for i, r := range data {
		if r != 0 {
			t.Errorf("rune %d not wiped: %#x", i, r)
		}
	}
}

func TestLockUnlock(t *testing.T) {
	// mlock may fail under RLIMIT_MEMLOCK; only verify the calls are usable.
	data := make([]byte, 64)
	if err := LockBytes(data); err == nil {
		if err := UnlockBytes(data); err != nil {
			t.Errorf("unlock after successful lock: %v", err)
		}
	}
}
