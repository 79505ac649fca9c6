// Package secret implements the secure input buffer that accumulates the
// passphrase being typed.
//
// The backing storage is preallocated at the configured maximum length and
// never reallocated, so no stale copy of entered characters can survive a
// slice growth. Every removal, truncation, and the final snapshot zero the
// slots they vacate before returning.
package secret

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"askpass/internal/security"
)

// ErrCapacityExceeded is returned by Insert once the buffer holds the
// configured maximum number of characters. The condition is recoverable:
// callers reject the keystroke and continue.
var ErrCapacityExceeded = errors.New("passphrase buffer full")

// ErrConsumed is returned when the buffer is used after SnapshotForSubmit.
var ErrConsumed = errors.New("passphrase buffer already consumed")

// ErrUnprintable is returned by Insert for control characters.
// Recoverable: the keystroke is dropped.
var ErrUnprintable = errors.New("unprintable character")

// Buffer accumulates passphrase characters under strict erasure guarantees.
// It is owned by a single goroutine; no locking is performed.
type Buffer struct {
	buf      []rune
	n        int
	locked   bool
	consumed bool
}

// NewBuffer creates a buffer holding at most max characters. The backing
// memory is locked against swapping when the platform and limits allow.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = 1
	}
	b := &Buffer{buf: make([]rune, max)}
	if err := security.LockRunes(b.buf); err == nil {
		b.locked = true
	}
	return b
}

// Len returns the number of characters currently held.
func (b *Buffer) Len() int { return b.n }

// Insert appends one character. It fails with ErrCapacityExceeded when the
// buffer is full and ErrConsumed after SnapshotForSubmit.
func (b *Buffer) Insert(r rune) error {
	if b.consumed {
		return ErrConsumed
	}
	if unicode.IsControl(r) {
		return ErrUnprintable
	}
	if b.n >= len(b.buf) {
		return ErrCapacityExceeded
	}
	b.buf[b.n] = r
	b.n++
	return nil
}

// DeleteBackward removes the last character, zeroing its slot before
// returning. It reports whether a character was removed.
func (b *Buffer) DeleteBackward() bool {
	if b.consumed || b.n == 0 {
		return false
	}
	b.n--
	security.WipeRunes(b.buf[b.n : b.n+1])
	return true
}

// Clear removes all characters and zeroes their slots.
func (b *Buffer) Clear() {
	security.WipeRunes(b.buf[:b.n])
	b.n = 0
}

// Paste inserts the printable characters of s one by one. Control characters
// and bytes that fail to decode are filtered out; a literal U+FFFD in the
// source is kept. A newline signals that the caller should submit and
// everything after it is discarded. It returns the number of characters
// inserted and the submit signal.
func (b *Buffer) Paste(s string) (inserted int, submit bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\n' || r == '\r' {
			submit = true
			break
		}
		if r == utf8.RuneError && size == 1 {
			continue
		}
		switch err := b.Insert(r); {
		case errors.Is(err, ErrUnprintable):
			continue
		case err != nil:
			return inserted, submit
		}
		inserted++
	}
	return inserted, submit
}

// SnapshotForSubmit transfers ownership of the content to the caller and
// leaves the buffer's own storage zeroed. It is the single point where secret
// data crosses the package boundary and may be called at most once.
func (b *Buffer) SnapshotForSubmit() (*Passphrase, error) {
	if b.consumed {
		return nil, ErrConsumed
	}
	b.consumed = true

	// A buffer of four bytes per rune is large enough for any encoding;
	// one more byte holds the trailing newline written to stdout.
	out := make([]byte, 4*b.n+1)
	locked := security.LockBytes(out) == nil
	n := 0
	for _, r := range b.buf[:b.n] {
		n += utf8.EncodeRune(out[n:], r)
	}
	out[n] = '\n'
	n++

	security.WipeRunes(b.buf[:b.n])
	b.n = 0

	return &Passphrase{data: out[:n], storage: out, locked: locked}, nil
}

// Destroy zeroes and unlocks the backing storage. The buffer must not be
// used afterwards.
func (b *Buffer) Destroy() {
	security.WipeRunes(b.buf)
	if b.locked {
		_ = security.UnlockRunes(b.buf)
		b.locked = false
	}
	b.n = 0
	b.consumed = true
}

// Runes exposes the current content for transient rendering (the plaintext
// toggle). The returned slice aliases the secure storage: callers must not
// retain it or copy it into long-lived state.
func (b *Buffer) Runes() []rune {
	if b.consumed {
		return nil
	}
	return b.buf[:b.n]
}
