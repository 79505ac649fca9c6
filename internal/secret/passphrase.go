package secret

import (
	"errors"
	"io"

	"askpass/internal/security"
)

// Passphrase is the accepted secret, UTF-8 encoded with a trailing newline,
// ready to be written to standard output exactly once.
type Passphrase struct {
	data    []byte
	storage []byte
	locked  bool
	written bool
}

// WriteTo writes the secret and its newline terminator in a single call.
// It can succeed at most once.
func (p *Passphrase) WriteTo(w io.Writer) (int64, error) {
	if p.written || p.data == nil {
		return 0, errors.New("passphrase already emitted")
	}
	p.written = true
	n, err := w.Write(p.data)
	return int64(n), err
}

// Destroy zeroes the secret's storage. Safe to call multiple times and on
// the error path.
func (p *Passphrase) Destroy() {
	if p.storage == nil {
		return
	}
	security.Wipe(p.storage)
	if p.locked {
		_ = security.UnlockBytes(p.storage)
		p.locked = false
	}
	p.data = nil
	p.storage = nil
}
