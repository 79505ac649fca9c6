package secret

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertRejectsUnprintable(t *testing.T) {
	b := NewBuffer(4)
	defer b.Destroy()

	assert.ErrorIs(t, b.Insert('\n'), ErrUnprintable)
	assert.ErrorIs(t, b.Insert('\x1b'), ErrUnprintable)
	assert.Equal(t, 0, b.Len())
	require.NoError(t, b.Insert('a'))

	// U+FFFD is a printable scalar; only failed decoding is filtered.
	require.NoError(t, b.Insert('�'))
	assert.Equal(t, 2, b.Len())
}

func TestPasteKeepsLiteralReplacementChar(t *testing.T) {
	b := NewBuffer(8)
	defer b.Destroy()

	n, submit := b.Paste("a�b\x80c")
	assert.False(t, submit)
	assert.Equal(t, 4, n, "invalid byte dropped, literal U+FFFD kept")
	assert.Equal(t, []rune{'a', '�', 'b', 'c'}, b.Runes())
}

func TestInsertCapacity(t *testing.T) {
	b := NewBuffer(2)
	defer b.Destroy()

	require.NoError(t, b.Insert('a'))
	require.NoError(t, b.Insert('b'))
	err := b.Insert('c')
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []rune("ab"), b.Runes())
}

func TestDeleteBackwardZeroesSlot(t *testing.T) {
	b := NewBuffer(8)
	defer b.Destroy()

	require.NoError(t, b.Insert('x'))
	require.NoError(t, b.Insert('y'))
	require.True(t, b.DeleteBackward())

	// Direct inspection of the backing storage: the removed slot must not
	// hold the old character.
	assert.Equal(t, rune(0), b.buf[1])
	assert.Equal(t, 1, b.Len())
	assert.False(t, func() bool {
		for _, r := range b.buf {
			if r == 'y' {
				return true
			}
		}
		return false
	}(), "removed character still recoverable from storage")
}

func TestClearZeroesStorage(t *testing.T) {
	b := NewBuffer(8)
	defer b.Destroy()

	for _, r := range "topsecret"[:8] {
		require.NoError(t, b.Insert(r))
	}
	b.Clear()
	assert.Equal(t, 0, b.Len())
	for i, r := range b.buf {
		assert.Equalf(t, rune(0), r, "slot %d not zeroed", i)
	}
}

func TestPasteFiltersControlAndSignalsSubmit(t *testing.T) {
	b := NewBuffer(32)
	defer b.Destroy()

	n, submit := b.Paste("ab\tc")
	assert.Equal(t, 3, n)
	assert.False(t, submit)
	assert.Equal(t, []rune("abc"), b.Runes())

	n, submit = b.Paste("de\nignored")
	assert.Equal(t, 2, n)
	assert.True(t, submit)
	assert.Equal(t, []rune("abcde"), b.Runes())
}

func TestPasteStopsAtCapacity(t *testing.T) {
	b := NewBuffer(3)
	defer b.Destroy()

	n, submit := b.Paste("abcdef")
	assert.Equal(t, 3, n)
	assert.False(t, submit)
}

func TestSnapshotForSubmit(t *testing.T) {
	b := NewBuffer(8)
	defer b.Destroy()

	require.NoError(t, b.Insert('a'))
	require.NoError(t, b.Insert('b'))

	pass, err := b.SnapshotForSubmit()
	require.NoError(t, err)
	defer pass.Destroy()

	var out bytes.Buffer
	n, err := pass.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "ab\n", out.String())

	// Buffer storage is zeroed post-snapshot.
	assert.Equal(t, 0, b.Len())
	for i, r := range b.buf {
		assert.Equalf(t, rune(0), r, "slot %d not zeroed", i)
	}

	// At most once per run.
	_, err = b.SnapshotForSubmit()
	assert.ErrorIs(t, err, ErrConsumed)
	assert.ErrorIs(t, b.Insert('x'), ErrConsumed)

	// And the emitted secret is written exactly once.
	_, err = pass.WriteTo(&out)
	assert.Error(t, err)
}

func TestSnapshotMultibyte(t *testing.T) {
	b := NewBuffer(8)
	defer b.Destroy()

	for _, r := range "päß€" {
		require.NoError(t, b.Insert(r))
	}
	pass, err := b.SnapshotForSubmit()
	require.NoError(t, err)
	defer pass.Destroy()

	var out bytes.Buffer
	_, err = pass.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "päß€\n", out.String())
}

func TestPassphraseDestroyWipes(t *testing.T) {
	b := NewBuffer(4)
	defer b.Destroy()
	require.NoError(t, b.Insert('z'))

	pass, err := b.SnapshotForSubmit()
	require.NoError(t, err)
	storage := pass.storage
	pass.Destroy()
	for i, c := range storage {
		assert.Equalf(t, byte(0), c, "byte %d not wiped", i)
	}
}

// Replaying any sequence of insert/delete/clear operations leaves the length
// equal to the net effect, bounded by [0, max], and leaves no removed
// character recoverable from storage.
func TestBufferOperationProperties(t *testing.T) {
	const max = 16

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	// 0 = insert, 1 = delete, 2 = clear
	opsGen := gen.SliceOf(gen.IntRange(0, 2))

	properties.Property("length tracks net operations", prop.ForAll(
		func(ops []int) bool {
			b := NewBuffer(max)
			defer b.Destroy()
			want := 0
			for _, op := range ops {
				switch op {
				case 0:
					if err := b.Insert('s'); err == nil {
						want++
					}
				case 1:
					if b.DeleteBackward() {
						want--
					}
				case 2:
					b.Clear()
					want = 0
				}
				if want < 0 || want > max {
					return false
				}
			}
			return b.Len() == want
		},
		opsGen,
	))

	properties.Property("no character survives past the live region", prop.ForAll(
		func(ops []int) bool {
			b := NewBuffer(max)
			defer b.Destroy()
			for _, op := range ops {
				switch op {
				case 0:
					_ = b.Insert('s')
				case 1:
					b.DeleteBackward()
				case 2:
					b.Clear()
				}
			}
			for _, r := range b.buf[b.n:] {
				if r != 0 {
					return false
				}
			}
			return true
		},
		opsGen,
	))

	properties.TestingRun(t)
}
