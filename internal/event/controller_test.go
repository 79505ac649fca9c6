package event

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askpass/internal/indicator"
	"askpass/internal/secret"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(t *testing.T, max int, idle time.Duration) *Controller {
	t.Helper()
	buf := secret.NewBuffer(max)
	t.Cleanup(buf.Destroy)
	return NewController(buf, indicator.NewClassic(3, 3), idle, testLogger())
}

func TestSubmitFlow(t *testing.T) {
	c := newController(t, 16, 0)
	now := time.Unix(0, 0)
	c.Start(now)

	c.KeyInsert('a', now)
	c.KeyInsert('b', now)
	c.Submit(now)

	assert.False(t, c.Running())
	res := c.Result()
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	require.NotNil(t, res.Secret)
	defer res.Secret.Destroy()

	var out bytes.Buffer
	_, err := res.Secret.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out.String())
}

func TestEmptySubmitIsAccepted(t *testing.T) {
	c := newController(t, 16, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	c.Submit(now)

	res := c.Result()
	assert.Equal(t, OutcomeAccepted, res.Outcome)
	require.NotNil(t, res.Secret)
	defer res.Secret.Destroy()

	var out bytes.Buffer
	_, err := res.Secret.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
}

func TestCancelFlow(t *testing.T) {
	c := newController(t, 16, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	c.KeyInsert('x', now)
	c.Cancel(now)

	assert.Equal(t, StateCancelling, c.State())
	res := c.Result()
	assert.Equal(t, OutcomeCancelled, res.Outcome)
	assert.Nil(t, res.Secret)

	// Input after cancellation is ignored.
	c.KeyInsert('y', now)
	c.Submit(now)
	assert.Equal(t, OutcomeCancelled, c.Result().Outcome)
}

func TestCapacityAbsorbed(t *testing.T) {
	c := newController(t, 2, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	c.KeyInsert('a', now)
	c.KeyInsert('b', now)
	c.KeyInsert('c', now)

	assert.True(t, c.Running(), "overflow does not end the dialog")
	c.Submit(now)

	res := c.Result()
	require.Equal(t, OutcomeAccepted, res.Outcome)
	defer res.Secret.Destroy()
	var out bytes.Buffer
	_, err := res.Secret.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out.String())
}

func TestPasteWithNewlineSubmits(t *testing.T) {
	c := newController(t, 32, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	c.Paste("hunter2\nrest ignored", now)

	res := c.Result()
	require.Equal(t, OutcomeAccepted, res.Outcome)
	defer res.Secret.Destroy()
	var out bytes.Buffer
	_, err := res.Secret.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2\n", out.String())
}

func TestIdleTimeout(t *testing.T) {
	c := newController(t, 16, 5*time.Second)
	now := time.Unix(100, 0)
	c.Start(now)

	deadline, ok := c.Deadline()
	require.True(t, ok)
	assert.Equal(t, now.Add(5*time.Second), deadline)

	// A check scheduled before the deadline never fires.
	assert.False(t, c.CheckIdle(now.Add(4*time.Second), c.IdleGen()))

	assert.True(t, c.CheckIdle(now.Add(5*time.Second), c.IdleGen()))
	assert.Equal(t, StateTimedOut, c.State())
	assert.Equal(t, OutcomeTimedOut, c.Result().Outcome)
}

func TestActivityRearmsIdleTimer(t *testing.T) {
	c := newController(t, 16, 5*time.Second)
	now := time.Unix(100, 0)
	c.Start(now)
	gen := c.IdleGen()

	// Activity between scheduling and firing invalidates the old check.
	c.KeyInsert('a', now.Add(4*time.Second))
	assert.False(t, c.CheckIdle(now.Add(5*time.Second), gen))
	assert.True(t, c.Running())

	deadline, ok := c.Deadline()
	require.True(t, ok)
	assert.Equal(t, now.Add(9*time.Second), deadline)
}

func TestIdleDisabled(t *testing.T) {
	c := newController(t, 16, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	_, ok := c.Deadline()
	assert.False(t, ok)
	assert.False(t, c.CheckIdle(now.Add(time.Hour), c.IdleGen()))
}

func TestClearWipesEntry(t *testing.T) {
	c := newController(t, 16, 0)
	now := time.Unix(0, 0)
	c.Start(now)
	c.KeyInsert('a', now)
	c.KeyInsert('b', now)
	c.Clear(now)
	c.Submit(now)

	res := c.Result()
	require.Equal(t, OutcomeAccepted, res.Outcome)
	defer res.Secret.Destroy()
	var out bytes.Buffer
	_, err := res.Secret.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
}
