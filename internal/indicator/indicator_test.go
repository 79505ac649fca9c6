package indicator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassicForWidth(t *testing.T) {
	c := NewClassic(3, 6)

	c.ForWidth(1000, 20, 4)
	assert.Equal(t, 6, c.Count(), "saturates at max")

	c.ForWidth(10, 20, 4)
	assert.Equal(t, 3, c.Count(), "saturates at min")

	c.ForWidth(4*20+3*4, 20, 4)
	assert.Equal(t, 4, c.Count())
}

func TestClassicLitWalks(t *testing.T) {
	c := NewClassic(3, 3)
	assert.False(t, c.Lit(0), "empty buffer lights nothing")

	c.Edit(EditInsert, 1)
	assert.True(t, c.Lit(0))
	c.Edit(EditInsert, 2)
	assert.True(t, c.Lit(1))
	assert.False(t, c.Lit(0))
	c.Edit(EditInsert, 4)
	assert.True(t, c.Lit(0), "wraps around")
	c.Edit(EditDelete, 3)
	assert.True(t, c.Lit(2))
}

func TestCircleSpeedGainAndDecay(t *testing.T) {
	c := NewCircle(true, 0.10, 1.05, true, false)
	now := time.Unix(0, 0)
	c.SetFocused(true, now)

	start := c.Speed()
	for i := 1; i <= 30; i++ {
		c.Edit(EditInsert, i)
	}
	assert.Greater(t, c.Speed(), start)
	assert.LessOrEqual(t, c.Speed(), c.Max, "speed is bounded")

	// Ticks decay the speed back toward the start value.
	peak := c.Speed()
	for i := 0; i < 200; i++ {
		now = now.Add(spinInterval)
		c.Tick(now)
	}
	assert.Less(t, c.Speed(), peak)
	assert.InDelta(t, c.Start, c.Speed(), 0.01)
}

func TestCircleRotationAdvances(t *testing.T) {
	c := NewCircle(true, 0.10, 1.05, true, false)
	now := time.Unix(0, 0)
	c.SetFocused(true, now)

	a0 := c.Angle()
	c.Edit(EditInsert, 1)
	assert.NotEqual(t, a0, c.Angle())

	a1 := c.Angle()
	c.Edit(EditDelete, 0)
	assert.Less(t, c.Angle(), a1, "delete rotates backward")
}

func TestCircleLightUp(t *testing.T) {
	c := NewCircle(false, 0.10, 1.05, true, false)
	assert.False(t, c.Lit())
	c.Edit(EditInsert, 1)
	assert.True(t, c.Lit())
	c.Edit(EditDelete, 0)
	assert.False(t, c.Lit())
}

func TestCircleBlinkPhases(t *testing.T) {
	c := NewCircle(false, 0.10, 1.05, false, true)
	now := time.Unix(0, 0)
	c.SetFocused(true, now)
	assert.True(t, c.BlinkOn())

	// No toggle before the on-phase elapses.
	assert.False(t, c.Tick(now.Add(blinkOnPhase-time.Millisecond)))
	assert.True(t, c.BlinkOn())

	assert.True(t, c.Tick(now.Add(blinkOnPhase)))
	assert.False(t, c.BlinkOn())

	next, ok := c.NextTick(now.Add(blinkOnPhase))
	assert.True(t, ok)
	assert.Equal(t, now.Add(blinkOnPhase+blinkOffPhase), next)
}

func TestCircleIdleWhenUnfocused(t *testing.T) {
	c := NewCircle(true, 0.10, 1.05, true, true)
	now := time.Unix(0, 0)
	c.SetFocused(false, now)
	assert.False(t, c.Tick(now.Add(time.Second)))
	_, ok := c.NextTick(now)
	assert.False(t, ok, "unfocused circle schedules no ticks")
}

func TestAsteriskClamps(t *testing.T) {
	s := NewAsterisk("*", 3, 5)
	assert.Equal(t, "***", s.Message(), "empty buffer shows min count")

	s.Edit(EditInsert, 4)
	assert.Equal(t, "****", s.Message())

	s.Edit(EditInsert, 9)
	assert.Equal(t, "*****", s.Message(), "saturates at max")
}

func TestCustomPastedMessage(t *testing.T) {
	msgs := []string{"pasted!", "one", "two"}
	s := NewCustom(msgs, false, rand.New(rand.NewSource(1)))

	s.Edit(EditPaste, 5)
	assert.Equal(t, "pasted!", s.Message())

	s.Edit(EditInsert, 6)
	assert.Contains(t, msgs[1:], s.Message())
}

func TestDiscoThreeStates(t *testing.T) {
	s := NewDisco(1, 1, true, rand.New(rand.NewSource(1)))
	s.Edit(EditDelete, 0)
	assert.Equal(t, discoStates[2], s.Message())

	// Inserts vary randomly between the two dancers; the third state is
	// reserved for deletes.
	seen := make(map[string]bool)
	for i := 1; i <= 200; i++ {
		s.Edit(EditInsert, i)
		seen[s.Message()] = true
	}
	assert.True(t, seen[discoStates[0]])
	assert.True(t, seen[discoStates[1]])
	assert.False(t, seen[discoStates[2]])
}

// Indicator state depends only on edit count and classification: replaying
// the same edit sequence yields identical state regardless of what was typed
// (no character data can even reach the model).
func TestStateDependsOnlyOnEditSequence(t *testing.T) {
	seq := []struct {
		kind EventKind
		len  int
	}{
		{EditInsert, 1}, {EditInsert, 2}, {EditDelete, 1},
		{EditInsert, 2}, {EditPaste, 7},
	}

	a := NewCircle(true, 0.10, 1.05, true, false)
	b := NewCircle(true, 0.10, 1.05, true, false)
	now := time.Unix(0, 0)
	a.SetFocused(true, now)
	b.SetFocused(true, now)
	for _, e := range seq {
		a.Edit(e.kind, e.len)
		b.Edit(e.kind, e.len)
	}
	assert.Equal(t, a.Angle(), b.Angle())
	assert.Equal(t, a.Speed(), b.Speed())
	assert.Equal(t, a.Lit(), b.Lit())

	ca := NewClassic(3, 3)
	cb := NewClassic(3, 3)
	for _, e := range seq {
		ca.Edit(e.kind, e.len)
		cb.Edit(e.kind, e.len)
	}
	for i := 0; i < 3; i++ {
		assert.Equal(t, ca.Lit(i), cb.Lit(i))
	}
}
