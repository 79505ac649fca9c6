package indicator

import (
	"math/rand"
	"strings"
	"time"
)

// StringsMode selects the message source of the Strings variant.
type StringsMode int

const (
	ModeAsterisk StringsMode = iota
	ModeDisco
	ModeCustom
)

// Dancer glyphs for the disco mode. The first two alternate on ordinary
// edits; the third marks deletes when ThreeStates is enabled.
var discoStates = []string{
	"┏(･o･)┛",
	"┗(･o･)┓",
	"┏(･o･)┓",
}

// Strings renders a short status message chosen from one of three sub-modes.
// Messages depend only on edit count and classification.
type Strings struct {
	Mode StringsMode

	// Asterisk mode.
	Glyph    string
	MinCount int
	MaxCount int

	// Disco mode.
	ThreeStates bool

	// Custom mode. Messages[0] is the dedicated "pasted" message.
	Messages  []string
	Randomize bool

	rng     *rand.Rand
	message string
	length  int
	focused bool
}

// NewAsterisk returns a strings indicator repeating glyph between minCount
// and maxCount times as the passphrase grows.
func NewAsterisk(glyph string, minCount, maxCount int) *Strings {
	if glyph == "" {
		glyph = "*"
	}
	if minCount < 1 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	s := &Strings{Mode: ModeAsterisk, Glyph: glyph, MinCount: minCount, MaxCount: maxCount}
	s.refresh(EditInsert)
	return s
}

// NewDisco returns a strings indicator cycling dancer glyphs per edit.
func NewDisco(minCount, maxCount int, threeStates bool, rng *rand.Rand) *Strings {
	if minCount < 1 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	s := &Strings{
		Mode:        ModeDisco,
		MinCount:    minCount,
		MaxCount:    maxCount,
		ThreeStates: threeStates,
		rng:         ensureRNG(rng),
	}
	s.refresh(EditInsert)
	return s
}

// NewCustom returns a strings indicator over author-supplied messages.
// messages[0] is shown for pastes; the remainder are picked per edit, either
// randomized or cycling.
func NewCustom(messages []string, randomize bool, rng *rand.Rand) *Strings {
	s := &Strings{
		Mode:      ModeCustom,
		Messages:  messages,
		Randomize: randomize,
		rng:       ensureRNG(rng),
	}
	s.refresh(EditInsert)
	return s
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// DiscoStates returns the dancer glyph set.
func DiscoStates() []string {
	return discoStates
}

// Message returns the text to render.
func (s *Strings) Message() string { return s.message }

// Focused reports keyboard focus for border styling.
func (s *Strings) Focused() bool { return s.focused }

func (s *Strings) Edit(kind EventKind, length int) {
	s.length = length
	s.refresh(kind)
}

func (s *Strings) refresh(kind EventKind) {
	switch s.Mode {
	case ModeAsterisk:
		s.message = strings.Repeat(s.Glyph, clamp(s.length, s.MinCount, s.MaxCount))
	case ModeDisco:
		// The third state marks deletes only; inserts always pick
		// randomly between the two dancers.
		var glyph string
		if s.ThreeStates && kind == EditDelete {
			glyph = discoStates[2]
		} else {
			glyph = discoStates[s.rng.Intn(2)]
		}
		s.message = strings.Repeat(glyph, clamp(s.length, s.MinCount, s.MaxCount))
	case ModeCustom:
		if len(s.Messages) == 0 {
			s.message = ""
			return
		}
		if kind == EditPaste {
			s.message = s.Messages[0]
			return
		}
		rest := s.Messages[1:]
		if len(rest) == 0 {
			s.message = s.Messages[0]
			return
		}
		if s.Randomize {
			s.message = rest[s.rng.Intn(len(rest))]
		} else {
			s.message = rest[s.length%len(rest)]
		}
	}
}

func (s *Strings) SetFocused(focused bool, now time.Time) { s.focused = focused }

// Tick is a no-op: messages change only on edits.
func (s *Strings) Tick(now time.Time) bool { return false }

func (s *Strings) NextTick(now time.Time) (time.Time, bool) { return time.Time{}, false }
