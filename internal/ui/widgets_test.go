package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askpass/internal/config"
)

func TestCircleDotGeometry(t *testing.T) {
	cfg := config.Default().Dialog.Indicator
	v := &IndicatorView{cfg: &cfg, scale: 1}

	// Derived size: a fifth of the ring radius.
	dotR, orbit := v.circleDotGeometry(50)
	assert.InDelta(t, 10.0, dotR, 0.001)
	assert.Greater(t, orbit, 0.0)

	// indicator_width overrides the derived dot size.
	cfg.Circle.IndicatorWidth = 8
	dotR, _ = v.circleDotGeometry(50)
	assert.InDelta(t, 4.0, dotR, 0.001)

	// Many dots with a spacing angle shrink until the gap survives.
	cfg.Circle.IndicatorCount = 24
	cfg.Circle.SpacingAngle = 0.2
	tight, _ := v.circleDotGeometry(50)
	assert.Less(t, tight, 4.0)
}
