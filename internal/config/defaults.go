package config

// Default returns the built-in configuration. The palette follows the Arc
// theme the reference dialog ships with.
func Default() *Config {
	button := Button{
		HorizontalSpacing:  1.0,
		VerticalSpacing:    0.3,
		BorderWidth:        1,
		RadiusX:            2,
		RadiusY:            2,
		PressedAdjustmentX: 1,
		PressedAdjustmentY: 1,
		Background:         RGB(0xfc, 0xfd, 0xfd),
		BackgroundPressed:  RGB(0xd3, 0xd8, 0xe2),
		BackgroundHover:    RGB(0xff, 0xff, 0xff),
		BorderColor:        RGB(0xcf, 0xd6, 0xe6),
		BorderColorPressed: RGB(0xb7, 0xc0, 0xd3),
	}
	fg := RGB(0x5c, 0x61, 0x6c)

	return &Config{
		Title: "askpass",
		Depth: 32,
		Dialog: Dialog{
			Label:        "Please enter your authentication passphrase:",
			FontSize:     11,
			Direction:    DirectionAuto,
			InputTimeout: 30,
			MaxLength:    512,
			Foreground:   fg,
			Background:   RGBA(0xf5, 0xf6, 0xf7, 0xee),
			Layout: Layout{
				Placement: PlacementCenter,
			},
			OKButton:     TextButton{Label: "OK", Foreground: fg, Button: button},
			CancelButton: TextButton{Label: "Cancel", Foreground: fg, Button: button},
			ClipboardButton: TextButton{
				Label: "\U0001f4cb", Foreground: fg, Button: button,
			},
			PlaintextButton: TextButton{
				Label: "abc", Foreground: fg, Button: button,
			},
			ShowClipboardButton: true,
			ShowPlaintextToggle: false,
			Indicator: Indicator{
				Type:               IndicatorClassic,
				BorderWidth:        1,
				Blink:              true,
				Foreground:         fg,
				Background:         RGB(0xff, 0xff, 0xff),
				BorderColor:        RGB(0xcf, 0xd6, 0xe6),
				BorderColorFocused: RGB(0x52, 0x94, 0xe2),
				IndicatorColor:     RGB(0xd3, 0xd8, 0xe2),
				Classic: IndicatorClassicOpts{
					MinCount: 3,
					MaxCount: 3,
					RadiusX:  2,
					RadiusY:  2,
				},
				Circle: IndicatorCircleOpts{
					Rotate:             true,
					RotationSpeedStart: 0.10,
					RotationSpeedGain:  1.05,
					LightUp:            true,
					SpacingAngle:       0.5,
					IndicatorCount:     3,
					LockColor:          RGB(0xff, 0xff, 0xff),
				},
				Strings: IndicatorStringsOpts{
					Mode:              StringsAsterisk,
					HorizontalSpacing: 0.5,
					VerticalSpacing:   0.3,
					RadiusX:           2,
					RadiusY:           2,
					Asterisk: AsteriskOpts{
						Glyph:    "*",
						MinCount: 10,
						MaxCount: 20,
					},
					Disco: DiscoOpts{
						MinCount:    3,
						MaxCount:    3,
						ThreeStates: true,
					},
					Custom: CustomOpts{
						Randomize: true,
						Strings: []string{
							"pasted \U0001f910",
							"(•_•)",
							"(๑•́ ₃ •̀๑)",
							"¯\\_(ツ)_/¯",
							"ヽ(´ー`)ノ",
						},
					},
				},
			},
		},
	}
}
