package light

import "sort"

// Builtin preset pattern names.
const (
	EffectColorloop          = "colorloop"
	EffectRedFade            = "red_fade"
	EffectGreenFade          = "green_fade"
	EffectBlueFade           = "blue_fade"
	EffectYellowFade         = "yellow_fade"
	EffectCyanFade           = "cyan_fade"
	EffectPurpleFade         = "purple_fade"
	EffectWhiteFade          = "white_fade"
	EffectRedGreenCrossFade  = "rg_cross_fade"
	EffectRedBlueCrossFade   = "rb_cross_fade"
	EffectGreenBlueCrossFade = "gb_cross_fade"
	EffectColorstrobe        = "colorstrobe"
	EffectRedStrobe          = "red_strobe"
	EffectGreenStrobe        = "green_strobe"
	EffectBlueStrobe         = "blue_strobe"
	EffectYellowStrobe       = "yellow_strobe"
	EffectCyanStrobe         = "cyan_strobe"
	EffectPurpleStrobe       = "purple_strobe"
	EffectWhiteStrobe        = "white_strobe"
	EffectColorjump          = "colorjump"
)

// Pseudo-effects handled client-side, outside the preset table.
const (
	EffectRandom = "random"
	EffectCustom = "custom"
)

// EffectCustomCode is the preset code the bulb reports while running a
// custom pattern. It never appears in the preset table.
const EffectCustomCode = 0x60

// DefaultEffectSpeed is the speed percentage used when selecting a preset.
const DefaultEffectSpeed = 50

// effectCodes is the authoritative preset table. The codes are protocol
// data and must match the bulb firmware byte for byte.
var effectCodes = map[string]int{
	EffectColorloop:          0x25,
	EffectRedFade:            0x26,
	EffectGreenFade:          0x27,
	EffectBlueFade:           0x28,
	EffectYellowFade:         0x29,
	EffectCyanFade:           0x2A,
	EffectPurpleFade:         0x2B,
	EffectWhiteFade:          0x2C,
	EffectRedGreenCrossFade:  0x2D,
	EffectRedBlueCrossFade:   0x2E,
	EffectGreenBlueCrossFade: 0x2F,
	EffectColorstrobe:        0x30,
	EffectRedStrobe:          0x31,
	EffectGreenStrobe:        0x32,
	EffectBlueStrobe:         0x33,
	EffectYellowStrobe:       0x34,
	EffectCyanStrobe:         0x35,
	EffectPurpleStrobe:       0x36,
	EffectWhiteStrobe:        0x37,
	EffectColorjump:          0x38,
}

var effectNames = func() map[int]string {
	names := make(map[int]string, len(effectCodes))
	for name, code := range effectCodes {
		names[code] = name
	}
	return names
}()

// EffectCode looks up the preset code for an effect name.
func EffectCode(name string) (int, bool) {
	code, ok := effectCodes[name]
	return code, ok
}

// EffectName reverse-looks-up the effect name for a preset code.
func EffectName(code int) (string, bool) {
	name, ok := effectNames[code]
	return name, ok
}

// PresetEffects returns the preset effect names in sorted order.
func PresetEffects() []string {
	names := make([]string, 0, len(effectCodes))
	for name := range effectCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CustomEffect is the construction-time configuration for the "custom"
// pseudo-effect. An empty Colors list means the effect is unavailable and
// selecting it is a no-op.
type CustomEffect struct {
	Colors     []RGB
	SpeedPct   int
	Transition Transition
}
