// Package light translates abstract lighting intents (brightness, color,
// color temperature, effects) into the single native command a Flux LED
// bulb expects, and derives presentation state back from the device's
// reported values. The package owns no bulb state of its own: everything is
// read fresh from the Device collaborator on each call.
package light

import "context"

// NativeColorMode is the color-mode identifier reported by the bulb
// firmware protocol.
type NativeColorMode string

const (
	NativeModeRGB   NativeColorMode = "RGB"
	NativeModeRGBW  NativeColorMode = "RGBW"
	NativeModeRGBWW NativeColorMode = "RGBWW"
	NativeModeCCT   NativeColorMode = "CCT"
	NativeModeDim   NativeColorMode = "DIM"
)

// ColorMode is the device-agnostic color mode derived from the native one.
type ColorMode string

const (
	ColorModeRGB        ColorMode = "rgb"
	ColorModeRGBW       ColorMode = "rgbw"
	ColorModeRGBWW      ColorMode = "rgbww"
	ColorModeColorTemp  ColorMode = "color_temp"
	ColorModeBrightness ColorMode = "brightness"
	ColorModeOnOff      ColorMode = "onoff"
)

// nativeColorModes maps firmware color modes to device-agnostic ones.
// Unrecognized native modes degrade to on/off.
var nativeColorModes = map[NativeColorMode]ColorMode{
	NativeModeRGB:   ColorModeRGB,
	NativeModeRGBW:  ColorModeRGBW,
	NativeModeRGBWW: ColorModeRGBWW,
	NativeModeCCT:   ColorModeColorTemp,
	NativeModeDim:   ColorModeBrightness,
}

func colorModeFromNative(mode NativeColorMode) ColorMode {
	if m, ok := nativeColorModes[mode]; ok {
		return m
	}
	return ColorModeOnOff
}

// Transition selects how a custom pattern moves between its colors.
type Transition string

const (
	TransitionGradual Transition = "gradual"
	TransitionJump    Transition = "jump"
	TransitionStrobe  Transition = "strobe"
)

// ValidTransition reports whether t is a known transition style.
func ValidTransition(t Transition) bool {
	switch t {
	case TransitionGradual, TransitionJump, TransitionStrobe:
		return true
	}
	return false
}

// RGB is a single color of a custom pattern.
type RGB [3]uint8

// Levels is a raw channel-level command. Nil fields are left untouched by
// the device; Brightness, when set, lets the device scale the color
// channels itself.
type Levels struct {
	Red        *uint8
	Green      *uint8
	Blue       *uint8
	WarmWhite  *uint8
	CoolWhite  *uint8
	Brightness *uint8
}

// Device is the collaborator owning the bulb connection and its cached
// state. Reads return the values from the device's latest refresh; commands
// return once the collaborator has accepted the command for sending, not
// when the bulb has physically changed. Serializing concurrent commands
// onto the single connection is the implementation's responsibility.
type Device interface {
	// ColorModes returns the set of native color modes the bulb supports.
	ColorModes() []NativeColorMode
	// ColorMode returns the currently active native color mode.
	ColorMode() NativeColorMode
	RGB() [3]uint8
	RGBW() [4]uint8
	// RGBWW returns the five channels in native (r,g,b,warm,cold) order.
	RGBWW() [5]uint8
	// RGBCW returns the five channels in external (r,g,b,cold,warm) order.
	RGBCW() [5]uint8
	Brightness() uint8
	// ColorTemp returns the current color temperature in kelvin.
	ColorTemp() int
	MinTemp() int
	MaxTemp() int
	// WhiteTemperature returns the color temperature implied by the white
	// channel pair together with the pair's own brightness.
	WhiteTemperature() (kelvin int, brightness uint8)
	// PresetPatternNum returns the preset code last reported by the bulb.
	PresetPatternNum() int
	IsOn() bool

	TurnOn(ctx context.Context) error
	SetWhiteTemp(ctx context.Context, kelvin int, brightness uint8) error
	SetLevels(ctx context.Context, levels Levels) error
	SetPresetPattern(ctx context.Context, code int, speedPct int) error
	SetCustomPattern(ctx context.Context, colors []RGB, speedPct int, transition Transition) error
}
