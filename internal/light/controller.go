package light

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"fluxled-go-home/internal/color"
)

var (
	// ErrUnknownEffect is returned for an effect name that is neither a
	// preset nor one of the pseudo-effects.
	ErrUnknownEffect = errors.New("unknown effect")
	// ErrUnsupportedColorMode is returned when a brightness adjustment is
	// requested while the device reports a mode outside the known set.
	ErrUnsupportedColorMode = errors.New("unsupported color mode")
)

// Intent is the set of optional attributes of a turn-on request. At most
// one color-carrying attribute takes effect; when several are present the
// dispatch priority is color temperature, rgb, rgbw, rgbww, effect, then
// brightness-only.
type Intent struct {
	Brightness *uint8
	RGB        *[3]uint8
	// RGBW carries all four channels; brightness, when also set, pre-scales
	// them before sending.
	RGBW *[4]uint8
	// RGBWW is in external (r,g,b,cold,warm) order.
	RGBWW *[5]uint8
	// ColorTempMired selects white-channel operation at the given mired value.
	ColorTempMired *int
	Effect         string
	// TransitionSeconds is accepted for callers that fade between states
	// themselves; the bulb's levels commands carry no duration, so it does
	// not map to a native parameter.
	TransitionSeconds *float64
}

func (i Intent) empty() bool {
	return i.Brightness == nil && i.RGB == nil && i.RGBW == nil && i.RGBWW == nil &&
		i.ColorTempMired == nil && i.Effect == ""
}

// Controller is the command/state facade over a single Device. It is
// stateless apart from the immutable custom-effect configuration supplied
// at construction, so concurrent callers are safe as long as the Device
// serializes its own commands.
type Controller struct {
	dev    Device
	custom CustomEffect
	logger *slog.Logger
}

// NewController creates a controller for dev. The custom effect
// configuration is fixed for the controller's lifetime.
func NewController(dev Device, custom CustomEffect, logger *slog.Logger) *Controller {
	return &Controller{
		dev:    dev,
		custom: custom,
		logger: logger.With("component", "light"),
	}
}

// SupportedColorModes derives the capability set from the device-reported
// native modes. Unrecognized native modes degrade to on/off.
func (c *Controller) SupportedColorModes() map[ColorMode]bool {
	modes := make(map[ColorMode]bool)
	for _, m := range c.dev.ColorModes() {
		modes[colorModeFromNative(m)] = true
	}
	return modes
}

// EffectList returns the selectable effect names, or nil when the device
// has no color-capable mode. The custom effect is offered only when colors
// were configured.
func (c *Controller) EffectList() []string {
	modes := c.SupportedColorModes()
	if !modes[ColorModeRGB] && !modes[ColorModeRGBW] && !modes[ColorModeRGBWW] {
		return nil
	}
	effects := append(PresetEffects(), EffectRandom)
	if len(c.custom.Colors) > 0 {
		effects = append(effects, EffectCustom)
	}
	return effects
}

// ColorMode returns the device-agnostic color mode currently active.
func (c *Controller) ColorMode() ColorMode {
	return colorModeFromNative(c.dev.ColorMode())
}

// Brightness returns the reported brightness, 0-255.
func (c *Controller) Brightness() uint8 {
	return c.dev.Brightness()
}

// ColorTempMired returns the current color temperature in mireds.
func (c *Controller) ColorTempMired() int {
	return color.KelvinToMired(c.dev.ColorTemp())
}

// MinMired returns the coolest supported mired value. The +1 compensates
// for integer rounding so the full kelvin range stays reachable.
func (c *Controller) MinMired() int {
	return color.KelvinToMired(c.dev.MaxTemp()) + 1
}

// MaxMired returns the warmest supported mired value.
func (c *Controller) MaxMired() int {
	return color.KelvinToMired(c.dev.MinTemp())
}

// RGBColor returns the reported color round-tripped through hue/saturation
// space, discarding the value component so the result is independent of the
// separately reported brightness.
func (c *Controller) RGBColor() [3]uint8 {
	rgb := c.dev.RGB()
	r, g, b := color.HSToRGB(color.RGBToHS(rgb[0], rgb[1], rgb[2]))
	return [3]uint8{r, g, b}
}

// RGBWColor returns the reported four-channel color.
func (c *Controller) RGBWColor() [4]uint8 {
	return c.dev.RGBW()
}

// RGBWWColor returns the reported five-channel color in external
// (r,g,b,cold,warm) order.
func (c *Controller) RGBWWColor() [5]uint8 {
	return c.dev.RGBCW()
}

// RGBWCColor returns the reported five-channel color in native
// (r,g,b,warm,cold) order.
func (c *Controller) RGBWCColor() [5]uint8 {
	return c.dev.RGBWW()
}

// Effect returns the active effect name, if any. The reserved custom code
// reports as the custom effect regardless of configuration.
func (c *Controller) Effect() (string, bool) {
	code := c.dev.PresetPatternNum()
	if code == EffectCustomCode {
		return EffectCustom, true
	}
	return EffectName(code)
}

// TurnOn powers the device on if needed and applies the intent as exactly
// one native command. An empty intent on a powered-off device stops after
// the power command so that turning on never perturbs color or brightness.
func (c *Controller) TurnOn(ctx context.Context, intent Intent) error {
	if !c.dev.IsOn() {
		if err := c.dev.TurnOn(ctx); err != nil {
			return err
		}
		if intent.empty() {
			return nil
		}
	}

	brightness := c.dev.Brightness()
	if intent.Brightness != nil {
		brightness = *intent.Brightness
	}

	switch {
	case intent.ColorTempMired != nil:
		return c.setColorTemp(ctx, *intent.ColorTempMired, intent.Brightness)

	case intent.RGB != nil:
		rgb := *intent.RGB
		c.logger.Debug("set rgb", "rgb", rgb, "brightness", brightness)
		return c.dev.SetLevels(ctx, Levels{
			Red:        &rgb[0],
			Green:      &rgb[1],
			Blue:       &rgb[2],
			Brightness: &brightness,
		})

	case intent.RGBW != nil:
		rgbw := *intent.RGBW
		if intent.Brightness != nil {
			rgbw = color.RGBWBrightness(rgbw, brightness)
		}
		c.logger.Debug("set rgbw", "rgbw", rgbw)
		return c.dev.SetLevels(ctx, levelsRGBW(rgbw))

	case intent.RGBWW != nil:
		rgbcw := *intent.RGBWW
		if intent.Brightness != nil {
			rgbcw = color.RGBCWBrightness(rgbcw, brightness)
		}
		rgbwc := color.RGBCWToRGBWC(rgbcw)
		c.logger.Debug("set rgbww", "rgbwc", rgbwc)
		return c.dev.SetLevels(ctx, levelsRGBWC(rgbwc))

	case intent.Effect != "":
		return c.setEffect(ctx, intent.Effect)
	}

	return c.setBrightness(ctx, brightness)
}

// setColorTemp handles the switch into white-channel operation. From RGBWW
// mode the bulb needs raw levels with the color channels zeroed; in every
// other mode the native white-temperature command applies.
func (c *Controller) setColorTemp(ctx context.Context, mired int, explicitBrightness *uint8) error {
	kelvin := color.MiredToKelvin(mired)

	if c.ColorMode() != ColorModeRGBWW {
		brightness := c.dev.Brightness()
		if explicitBrightness != nil {
			brightness = *explicitBrightness
		}
		return c.dev.SetWhiteTemp(ctx, kelvin, brightness)
	}

	// Leaving RGBWW mode the overall brightness includes the color
	// channels; only the white pair's own brightness carries over.
	brightness := explicitBrightness
	if brightness == nil {
		_, whiteBrightness := c.dev.WhiteTemperature()
		brightness = &whiteBrightness
	}
	cold, warm := color.WhiteLevels(kelvin, *brightness, c.dev.MinTemp(), c.dev.MaxTemp())
	c.logger.Debug("switch to white channels", "kelvin", kelvin, "cold", cold, "warm", warm)

	zero := uint8(0)
	return c.dev.SetLevels(ctx, Levels{
		Red:       &zero,
		Green:     &zero,
		Blue:      &zero,
		WarmWhite: &warm,
		CoolWhite: &cold,
	})
}

func (c *Controller) setEffect(ctx context.Context, effect string) error {
	switch effect {
	case EffectRandom:
		r := uint8(rand.Intn(256))
		g := uint8(rand.Intn(256))
		b := uint8(rand.Intn(256))
		c.logger.Debug("set random color", "r", r, "g", g, "b", b)
		return c.dev.SetLevels(ctx, Levels{Red: &r, Green: &g, Blue: &b})

	case EffectCustom:
		if len(c.custom.Colors) == 0 {
			c.logger.Debug("custom effect selected but no colors configured")
			return nil
		}
		return c.dev.SetCustomPattern(ctx, c.custom.Colors, c.custom.SpeedPct, c.custom.Transition)
	}

	code, ok := EffectCode(effect)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, effect)
	}
	return c.dev.SetPresetPattern(ctx, code, DefaultEffectSpeed)
}

// setBrightness reissues the current color at the new brightness so that a
// plain brightness change never shifts hue.
func (c *Controller) setBrightness(ctx context.Context, brightness uint8) error {
	mode := c.ColorMode()
	c.logger.Debug("set brightness", "mode", mode, "brightness", brightness)

	switch mode {
	case ColorModeColorTemp:
		return c.dev.SetWhiteTemp(ctx, c.dev.ColorTemp(), brightness)

	case ColorModeRGB:
		rgb := c.RGBColor()
		return c.dev.SetLevels(ctx, Levels{
			Red:        &rgb[0],
			Green:      &rgb[1],
			Blue:       &rgb[2],
			Brightness: &brightness,
		})

	case ColorModeRGBW:
		rgbw := color.RGBWBrightness(c.dev.RGBW(), brightness)
		return c.dev.SetLevels(ctx, levelsRGBW(rgbw))

	case ColorModeRGBWW:
		rgbwc := color.RGBWWBrightness(c.dev.RGBWW(), brightness)
		return c.dev.SetLevels(ctx, levelsRGBWC(rgbwc))

	case ColorModeBrightness:
		return c.dev.SetLevels(ctx, Levels{WarmWhite: &brightness})
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedColorMode, mode)
}

// SetCustomEffect uploads a custom pattern directly, independent of the
// configuration stored at construction.
func (c *Controller) SetCustomEffect(ctx context.Context, colors []RGB, speedPct int, transition Transition) error {
	if len(colors) == 0 || len(colors) > 16 {
		return fmt.Errorf("custom effect needs 1-16 colors, got %d", len(colors))
	}
	if speedPct < 0 || speedPct > 100 {
		return fmt.Errorf("custom effect speed must be 0-100, got %d", speedPct)
	}
	if !ValidTransition(transition) {
		return fmt.Errorf("invalid transition %q", transition)
	}
	return c.dev.SetCustomPattern(ctx, colors, speedPct, transition)
}

func levelsRGBW(rgbw [4]uint8) Levels {
	return Levels{
		Red:       &rgbw[0],
		Green:     &rgbw[1],
		Blue:      &rgbw[2],
		WarmWhite: &rgbw[3],
	}
}

func levelsRGBWC(rgbwc [5]uint8) Levels {
	return Levels{
		Red:       &rgbwc[0],
		Green:     &rgbwc[1],
		Blue:      &rgbwc[2],
		WarmWhite: &rgbwc[3],
		CoolWhite: &rgbwc[4],
	}
}
