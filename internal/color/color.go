// Package color converts between device-agnostic color representations and
// the raw channel levels (red, green, blue, warm-white, cool-white) a Flux
// LED bulb understands. All functions are pure; channel values are 0-255.
//
// Two five-channel orderings exist: the device speaks RGBWC
// (red, green, blue, warm, cold) while callers supply RGBCW
// (red, green, blue, cold, warm). The conversion is a fixed permutation.
package color

import "math"

// KelvinToMired converts a color temperature in kelvin to mireds.
func KelvinToMired(kelvin int) int {
	if kelvin <= 0 {
		return 0
	}
	return int(math.Round(1000000 / float64(kelvin)))
}

// MiredToKelvin converts a color temperature in mireds to kelvin.
func MiredToKelvin(mired int) int {
	if mired <= 0 {
		return 0
	}
	return int(math.Round(1000000 / float64(mired)))
}

// RGBToHS converts an RGB triple to hue [0,360) and saturation [0,100].
// The value component is discarded, which makes a round trip through
// HSToRGB brightness-independent.
func RGBToHS(r, g, b uint8) (hue, sat float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxc := math.Max(rf, math.Max(gf, bf))
	minc := math.Min(rf, math.Min(gf, bf))
	if maxc == 0 || maxc == minc {
		return 0, 0
	}

	delta := maxc - minc
	switch maxc {
	case rf:
		hue = math.Mod((gf-bf)/delta, 6)
	case gf:
		hue = (bf-rf)/delta + 2
	default:
		hue = (rf-gf)/delta + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, delta / maxc * 100
}

// HSToRGB converts hue [0,360) and saturation [0,100] to an RGB triple at
// full value.
func HSToRGB(hue, sat float64) (r, g, b uint8) {
	s := sat / 100
	if s <= 0 {
		return 255, 255, 255
	}

	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	h /= 60
	i := int(h)
	f := h - float64(i)
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)

	var rf, gf, bf float64
	switch i {
	case 0:
		rf, gf, bf = 1, t, p
	case 1:
		rf, gf, bf = q, 1, p
	case 2:
		rf, gf, bf = p, 1, t
	case 3:
		rf, gf, bf = p, q, 1
	case 4:
		rf, gf, bf = t, p, 1
	default:
		rf, gf, bf = 1, p, q
	}
	return roundChannel(rf * 255), roundChannel(gf * 255), roundChannel(bf * 255)
}

// WhiteLevels cross-fades between the cool-white and warm-white channels for
// a color temperature within [minKelvin, maxKelvin], scaled so that the
// larger of the two channels equals brightness. Kelvin values outside the
// range are clamped.
func WhiteLevels(kelvin int, brightness uint8, minKelvin, maxKelvin int) (cold, warm uint8) {
	if kelvin < minKelvin {
		kelvin = minKelvin
	}
	if kelvin > maxKelvin {
		kelvin = maxKelvin
	}

	pos := 1.0
	if span := maxKelvin - minKelvin; span > 0 {
		pos = float64(kelvin-minKelvin) / float64(span)
	}

	coldF := pos * 255
	warmF := 255 - coldF
	if scaled := math.Max(coldF, warmF); scaled > 0 {
		factor := 255 / scaled
		coldF *= factor
		warmF *= factor
	}

	bf := float64(brightness) / 255
	return roundChannel(coldF * bf), roundChannel(warmF * bf)
}

// RGBWBrightness rescales an RGBW vector so its implied brightness (the
// largest channel) equals the requested brightness while preserving channel
// ratios. An all-zero vector is returned unchanged.
func RGBWBrightness(rgbw [4]uint8, brightness uint8) [4]uint8 {
	var out [4]uint8
	rescale(rgbw[:], out[:], brightness)
	return out
}

// RGBWWBrightness is RGBWBrightness for five channels in the native RGBWC
// (red, green, blue, warm, cold) ordering.
func RGBWWBrightness(rgbwc [5]uint8, brightness uint8) [5]uint8 {
	var out [5]uint8
	rescale(rgbwc[:], out[:], brightness)
	return out
}

// RGBCWBrightness is RGBWWBrightness for the external RGBCW
// (red, green, blue, cold, warm) ordering.
func RGBCWBrightness(rgbcw [5]uint8, brightness uint8) [5]uint8 {
	return RGBWCToRGBCW(RGBWWBrightness(RGBCWToRGBWC(rgbcw), brightness))
}

// RGBCWToRGBWC reorders an external (red, green, blue, cold, warm) vector
// into the native (red, green, blue, warm, cold) device ordering.
func RGBCWToRGBWC(rgbcw [5]uint8) [5]uint8 {
	return [5]uint8{rgbcw[0], rgbcw[1], rgbcw[2], rgbcw[4], rgbcw[3]}
}

// RGBWCToRGBCW is the inverse of RGBCWToRGBWC.
func RGBWCToRGBCW(rgbwc [5]uint8) [5]uint8 {
	return [5]uint8{rgbwc[0], rgbwc[1], rgbwc[2], rgbwc[4], rgbwc[3]}
}

func rescale(in, out []uint8, brightness uint8) {
	var current uint8
	for _, v := range in {
		if v > current {
			current = v
		}
	}
	if current == 0 {
		copy(out, in)
		return
	}
	factor := float64(brightness) / float64(current)
	for i, v := range in {
		out[i] = roundChannel(float64(v) * factor)
	}
}

func roundChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
