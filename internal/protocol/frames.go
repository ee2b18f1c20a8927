// Package protocol builds the LEDENET wire frames a Flux LED bulb accepts.
// A transport implementation writes these frames to the bulb's TCP socket
// verbatim; nothing here performs I/O. Every frame ends with an additive
// checksum over the preceding bytes.
package protocol

import "fmt"

// Transition byte codes for custom patterns.
const (
	TransitionGradual byte = 0x3A
	TransitionJump    byte = 0x3B
	TransitionStrobe  byte = 0x3C
)

// Write-mask byte for the levels frames. The 8-byte protocol always sends
// MaskAll; the 9-byte protocol can address the color and white channel
// groups independently.
const (
	MaskAll    byte = 0x00
	MaskColors byte = 0xF0
	MaskWhites byte = 0x0F
)

// CustomPatternCode is the preset code the bulb reports while running a
// user-uploaded pattern. It is outside the builtin preset range.
const CustomPatternCode = 0x60

// maxPatternColors is the number of color slots in a custom pattern frame.
const maxPatternColors = 16

// unusedSlot marks an empty color slot in a custom pattern frame.
var unusedSlot = [3]uint8{0x01, 0x02, 0x03}

// TransitionByte maps a transition name to its wire code.
func TransitionByte(name string) (byte, bool) {
	switch name {
	case "gradual":
		return TransitionGradual, true
	case "jump":
		return TransitionJump, true
	case "strobe":
		return TransitionStrobe, true
	}
	return 0, false
}

// Checksum returns the additive checksum of frame.
func Checksum(frame []byte) byte {
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return sum
}

func appendChecksum(frame []byte) []byte {
	return append(frame, Checksum(frame))
}

// SpeedToDelay converts a speed percentage [0,100] to the delay byte
// [1,0x1F] the firmware expects. Higher speed means lower delay.
func SpeedToDelay(speedPct int) byte {
	speedPct = clampPct(speedPct)
	inverted := 100 - speedPct
	return byte(inverted*(0x1F-1)/100) + 1
}

// DelayToSpeed is the inverse of SpeedToDelay, used when decoding a
// reported state back into a speed percentage.
func DelayToSpeed(delay byte) int {
	d := int(delay) - 1
	if d < 0 {
		d = 0
	}
	if d > 0x1F-1 {
		d = 0x1F - 1
	}
	return 100 - d*100/(0x1F-1)
}

// PowerFrame builds the power toggle frame.
func PowerFrame(on bool) []byte {
	state := byte(0x24)
	if on {
		state = 0x23
	}
	return appendChecksum([]byte{0x71, state, 0x0F})
}

// StateQueryFrame builds the state request frame.
func StateQueryFrame() []byte {
	return appendChecksum([]byte{0x81, 0x8A, 0x8B})
}

// LevelsFrame builds the 8-byte-protocol channel levels frame. Persisted
// frames survive a power cycle; ephemeral ones use the 0x41 header.
func LevelsFrame(r, g, b, w uint8, persist bool) []byte {
	return appendChecksum([]byte{levelsHeader(persist), r, g, b, w, MaskAll, 0x0F})
}

// LevelsFrame9 builds the 9-byte-protocol levels frame carrying both white
// channels, with w the warm and w2 the cold channel.
func LevelsFrame9(r, g, b, w, w2 uint8, mask byte, persist bool) []byte {
	return appendChecksum([]byte{levelsHeader(persist), r, g, b, w, w2, mask, 0x0F})
}

func levelsHeader(persist bool) byte {
	if persist {
		return 0x31
	}
	return 0x41
}

// PresetPatternFrame builds the frame selecting a builtin preset pattern.
func PresetPatternFrame(code byte, speedPct int) []byte {
	return appendChecksum([]byte{0x61, code, SpeedToDelay(speedPct), 0x0F})
}

// CustomPatternFrame builds the frame uploading a user-defined pattern of up
// to 16 colors. Unused slots carry the 0x01,0x02,0x03 filler the firmware
// treats as empty.
func CustomPatternFrame(colors [][3]uint8, speedPct int, transition byte) ([]byte, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("custom pattern needs at least one color")
	}
	if len(colors) > maxPatternColors {
		return nil, fmt.Errorf("custom pattern supports at most %d colors, got %d", maxPatternColors, len(colors))
	}
	switch transition {
	case TransitionGradual, TransitionJump, TransitionStrobe:
	default:
		return nil, fmt.Errorf("invalid transition byte 0x%02X", transition)
	}

	frame := make([]byte, 0, 1+maxPatternColors*4+4+1)
	frame = append(frame, 0x51)
	for i := 0; i < maxPatternColors; i++ {
		slot := unusedSlot
		if i < len(colors) {
			slot = colors[i]
		}
		frame = append(frame, slot[0], slot[1], slot[2], 0x00)
	}
	frame = append(frame, SpeedToDelay(speedPct), transition, 0xFF, 0x0F)
	return appendChecksum(frame), nil
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
