// Package colorutil provides shared color utilities for the wire manager application.
package colorutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string is not a bare or
// "#"-prefixed 6-hex-digit value.
var ErrInvalidColor = errors.New("invalid color")

// ParseHex parses a 6-hex-digit color string ("RRGGBB" or "#RRGGBB")
// into unit-interval RGB components.
func ParseHex(s string) (r, g, b float64, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, convErr := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = float64(v) / 255.0
	}
	return channels[0], channels[1], channels[2], nil
}

// FormatHex renders unit-interval RGB components as a "#RRGGBB" string.
func FormatHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(r), channelByte(g), channelByte(b))
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
