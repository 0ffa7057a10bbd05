// Package colour provides the pointer-driven colour maths: bilinear blending
// of the four corner colours, hex conversion, and terminal previews.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidChannel is returned when a channel value falls outside [0, 255].
	ErrInvalidChannel = errors.New("colour channel out of range")

	// ErrInvalidHex is returned when a string is not a 6 digit hex colour.
	ErrInvalidHex = errors.New("invalid hex colour")
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the external form of the colour, e.g. "#808040".
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToHex formats three channel values as six uppercase hex digits with no
// leading '#'. Any channel outside [0, 255] yields ErrInvalidChannel.
func ToHex(r, g, b int) (string, error) {
	for _, ch := range [...]struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 255 {
			return "", errors.Wrapf(ErrInvalidChannel, "%s=%d", ch.name, ch.value)
		}
	}
	return fmt.Sprintf("%02X%02X%02X", r, g, b), nil
}

// ParseHex parses a 6 digit hex colour. The leading '#' is optional and
// digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// NormaliseHex returns the canonical table form of a hex string: six
// uppercase digits without '#'.
func NormaliseHex(s string) (string, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return ToHex(int(rgb.R), int(rgb.G), int(rgb.B))
}

// MarshalJSON encodes the colour with both its hex and channel forms, e.g.
// {"hex":"#808040","r":128,"g":128,"b":64}.
func (rgb RGB) MarshalJSON() ([]byte, error) {
	type plain RGB
	return json.Marshal(struct {
		Hex string `json:"hex"`
		plain
	}{Hex: rgb.Hex(), plain: plain(rgb)})
}
