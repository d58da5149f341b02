package stream

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ChannelKind selects how a track's vector is presented to the renderer.
type ChannelKind string

const (
	KindRotation ChannelKind = "rotation"
	KindPosition ChannelKind = "position"
	KindScale    ChannelKind = "scale"
	KindColour   ChannelKind = "colour"
	KindRaw      ChannelKind = "raw"
)

// DefaultKind picks a kind from the track name.
func DefaultKind(name string) ChannelKind {
	switch ChannelKind(name) {
	case KindRotation, KindPosition, KindScale:
		return ChannelKind(name)
	}
	return KindRaw
}

// Valid reports whether k is a known kind.
func (k ChannelKind) Valid() bool {
	switch k {
	case KindRotation, KindPosition, KindScale, KindColour, KindRaw:
		return true
	}
	return false
}

// Format renders v as an attribute value. Rotations are given in degrees and
// rendered in radians. It returns false when v cannot be shown on this kind
// of channel.
func (k ChannelKind) Format(v []float64) (string, bool) {
	if len(v) == 0 {
		return "", false
	}

	switch k {
	case KindRotation:
		return join(v, func(d float64) float64 { return d * math.Pi / 180 }, "rad"), true
	case KindPosition:
		return join(v, nil, "m"), true
	case KindScale, KindRaw:
		return join(v, nil, ""), true
	case KindColour:
		if len(v) < 3 {
			return "", false
		}
		c := colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255}
		return c.Clamped().Hex(), true
	}
	return "", false
}

func join(v []float64, conv func(float64) float64, unit string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		if conv != nil {
			x = conv(x)
		}
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64) + unit
	}
	return strings.Join(parts, " ")
}
