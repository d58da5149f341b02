package util

import (
	"errors"
	"fmt"

	"github.com/fogleman/ease"
)

// ErrUnknownEasing is returned by Easing for names it does not recognise.
var ErrUnknownEasing = errors.New("unknown easing")

var easings = map[string]func(float64) float64{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// Easing looks up a named easing curve. An empty name is linear.
func Easing(name string) (func(float64) float64, error) {
	if name == "" {
		return ease.Linear, nil
	}

	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEasing)
	}
	return f, nil
}

// ScrollProgress converts a scroll offset into progress through the
// scrollable range. It is 0 when the content fits in the viewport and is not
// clamped.
func ScrollProgress(offset, contentHeight, viewportHeight float64) float64 {
	span := contentHeight - viewportHeight
	if span > 0 {
		return offset / span
	}
	return 0
}

// Clamp01 limits p to [0,1].
func Clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
