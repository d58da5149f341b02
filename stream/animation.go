package stream

import (
	"math"

	"github.com/matt-g-everett/scrolltx/keyframe"
	"github.com/matt-g-everett/scrolltx/util"
)

// An Animation renders the channels of a scene at a progress value.
type Animation interface {
	CalculateFrame(progress float64) *Frame
}

// ScrollAnimation samples a set of keyframe tracks by scroll progress.
type ScrollAnimation struct {
	tracks   keyframe.Set
	channels map[string]ChannelKind
	easing   func(float64) float64
}

// NewScrollAnimation creates a ScrollAnimation. Tracks without an entry in
// channels use DefaultKind. A nil easing is linear.
func NewScrollAnimation(tracks keyframe.Set, channels map[string]ChannelKind, easing func(float64) float64) *ScrollAnimation {
	a := new(ScrollAnimation)
	a.tracks = tracks
	a.channels = channels
	a.easing = easing
	if a.easing == nil {
		a.easing = func(p float64) float64 { return p }
	}
	return a
}

// Tracks returns the parsed tracks.
func (a *ScrollAnimation) Tracks() keyframe.Set {
	return a.tracks
}

func (a *ScrollAnimation) kind(name string) ChannelKind {
	if k, ok := a.channels[name]; ok {
		return k
	}
	return DefaultKind(name)
}

// CalculateFrame clamps progress to [0,1], eases it and samples every track.
// Channels whose vector is absent or not finite are skipped.
func (a *ScrollAnimation) CalculateFrame(progress float64) *Frame {
	p := a.easing(util.Clamp01(progress))
	f := NewFrame(progress)
	for name, v := range a.tracks.Sample(p) {
		if !finite(v) {
			continue
		}

		attr, ok := a.kind(name).Format(v)
		if !ok {
			continue
		}

		f.Tracks[name] = v
		f.Attributes[name] = attr
	}
	return f
}

func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
