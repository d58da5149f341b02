package keyframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateAbsent(t *testing.T) {
	for _, p := range []float64{-1, 0, 0.5, 1, 2} {
		assert.Nil(t, Interpolate(nil, p))
		assert.Nil(t, Interpolate(Parse(""), p))
		assert.Nil(t, Interpolate(Track{}, p))
	}
}

func TestInterpolateRoundTrip(t *testing.T) {
	track := Parse("0:1,2,3;1:4,5,6")
	assert.Equal(t, []float64{1, 2, 3}, Interpolate(track, 0))
	assert.Equal(t, []float64{4, 5, 6}, Interpolate(track, 1))
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, Interpolate(track, 0.5))
}

func TestInterpolateSingleKeyframe(t *testing.T) {
	track := Parse("0.3:7,8,9")
	for _, p := range []float64{-10, 0, 0.3, 0.31, 1, 10} {
		assert.Equal(t, []float64{7, 8, 9}, Interpolate(track, p))
	}
}

func TestInterpolateClampsAtBoundaries(t *testing.T) {
	track := Parse("0.2:10;0.8:20")
	for _, p := range []float64{-5, 0, 0.1, 0.2} {
		assert.Equal(t, []float64{10}, Interpolate(track, p), "p=%v", p)
	}
	for _, p := range []float64{0.8, 0.9, 1, 100} {
		assert.Equal(t, []float64{20}, Interpolate(track, p), "p=%v", p)
	}
}

func TestInterpolateBoundaryReturnsKeyframeVector(t *testing.T) {
	track := Parse("0:1;1:2")
	v := Interpolate(track, -1)
	assert.Same(t, &track[0].V[0], &v[0])
}

func TestInterpolateInterior(t *testing.T) {
	track := Parse("0:0,100;0.5:90,0;1:180,50")
	cases := []struct {
		p    float64
		want []float64
	}{
		{0.25, []float64{45, 50}},
		{0.5, []float64{90, 0}},
		{0.75, []float64{135, 25}},
	}
	for _, c := range cases {
		assert.InDeltaSlice(t, c.want, Interpolate(track, c.p), 1e-9, "p=%v", c.p)
	}
}

func TestInterpolateBetweenNeighbours(t *testing.T) {
	track := Parse("0:0,10;0.4:-4,20;1:6,-10")
	for i := 1; i < len(track); i++ {
		a, b := track[i-1], track[i]
		for _, frac := range []float64{0.1, 0.33, 0.5, 0.9} {
			p := a.T + (b.T-a.T)*frac
			got := Interpolate(track, p)
			for j := range got {
				lo := math.Min(a.V[j], b.V[j])
				hi := math.Max(a.V[j], b.V[j])
				assert.GreaterOrEqual(t, got[j], lo)
				assert.LessOrEqual(t, got[j], hi)
				assert.InDelta(t, Lerp(a.V[j], b.V[j], (p-a.T)/(b.T-a.T)), got[j], 1e-12)
			}
		}
	}
}

func TestInterpolateDuplicateStartPicksFirst(t *testing.T) {
	track := Parse("0:0,0,0;0:10,10,10;1:20,20,20")
	assert.Equal(t, []float64{0, 0, 0}, Interpolate(track, 0))
}

func TestInterpolateDuplicateInteriorTimes(t *testing.T) {
	track := Parse("0:0;0.5:10;0.5:30;1:40")
	v := Interpolate(track, 0.5)
	assert.Equal(t, []float64{10}, v)
	for _, x := range v {
		assert.False(t, math.IsNaN(x))
		assert.False(t, math.IsInf(x, 0))
	}
	assert.Equal(t, []float64{35}, Interpolate(track, 0.75))
}

func TestInterpolateOutOfOrderDefinition(t *testing.T) {
	assert.Equal(t, []float64{5}, Interpolate(Parse("1:10;0:0"), 0.5))
}

func TestInterpolateNaNComponentPropagates(t *testing.T) {
	track := Parse("0:0,x;1:10,10")
	v := Interpolate(track, 0.5)
	assert.Equal(t, 5.0, v[0])
	assert.True(t, math.IsNaN(v[1]))
}

func TestInterpolateNaNProgress(t *testing.T) {
	assert.Nil(t, Interpolate(Parse("0:0;1:1"), math.NaN()))
}

func TestInterpolateMixedArityTruncates(t *testing.T) {
	track := Parse("0:0,0,0;1:10,10")
	assert.Equal(t, []float64{5, 5}, Interpolate(track, 0.5))
}

func TestInterpolateIsPure(t *testing.T) {
	track := Parse("0:0,0;1:2,4")
	before := track.String()
	a := Interpolate(track, 0.25)
	b := Interpolate(track, 0.25)
	assert.Equal(t, a, b)
	a[0] = 99
	assert.Equal(t, []float64{0.5, 1}, Interpolate(track, 0.25))
	assert.Equal(t, before, track.String())
}

func TestInterpolateConcurrentReaders(t *testing.T) {
	track := Parse("0:0;1:100")
	done := make(chan []float64)
	for i := 0; i < 8; i++ {
		go func() {
			done <- Interpolate(track, 0.5)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, []float64{50}, <-done)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
	assert.Equal(t, -5.0, Lerp(5, -15, 0.5))
}

func TestInterpolateZeroWidthSpan(t *testing.T) {
	// Only a hand-built track can reach a zero-width pair without matching an
	// earlier pair first.
	track := Track{
		{T: 0, V: []float64{0}},
		{T: math.NaN(), V: []float64{1}},
		{T: 0.5, V: []float64{2}},
		{T: 0.5, V: []float64{3}},
		{T: 1, V: []float64{4}},
	}
	assert.Equal(t, []float64{2}, Interpolate(track, 0.5))
}
