package keyframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSample(t *testing.T) {
	s := ParseSet(map[string]string{
		"rotation": "0:0,0,0;1:180,90,0",
		"position": "",
		"scale":    "0:1,1,1",
	})
	require.Len(t, s, 3)
	assert.Nil(t, s["position"])
	assert.Equal(t, []string{"position", "rotation", "scale"}, s.Names())

	out := s.Sample(0.5)
	assert.Equal(t, map[string][]float64{
		"rotation": {90, 45, 0},
		"scale":    {1, 1, 1},
	}, out)

	_, ok := out["position"]
	assert.False(t, ok)
}

func TestSetSampleMissingName(t *testing.T) {
	s := Set{}
	assert.Nil(t, Interpolate(s["anything"], 0.5))
	assert.Empty(t, s.Sample(0.5))
}
