// Package keyframe parses keyframe tracks and samples them by progress.
package keyframe

import (
	"strconv"
	"strings"
)

// Keyframe is a vector anchored at a point on the progress axis.
type Keyframe struct {
	T float64
	V []float64
}

// Track is a sequence of Keyframes sorted by T. A nil Track means no
// keyframes were defined for the channel.
type Track []Keyframe

// Len returns the number of keyframes.
func (tr Track) Len() int {
	return len(tr)
}

// Arity returns the vector length of the first keyframe, or 0 for an absent track.
func (tr Track) Arity() int {
	if len(tr) == 0 {
		return 0
	}
	return len(tr[0].V)
}

// String renders the track back into its textual definition.
func (tr Track) String() string {
	var b strings.Builder
	for i, k := range tr {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(formatFloat(k.T))
		b.WriteByte(':')
		for j, v := range k.V {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatFloat(v))
		}
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
