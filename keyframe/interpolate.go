package keyframe

// Lerp blends a towards b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate samples the track at progress p. It returns nil for an absent
// track. Progress outside the keyframe range is clamped to the first or last
// vector, which is returned as-is and must not be modified.
func Interpolate(track Track, p float64) []float64 {
	if len(track) == 0 {
		return nil
	}

	first := track[0]
	last := track[len(track)-1]
	if p <= first.T {
		return first.V
	}
	if p >= last.T {
		return last.V
	}

	for i := 0; i < len(track)-1; i++ {
		a := track[i]
		b := track[i+1]
		if a.T <= p && p <= b.T {
			if b.T == a.T {
				return a.V
			}

			t := (p - a.T) / (b.T - a.T)
			n := len(a.V)
			if len(b.V) < n {
				n = len(b.V)
			}
			out := make([]float64, n)
			for j := 0; j < n; j++ {
				out[j] = Lerp(a.V[j], b.V[j], t)
			}
			return out
		}
	}

	// Only reachable when p or a keyframe time is NaN.
	return nil
}
