package keyframe

import "sort"

// Set maps channel names to tracks. A missing or nil entry is absent.
type Set map[string]Track

// ParseSet parses a definition per channel name.
func ParseSet(defs map[string]string) Set {
	s := make(Set, len(defs))
	for name, raw := range defs {
		s[name] = Parse(raw)
	}
	return s
}

// Names returns the channel names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample interpolates every track at p. Absent tracks are left out of the
// result.
func (s Set) Sample(p float64) map[string][]float64 {
	out := make(map[string][]float64, len(s))
	for name, track := range s {
		if v := Interpolate(track, p); v != nil {
			out[name] = v
		}
	}
	return out
}
