package keyframe

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Parse reads a track definition of the form "t:v,v,...;t:v,v,...".
// Empty segments are skipped, blank values are 0 and numbers that fail to
// parse become NaN. The time only needs to start with a number.
// It returns nil when the definition holds no keyframes.
func Parse(raw string) Track {
	if raw == "" {
		return nil
	}

	var track Track
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		timePart, valuePart, found := strings.Cut(segment, ":")
		var v []float64
		if found {
			components := strings.Split(valuePart, ",")
			v = make([]float64, len(components))
			for i, c := range components {
				v[i] = parseValue(c)
			}
		} else {
			v = []float64{math.NaN()}
		}

		track = append(track, Keyframe{T: parseTime(timePart), V: v})
	}

	if len(track) == 0 {
		return nil
	}

	sort.SliceStable(track, func(i, j int) bool {
		return track[i].T < track[j].T
	})

	return track
}

var leadingNumber = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseValue reads a whole token. Blank tokens are 0 and out of range
// values keep the signed infinity.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return parseFloat(s)
}

// parseTime reads the leading number of s and ignores any trailing text,
// so "0.5s" is 0.5.
func parseTime(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	return parseFloat(m)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
