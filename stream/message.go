package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matt-g-everett/scrolltx/util"
)

// ErrBadProgress is returned for progress payloads that cannot be read.
var ErrBadProgress = errors.New("bad progress message")

// ProgressMessage carries either a progress value or the scroll geometry to
// derive it from.
type ProgressMessage struct {
	Progress       *float64 `json:"progress,omitempty"`
	Offset         *float64 `json:"offset,omitempty"`
	ContentHeight  *float64 `json:"contentHeight,omitempty"`
	ViewportHeight *float64 `json:"viewportHeight,omitempty"`
}

// ParseProgress reads a bare number or a JSON ProgressMessage.
func ParseProgress(payload []byte) (float64, error) {
	text := strings.TrimSpace(string(payload))
	if p, err := strconv.ParseFloat(text, 64); err == nil {
		return checkProgress(p)
	}

	var m ProgressMessage
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadProgress, err)
	}

	switch {
	case m.Progress != nil:
		return checkProgress(*m.Progress)
	case m.Offset != nil && m.ContentHeight != nil && m.ViewportHeight != nil:
		return checkProgress(util.ScrollProgress(*m.Offset, *m.ContentHeight, *m.ViewportHeight))
	}
	return 0, fmt.Errorf("%w: need progress or offset, contentHeight and viewportHeight", ErrBadProgress)
}

func checkProgress(p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrBadProgress, p)
	}
	return p, nil
}
