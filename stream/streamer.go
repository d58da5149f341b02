package stream

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/matt-g-everett/scrolltx/keyframe"
	"github.com/matt-g-everett/scrolltx/util"
)

// Streamer turns progress updates into frames and publishes them.
type Streamer struct {
	config     Config
	transport  Transport
	animation  *ScrollAnimation
	controller *Controller

	mu     sync.Mutex
	dirty  bool
	latest *Frame
}

// NewStreamer creates an instance of a Streamer. Tracks are parsed once here.
// In strict mode tracks that fail keyframe.Validate are dropped.
func NewStreamer(config Config, transport Transport) (*Streamer, error) {
	easing, err := util.Easing(config.Easing)
	if err != nil {
		return nil, err
	}

	tracks := keyframe.ParseSet(config.Tracks)
	if config.Strict {
		for _, name := range tracks.Names() {
			if err := keyframe.Validate(tracks[name]); err != nil {
				log.Printf("Dropping track %s: %v", name, err)
				delete(tracks, name)
			}
		}
	}
	for _, name := range tracks.Names() {
		if tracks[name] == nil {
			log.Printf("Track %s has no keyframes, leaving channel untouched", name)
		}
	}

	if config.FrameRate <= 0 {
		config.FrameRate = 30
	}

	s := new(Streamer)
	s.config = config
	s.transport = transport
	s.animation = NewScrollAnimation(tracks, config.Channels, easing)
	s.controller = NewController(s.animation, config.FrameRate, config.TransitionSecs)
	s.dirty = true
	s.latest = s.animation.CalculateFrame(0)

	return s, nil
}

// Tracks returns the parsed tracks.
func (s *Streamer) Tracks() keyframe.Set {
	return s.animation.Tracks()
}

// FrameAt renders a frame at p without touching the streamed state.
func (s *Streamer) FrameAt(p float64) *Frame {
	return s.animation.CalculateFrame(p)
}

// Latest returns the most recently calculated frame.
func (s *Streamer) Latest() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// SetProgress records a new target progress for the next frame.
func (s *Streamer) SetProgress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.SetTarget(p)
	s.dirty = true
}

func (s *Streamer) handleProgress(payload []byte) {
	p, err := ParseProgress(payload)
	if err != nil {
		log.Printf("Ignoring progress message %q: %v", payload, err)
		return
	}
	s.SetProgress(p)
}

// Subscribe listens for progress updates.
func (s *Streamer) Subscribe() error {
	topic := s.config.Mqtt.Topics.Progress
	if err := s.transport.Subscribe(topic, s.handleProgress); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	log.Printf("Subscribed to %s", topic)
	return nil
}

// SendFrame publishes a frame if progress changed or a transition is still
// running. It reports whether a frame was sent.
func (s *Streamer) SendFrame() (bool, error) {
	s.mu.Lock()
	if !s.dirty && s.controller.Settled() {
		s.mu.Unlock()
		return false, nil
	}
	f := s.controller.CalculateFrame()
	s.latest = f
	s.dirty = false
	s.mu.Unlock()

	b, err := f.MarshalBinary()
	if err != nil {
		return false, err
	}
	if err := s.transport.Publish(s.config.Mqtt.Topics.Frame, b); err != nil {
		return false, fmt.Errorf("publish frame: %w", err)
	}
	return true, nil
}

// Run sends frames at the configured frame rate until ctx is cancelled.
func (s *Streamer) Run(ctx context.Context) {
	interval := time.Duration(float64(time.Second) / s.config.FrameRate)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	for {
		if _, err := s.SendFrame(); err != nil {
			log.Println(err)
		}

		select {
		case <-ctx.Done():
			return
		case <-publishTimer.C:
		}
	}
}
