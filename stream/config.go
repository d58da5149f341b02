package stream

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// MaxFrameRate is the highest frameRate ReadConfig accepts.
const MaxFrameRate = 1000

// Config for the streamer, read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Progress string `yaml:"progress"`
			Frame    string `yaml:"frame"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	FrameRate      float64                `yaml:"frameRate"`
	TransitionSecs float64                `yaml:"transitionSecs"`
	Easing         string                 `yaml:"easing"`
	Strict         bool                   `yaml:"strict"`
	Tracks         map[string]string      `yaml:"tracks"`
	Channels       map[string]ChannelKind `yaml:"channels"`
}

// ReadConfig decodes a Config and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("decode config: %w", err)
	}

	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "scrolltx"
	}
	if c.Mqtt.Topics.Progress == "" {
		c.Mqtt.Topics.Progress = "scrolltx/progress"
	}
	if c.Mqtt.Topics.Frame == "" {
		c.Mqtt.Topics.Frame = "scrolltx/frame"
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.FrameRate > MaxFrameRate {
		return c, fmt.Errorf("frameRate must be at most %d, got %v", MaxFrameRate, c.FrameRate)
	}
	if c.TransitionSecs < 0 {
		return c, fmt.Errorf("transitionSecs must not be negative, got %v", c.TransitionSecs)
	}
	for name, kind := range c.Channels {
		if !kind.Valid() {
			return c, fmt.Errorf("channel %q: unknown kind %q", name, kind)
		}
	}

	return c, nil
}
