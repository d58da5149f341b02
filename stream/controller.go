package stream

import "github.com/matt-g-everett/scrolltx/util"

// Controller moves the displayed progress towards the latest requested
// progress, so that large scroll jumps play out over a transition instead of
// snapping.
type Controller struct {
	animation           Animation
	current             float64
	target              float64
	transitionIncrement float64
}

// NewController creates an instance of a Controller. A zero transition time
// jumps straight to each new target.
func NewController(animation Animation, frameRate float64, transitionTimeSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.current = 0.0
	c.target = 0.0
	if frameRate > 0 && transitionTimeSecs > 0 {
		c.transitionIncrement = 1.0 / (frameRate * transitionTimeSecs)
	}
	return c
}

// SetTarget sets the progress the controller moves towards, clamped to [0,1].
func (c *Controller) SetTarget(progress float64) {
	c.target = util.Clamp01(progress)
}

// Current returns the displayed progress.
func (c *Controller) Current() float64 {
	return c.current
}

// Settled reports whether the displayed progress has reached the target.
func (c *Controller) Settled() bool {
	return c.current == c.target
}

// CalculateFrame steps the displayed progress and renders it.
func (c *Controller) CalculateFrame() *Frame {
	c.step()
	return c.animation.CalculateFrame(c.current)
}

func (c *Controller) step() {
	if c.transitionIncrement == 0 {
		c.current = c.target
		return
	}

	diff := c.target - c.current
	switch {
	case diff > c.transitionIncrement:
		c.current += c.transitionIncrement
	case diff < -c.transitionIncrement:
		c.current -= c.transitionIncrement
	default:
		c.current = c.target
	}
}
