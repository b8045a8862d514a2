package stream

import (
	"fmt"
	"log"
	"time"
)

// Control commands accepted over the control topic.
const (
	CommandLoop     = "loop"
	CommandTestCard = "testcard"
)

// Controller manages which animation is on air and crossfades between
// them. Commands are applied on the streamer goroutine, so there is
// no shared mutable state to guard.
type Controller struct {
	config              Config
	glyphs              *GlyphSet
	animation           Animation
	nextAnimation       Animation
	transition          float64
	transitionIncrement float64
}

// NewController creates a Controller showing the glyph loop.
func NewController(config Config, glyphs *GlyphSet) (*Controller, error) {
	c := new(Controller)
	c.config = config
	c.glyphs = glyphs
	c.transition = 0.0
	c.transitionIncrement = 1.0 / (config.Widget.FrameRate * config.Widget.TransitionSecs)

	loop, err := c.newLoop(time.Now())
	if err != nil {
		return nil, err
	}
	c.animation = loop

	return c, nil
}

// newLoop builds a compositor anchored to a fresh reference instant.
// Only now − reference matters downstream, so re-minting the
// reference on every switch reproduces the same visual state.
func (c *Controller) newLoop(now time.Time) (Animation, error) {
	ref := NewReference(now, c.config.Widget.ReferenceBias())
	return NewCompositor(c.config.Widget, ref, c.glyphs)
}

// CalculateFrame renders the current animation, blending toward the
// next one while a transition is in flight.
func (c *Controller) CalculateFrame(now time.Time) *Frame {
	var f *Frame
	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(now)
		f2 := c.nextAnimation.CalculateFrame(now)
		f = f1.InterpolateFrame(f2, c.transition)
		c.transition += c.transitionIncrement

		if c.transition >= 1.0 {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0.0
		}
	} else {
		f = c.animation.CalculateFrame(now)
	}

	return f
}

// Apply starts a crossfade to the animation the command names.
func (c *Controller) Apply(command string, now time.Time) error {
	switch command {
	case CommandLoop:
		loop, err := c.newLoop(now)
		if err != nil {
			return err
		}
		c.nextAnimation = loop
	case CommandTestCard:
		c.nextAnimation = NewTestCard(c.config.Widget,
			NewReference(now, c.config.Widget.ReferenceBias()), c.glyphs)
	default:
		return fmt.Errorf("unknown control command %q", command)
	}

	log.Printf("switching animation to %s", command)
	return nil
}
