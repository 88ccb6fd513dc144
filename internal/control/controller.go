// Package control maps pointer and key input onto globe mutations. It knows
// nothing about windows or terminals; shells translate their events into
// canvas coordinates and call in.
package control

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Target is the view being driven. *globe.Globe satisfies it.
type Target interface {
	Rotate(dx, dy, dz float64)
	Move(dx, dy float64)
	Zoom(factor float64) error
	Reset()
	ZoomLevel() float64
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Settings tune how input becomes motion.
type Settings struct {
	RotateSensitivity float64 // degrees per pixel dragged
	ZoomIn            float64 // factor per wheel step up
	ZoomOut           float64 // factor per wheel step down
}

func DefaultSettings() Settings {
	return Settings{RotateSensitivity: 0.5, ZoomIn: 1.1, ZoomOut: 0.9}
}

// Controller turns drags, wheel steps and key presses into calls on a
// Target. Left drag rotates, right drag pans, the wheel zooms and 'r'
// resets.
type Controller struct {
	target Target
	cfg    Settings
	log    *zap.Logger

	rotating bool
	moving   bool
	last     mgl64.Vec2
	hasLast  bool
}

func New(target Target, cfg Settings, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{target: target, cfg: cfg, log: log}
}

// Press starts a drag with the given button at (x, y).
func (c *Controller) Press(b Button, x, y float64) {
	switch b {
	case ButtonLeft:
		c.rotating = true
	case ButtonRight:
		c.moving = true
	default:
		return
	}
	c.last = mgl64.Vec2{x, y}
	c.hasLast = true
}

// Release ends the button's drag. Any release forgets the last position.
func (c *Controller) Release(b Button) {
	switch b {
	case ButtonLeft:
		c.rotating = false
	case ButtonRight:
		c.moving = false
	}
	c.hasLast = false
}

// Motion reports the pointer at (x, y).
func (c *Controller) Motion(x, y float64) {
	if !c.hasLast {
		return
	}
	pos := mgl64.Vec2{x, y}
	d := pos.Sub(c.last)

	switch {
	case c.rotating:
		// vertical drag tilts about X, horizontal drag spins about Y
		s := c.cfg.RotateSensitivity
		c.target.Rotate(d.Y()*s, d.X()*s, 0)
	case c.moving:
		c.target.Move(d.X(), d.Y())
	}
	c.last = pos
}

// Scroll applies one zoom step per call; positive is up (zoom in).
func (c *Controller) Scroll(dy float64) {
	var factor float64
	switch {
	case dy > 0:
		factor = c.cfg.ZoomIn
	case dy < 0:
		factor = c.cfg.ZoomOut
	default:
		return
	}
	if err := c.target.Zoom(factor); err != nil {
		c.log.Warn("zoom ignored", zap.Float64("factor", factor), zap.Error(err))
		return
	}
	c.log.Debug("zoom", zap.Float64("level", c.target.ZoomLevel()))
}

// Key handles a typed rune. It reports whether the key was used.
func (c *Controller) Key(r rune) bool {
	switch r {
	case 'r', 'R':
		c.target.Reset()
		c.log.Info("view reset")
		return true
	}
	return false
}

// Dragging reports whether a rotate or pan drag is in progress.
func (c *Controller) Dragging() bool {
	return c.rotating || c.moving
}
