// Package tui shows the globe in a terminal using half-block cells, two
// vertical pixels per cell.
package tui

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"globe3d/internal/control"
	"globe3d/internal/globe"
	"globe3d/internal/raster"
)

const (
	halfBlock = '▀'
	wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
)

var textStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(200, 200, 200)).
	Background(tcell.ColorBlack)

// View owns a tcell screen and the globe it shows. All globe access
// happens on the goroutine calling Run (or Handle/Draw directly).
type View struct {
	screen tcell.Screen
	globe  *globe.Globe
	ctl    *control.Controller
	pal    raster.Palette
	log    *zap.Logger

	img     *image.RGBA
	buttons tcell.ButtonMask
}

func New(screen tcell.Screen, g *globe.Globe, ctl *control.Controller, pal raster.Palette, log *zap.Logger) *View {
	opts := g.Options()
	return &View{
		screen: screen,
		globe:  g,
		ctl:    ctl,
		pal:    pal,
		log:    log,
		img:    image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
}

// viewport maps half-block pixels onto the canvas, letterboxed to keep
// the canvas aspect.
type viewport struct {
	scale      float64
	offX, offY float64
}

func (v *View) viewport() viewport {
	cols, rows := v.screen.Size()
	w, h := float64(v.img.Bounds().Dx()), float64(v.img.Bounds().Dy())
	s := min(float64(cols)/w, float64(rows*2)/h)
	return viewport{
		scale: s,
		offX:  (float64(cols) - w*s) / 2,
		offY:  (float64(rows*2) - h*s) / 2,
	}
}

// canvas converts a half-block pixel center to canvas coordinates.
func (vp viewport) canvas(px, py float64) (float64, float64) {
	return (px + 0.5 - vp.offX) / vp.scale, (py + 0.5 - vp.offY) / vp.scale
}

func (v *View) sample(vp viewport, px, py int) tcell.Color {
	x, y := vp.canvas(float64(px), float64(py))
	if x < 0 || y < 0 {
		return toColor(v.pal.Space)
	}
	ix, iy := int(x), int(y)
	if !(image.Point{ix, iy}.In(v.img.Bounds())) {
		return toColor(v.pal.Space)
	}
	return toColor(v.img.RGBAAt(ix, iy))
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints the current frame and the help overlay, then shows it.
func (v *View) Draw() {
	raster.Paint(v.img, v.globe.Frame(), v.pal)

	cols, rows := v.screen.Size()
	vp := v.viewport()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := v.sample(vp, x, 2*y)
			bottom := v.sample(vp, x, 2*y+1)
			v.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	for i, line := range globe.HelpLines(v.globe.ZoomLevel()) {
		if i >= rows {
			break
		}
		for j, r := range []rune(line) {
			if j >= cols {
				break
			}
			v.screen.SetContent(j, i, r, nil, textStyle)
		}
	}
	v.screen.Show()
}

// Handle applies one event. It returns false when the user asked to quit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Rune() == 'q' {
				return false
			}
			v.ctl.Key(ev.Rune())
		}

	case *tcell.EventMouse:
		v.handleMouse(ev)

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := v.viewport().canvas(float64(cx), float64(2*cy)+0.5)

	mask := ev.Buttons()
	switch {
	case mask&tcell.WheelUp != 0:
		v.ctl.Scroll(1)
	case mask&tcell.WheelDown != 0:
		v.ctl.Scroll(-1)
	}

	pressed := mask &^ wheelMask
	for _, b := range []struct {
		mask tcell.ButtonMask
		btn  control.Button
	}{
		{tcell.ButtonPrimary, control.ButtonLeft},
		{tcell.ButtonSecondary, control.ButtonRight},
	} {
		was, is := v.buttons&b.mask != 0, pressed&b.mask != 0
		switch {
		case is && !was:
			v.ctl.Press(b.btn, x, y)
		case was && !is:
			v.ctl.Release(b.btn)
		}
	}
	v.buttons = pressed

	v.ctl.Motion(x, y)
}

// Run polls events on a separate goroutine and draws at fps until ctx is
// done or the user quits.
func (v *View) Run(ctx context.Context, fps int) error {
	v.screen.EnableMouse()
	v.screen.Clear()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.Handle(ev) {
				v.log.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			v.Draw()
		}
	}
}
