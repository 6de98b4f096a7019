package terminal

import (
	"github.com/gdamore/tcell/v2"

	"lanerunner/internal/hud"
)

var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTrack    = styleBase.Foreground(tcell.ColorDarkGray)
	styleObstacle = styleBase.Foreground(tcell.ColorOrange)
	stylePlayer   = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleFinish   = styleBase.Foreground(tcell.ColorGreen)
)

const (
	runeTrack    = '.'
	runeWall     = '|'
	runeObstacle = '#'
	runePlayer   = 'A'
	runeFinish   = '='
	runeParticle = '*'
)

// field is the screen rectangle holding the lanes, with the mapping from
// world X/Z to cells. Row 0 is ViewDepth units ahead of the car.
type field struct {
	x0, y0, w, h int
	xMin, xMax   float32
	zNear        float32 // car front, drawn on the bottom row
}

func (f field) col(x float32) int {
	return f.x0 + int((x-f.xMin)/(f.xMax-f.xMin)*float32(f.w))
}

func (f field) row(z float32) int {
	ahead := f.zNear - z
	return f.y0 + f.h - 1 - int(ahead/ViewDepth*float32(f.h))
}

// fill draws r over the cells covered by the box [x0,x1] x [z0,z1],
// clipped to the field. Boxes always get at least one cell.
func (f field) fill(s tcell.Screen, x0, x1, z0, z1 float32, r rune, st tcell.Style) {
	c0, c1 := f.col(x0), f.col(x1)
	r0, r1 := f.row(z1), f.row(z0)
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	for y := r0; y <= r1; y++ {
		if y < f.y0 || y >= f.y0+f.h {
			continue
		}
		for x := c0; x <= c1; x++ {
			if x < f.x0 || x >= f.x0+f.w {
				continue
			}
			s.SetContent(x, y, r, nil, st)
		}
	}
}

// Draw renders the current session state and shows the screen.
func (d *Driver) Draw() {
	s := d.screen
	w, h := s.Size()
	s.Clear()
	if w < 10 || h < 6 {
		s.Show()
		return
	}

	cfg := d.sess.Config()
	player := d.sess.PlayerBox()
	f := field{
		x0:    1,
		y0:    1,
		w:     w - 2,
		h:     h - 3,
		xMin:  cfg.Pool.LaneMin,
		xMax:  cfg.Pool.LaneMax + cfg.Pool.Size,
		zNear: player.Pos.Z(),
	}

	for y := f.y0; y < f.y0+f.h; y++ {
		s.SetContent(0, y, runeWall, nil, styleTrack)
		s.SetContent(w-1, y, runeWall, nil, styleTrack)
		for x := f.x0; x < f.x0+f.w; x++ {
			s.SetContent(x, y, runeTrack, nil, styleTrack)
		}
	}

	if fr := f.row(cfg.FinishDepth); fr >= f.y0 && fr < f.y0+f.h {
		for x := f.x0; x < f.x0+f.w; x++ {
			s.SetContent(x, fr, runeFinish, nil, styleFinish)
		}
	}

	for _, o := range d.sess.Obstacles() {
		p, sc := o.Position, o.Scale
		f.fill(s, p.X(), p.X()+sc.X(), p.Z(), p.Z()+sc.Z(), runeObstacle, styleObstacle)
	}

	for _, p := range d.sess.Particles() {
		c := p.Color()
		st := styleBase.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		f.fill(s, p.Pos.X(), p.Pos.X(), p.Pos.Z(), p.Pos.Z(), runeParticle, st)
	}

	pp, ps := player.Pos, player.Scale
	f.fill(s, pp.X(), pp.X()+ps.X(), pp.Z(), pp.Z()+ps.Z(), runePlayer, stylePlayer)

	drawText(s, 0, 0, hud.Status(d.sess), styleBase)
	drawText(s, 0, h-1, "W/UP go  A/D steer  R reset  Q quit", styleTrack)

	lines := hud.Overlay(d.sess.State())
	top := f.y0 + (f.h-len(lines))/2
	for i, l := range lines {
		st := styleBase.Foreground(tcell.NewRGBColor(int32(l.Color.R), int32(l.Color.G), int32(l.Color.B))).Bold(l.Scale > 1)
		drawText(s, (w-len(l.Text))/2, top+i, l.Text, st)
	}

	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}
