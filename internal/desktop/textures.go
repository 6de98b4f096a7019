package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"lanerunner/internal/game"
	"lanerunner/internal/hud"
)

// All textures are square RGBA8 images generated at startup.
const (
	crateSize  = 64
	carSize    = 8
	trackSize  = 32
	finishSize = 8
	moonSize   = 16
)

func shade(c hud.Color, f float32) hud.Color {
	ch := func(v uint8) uint8 {
		x := float32(v) * f
		if x < 0 {
			return 0
		}
		if x > 255 {
			return 255
		}
		return uint8(x)
	}
	return hud.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

type texImage struct {
	pix  []uint8
	size int
}

func newTexImage(size int) texImage {
	return texImage{pix: make([]uint8, size*size*4), size: size}
}

func (t texImage) set(x, y int, col hud.Color) {
	i := (y*t.size + x) * 4
	t.pix[i+0] = col.R
	t.pix[i+1] = col.G
	t.pix[i+2] = col.B
	t.pix[i+3] = 255
}

func (t texImage) at(x, y int) hud.Color {
	i := (y*t.size + x) * 4
	return hud.Color{R: t.pix[i], G: t.pix[i+1], B: t.pix[i+2]}
}

// cratePixels draws a wooden crate with a steel frame and a diagonal brace.
func cratePixels(r *game.Rand) texImage {
	t := newTexImage(crateSize)
	wood := hud.Color{R: 150, G: 96, B: 48}
	steel := hud.Color{R: 150, G: 152, B: 160}
	const frame = 5
	const plank = 12

	for y := 0; y < crateSize; y++ {
		for x := 0; x < crateSize; x++ {
			onFrame := x < frame || y < frame || x >= crateSize-frame || y >= crateSize-frame
			onBrace := !onFrame && (x-y <= 3 && y-x <= 3)
			var col hud.Color
			switch {
			case onFrame:
				col = shade(steel, 1+r.RangeF32(-0.08, 0.08))
				if x == frame-1 || y == frame-1 || x == crateSize-frame || y == crateSize-frame {
					col = shade(col, 0.6)
				}
			case onBrace:
				col = shade(wood, 1.15+r.RangeF32(-0.06, 0.06))
			default:
				col = shade(wood, 1+r.RangeF32(-0.12, 0.12))
				if (y-frame)%plank == 0 {
					col = shade(col, 0.55)
				}
			}
			t.set(x, y, col)
		}
	}
	return t
}

// carPixels uses horizontal bands: front, windscreen, roof, rear.
func carPixels(r *game.Rand) texImage {
	t := newTexImage(carSize)
	body := hud.Color{
		R: uint8(200 + r.RangeF32(-40, 40)),
		G: uint8(30 + r.RangeF32(-20, 20)),
		B: uint8(60 + r.RangeF32(-20, 20)),
	}
	window := hud.Color{R: 140, G: 170, B: 200}
	roof := shade(body, 0.7)

	for y := 0; y < carSize; y++ {
		var col hud.Color
		switch y / 2 {
		case 1:
			col = window
		case 2:
			col = roof
		default:
			col = body
		}
		for x := 0; x < carSize; x++ {
			t.set(x, y, col)
		}
	}
	return t
}

// trackPixels is dark asphalt with lane markings down the middle.
func trackPixels(r *game.Rand) texImage {
	t := newTexImage(trackSize)
	asphalt := hud.Color{R: 38, G: 38, B: 44}
	mark := hud.Color{R: 220, G: 210, B: 90}
	for y := 0; y < trackSize; y++ {
		for x := 0; x < trackSize; x++ {
			col := shade(asphalt, 1+r.RangeF32(-0.15, 0.15))
			if (x == trackSize/2 || x == trackSize/2-1) && (y/4)%2 == 0 {
				col = mark
			}
			t.set(x, y, col)
		}
	}
	return t
}

func finishPixels() texImage {
	t := newTexImage(finishSize)
	for y := 0; y < finishSize; y++ {
		for x := 0; x < finishSize; x++ {
			if (x+y)%2 == 0 {
				t.set(x, y, hud.White)
			} else {
				t.set(x, y, hud.Color{R: 20, G: 20, B: 20})
			}
		}
	}
	return t
}

// moonPixels is pale grey with a few darker craters.
func moonPixels(r *game.Rand) texImage {
	t := newTexImage(moonSize)
	base := hud.Color{R: 215, G: 215, B: 200}
	for y := 0; y < moonSize; y++ {
		for x := 0; x < moonSize; x++ {
			t.set(x, y, shade(base, 1+r.RangeF32(-0.05, 0.05)))
		}
	}
	for i := 0; i < 5; i++ {
		cx := int(r.RangeF32(2, moonSize-2))
		cy := int(r.RangeF32(2, moonSize-2))
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				t.set(cx+dx, cy+dy, shade(base, 0.7))
			}
		}
	}
	return t
}

func whitePixels() texImage {
	t := newTexImage(1)
	t.set(0, 0, hud.White)
	return t
}

func uploadTexture(t texImage, filter int32, wrap int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.size), int32(t.size), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.pix))
	return tex
}
