package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"lanerunner/internal/game"
	"lanerunner/internal/hud"
)

// Base pixel scale of one font cell on screen.
const hudScale = 3

// initFont uploads the glyph atlas and sets up the text rendering pipeline.
func (r *Renderer) initFont() error {
	atlas := hud.BuildAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(atlas.W), int32(atlas.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// appendGlyph queues a single character as a textured quad in screen
// pixel space. Spaces advance without emitting geometry.
func appendGlyph(buf []float32, ch rune, sx, sy, scale float32, col hud.Color) []float32 {
	ch = hud.Normalize(ch)
	if ch == ' ' {
		return buf
	}
	u0, v0, u1, v1 := hud.UV(ch)

	w := float32(hud.GlyphW) * scale
	h := float32(hud.GlyphH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	return append(buf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// appendString queues text at screen pixel position (sx, sy).
func appendString(buf []float32, text string, sx, sy, scale float32, col hud.Color) []float32 {
	advance := float32(hud.CellW) * scale
	x := sx
	for _, ch := range text {
		buf = appendGlyph(buf, ch, x, sy, scale, col)
		x += advance
	}
	return buf
}

// TextWidth returns the width in screen pixels of a single line at scale.
func TextWidth(text string, scale float32) float32 {
	return float32(len([]rune(text))*hud.CellW) * scale
}

func (r *Renderer) DrawString(text string, sx, sy, scale float32, col hud.Color) {
	r.textBuf = appendString(r.textBuf, text, sx, sy, scale, col)
}

// placedLine is a HUD line with its screen position and pixel scale.
type placedLine struct {
	hud.Line
	X, Y, Px float32
}

// hudLayout puts the status line top-left and the overlay lines in a
// centred block.
func hudLayout(sess *game.Session, fbW, fbH int) []placedLine {
	lines := []placedLine{{
		Line: hud.Line{Text: hud.Status(sess), Color: hud.White, Scale: 1},
		X:    16, Y: 16, Px: hudScale,
	}}

	overlay := hud.Overlay(sess.State())
	var total float32
	for _, l := range overlay {
		total += float32(hud.CellH) * l.Scale * hudScale * 1.5
	}
	y := (float32(fbH) - total) * 0.5
	for _, l := range overlay {
		px := l.Scale * hudScale
		lines = append(lines, placedLine{
			Line: l,
			X:    (float32(fbW) - TextWidth(l.Text, px)) * 0.5,
			Y:    y,
			Px:   px,
		})
		y += float32(hud.CellH) * px * 1.5
	}
	return lines
}

// DrawHUD queues the status line and overlay messages and flushes them.
func (r *Renderer) DrawHUD(sess *game.Session, fbW, fbH int) {
	for _, l := range hudLayout(sess, fbW, fbH) {
		r.DrawString(l.Text, l.X, l.Y, l.Px, l.Color)
	}
	r.FlushText(fbW, fbH)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
	r.textBuf = r.textBuf[:0]
}
