package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"lanerunner/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Unit cube spanning [0,1] on every axis so that translate+scale by an
// obstacle's position and scale covers exactly its collision box.
// Per vertex: position(3), normal(3), uv(2).
var cubeVertices = [36 * 8]float32{
	0, 0, 0, 0, 0, -1, 0, 0,
	1, 0, 0, 0, 0, -1, 1, 0,
	1, 1, 0, 0, 0, -1, 1, 1,
	1, 1, 0, 0, 0, -1, 1, 1,
	0, 1, 0, 0, 0, -1, 0, 1,
	0, 0, 0, 0, 0, -1, 0, 0,

	0, 0, 1, 0, 0, 1, 0, 0,
	1, 0, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 0, 0, 1, 1, 1,
	1, 1, 1, 0, 0, 1, 1, 1,
	0, 1, 1, 0, 0, 1, 0, 1,
	0, 0, 1, 0, 0, 1, 0, 0,

	0, 1, 1, -1, 0, 0, 1, 0,
	0, 1, 0, -1, 0, 0, 1, 1,
	0, 0, 0, -1, 0, 0, 0, 1,
	0, 0, 0, -1, 0, 0, 0, 1,
	0, 0, 1, -1, 0, 0, 0, 0,
	0, 1, 1, -1, 0, 0, 1, 0,

	1, 1, 1, 1, 0, 0, 1, 0,
	1, 1, 0, 1, 0, 0, 1, 1,
	1, 0, 0, 1, 0, 0, 0, 1,
	1, 0, 0, 1, 0, 0, 0, 1,
	1, 0, 1, 1, 0, 0, 0, 0,
	1, 1, 1, 1, 0, 0, 1, 0,

	0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, 0, -1, 0, 1, 1,
	1, 0, 1, 0, -1, 0, 1, 0,
	1, 0, 1, 0, -1, 0, 1, 0,
	0, 0, 1, 0, -1, 0, 0, 0,
	0, 0, 0, 0, -1, 0, 0, 1,

	0, 1, 0, 0, 1, 0, 0, 1,
	1, 1, 0, 0, 1, 0, 1, 1,
	1, 1, 1, 0, 1, 0, 1, 0,
	1, 1, 1, 0, 1, 0, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 0,
	0, 1, 0, 0, 1, 0, 0, 1,
}

// Scene layout around the track.
var (
	clearColor  = mgl32.Vec3{0.05, 0.05, 0.05}
	lightOffset = mgl32.Vec3{1.2, 1.0, 2.0}
	lightColor  = mgl32.Vec3{1, 1, 1}
	moonOffset  = mgl32.Vec3{0, 10, -200}
	moonScale   = mgl32.Vec3{5, 5, 5}
	noTint      = mgl32.Vec3{1, 1, 1}
	lostTint    = mgl32.Vec3{1, 0.55, 0.55}
)

const (
	trackMargin  = 3
	trackThick   = 0.5
	trackOverrun = 100
	finishBand   = 3
)

type Renderer struct {
	cubeProg uint32
	cubeVAO  uint32
	cubeVBO  uint32

	uModel      int32
	uView       int32
	uProjection int32
	uLightPos   int32
	uLightColor int32
	uViewPos    int32
	uTint       int32
	uEmissive   int32
	uTex        int32

	crateTex  uint32
	carTex    uint32
	trackTex  uint32
	finishTex uint32
	moonTex   uint32
	whiteTex  uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

// NewRenderer builds the cube program and every texture. seed varies the
// procedural texture noise.
func NewRenderer(seed uint64) (*Renderer, error) {
	prog, err := linkProgram(cubeVertSrc, cubeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}
	r := &Renderer{cubeProg: prog}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(&cubeVertices[0]), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2) // aTexCoords
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))
	r.cubeVAO = vao
	r.cubeVBO = vbo

	gl.UseProgram(prog)
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uProjection = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.uLightPos = gl.GetUniformLocation(prog, gl.Str("uLightPos\x00"))
	r.uLightColor = gl.GetUniformLocation(prog, gl.Str("uLightColor\x00"))
	r.uViewPos = gl.GetUniformLocation(prog, gl.Str("uViewPos\x00"))
	r.uTint = gl.GetUniformLocation(prog, gl.Str("uTint\x00"))
	r.uEmissive = gl.GetUniformLocation(prog, gl.Str("uEmissive\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)
	gl.Uniform3f(r.uLightColor, lightColor.X(), lightColor.Y(), lightColor.Z())
	gl.BindVertexArray(0)

	rng := game.NewRand(seed ^ 0xC0A7)
	r.crateTex = uploadTexture(cratePixels(rng), gl.LINEAR, gl.CLAMP_TO_EDGE)
	r.carTex = uploadTexture(carPixels(rng), gl.NEAREST, gl.CLAMP_TO_EDGE)
	r.trackTex = uploadTexture(trackPixels(rng), gl.NEAREST, gl.REPEAT)
	r.finishTex = uploadTexture(finishPixels(), gl.NEAREST, gl.REPEAT)
	r.moonTex = uploadTexture(moonPixels(rng), gl.NEAREST, gl.CLAMP_TO_EDGE)
	r.whiteTex = uploadTexture(whitePixels(), gl.NEAREST, gl.CLAMP_TO_EDGE)

	if err := r.initFont(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("font: %w", err)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.crateTex, r.carTex, r.trackTex, r.finishTex, r.moonTex, r.whiteTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// DrawScene draws the 3D world for the current session state.
func (r *Renderer) DrawScene(sess *game.Session, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	cam := sess.Camera()
	view := cam.ViewMatrix()
	proj := cam.Projection(float32(fbW) / float32(fbH))
	light := cam.Position.Add(lightOffset)

	gl.UseProgram(r.cubeProg)
	gl.BindVertexArray(r.cubeVAO)
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.Uniform3f(r.uLightPos, light.X(), light.Y(), light.Z())
	gl.Uniform3f(r.uViewPos, cam.Position.X(), cam.Position.Y(), cam.Position.Z())
	gl.ActiveTexture(gl.TEXTURE0)

	for _, b := range sceneBoxes(sess) {
		r.drawBox(b)
	}

	tint := noTint
	if sess.State().GameOverVisible() {
		tint = lostTint
	}
	gl.BindTexture(gl.TEXTURE_2D, r.crateTex)
	for _, o := range sess.Obstacles() {
		r.drawCube(o.Position, o.Scale, tint, 0)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.whiteTex)
	for _, p := range sess.Particles() {
		pos, scale, col := particleCube(p)
		r.drawCube(pos, scale, col, 0.5*p.Fade())
	}

	gl.BindVertexArray(0)
}

type boxKind int

const (
	boxTrack boxKind = iota
	boxFinish
	boxMoon
	boxCar
)

type sceneBox struct {
	kind     boxKind
	pos      mgl32.Vec3
	scale    mgl32.Vec3
	emissive float32
}

// sceneBoxes lists the static and camera-relative props, back to front.
func sceneBoxes(sess *game.Session) []sceneBox {
	cfg := sess.Config()
	cam := sess.Camera()
	player := sess.PlayerBox()

	x0 := cfg.Pool.LaneMin - trackMargin
	width := cfg.Pool.LaneMax + cfg.Pool.Size + trackMargin - x0
	far := cfg.FinishDepth - trackOverrun
	length := cfg.ActorStart.Z() + trackOverrun - far

	return []sceneBox{
		{kind: boxMoon, pos: cam.Position.Add(moonOffset).Sub(moonScale.Mul(0.5)), scale: moonScale, emissive: 1},
		{kind: boxTrack, pos: mgl32.Vec3{x0, game.TrackSurface - trackThick, far}, scale: mgl32.Vec3{width, trackThick, length}},
		{kind: boxFinish, pos: mgl32.Vec3{x0, game.TrackSurface, cfg.FinishDepth - finishBand}, scale: mgl32.Vec3{width, 0.05, finishBand}, emissive: 0.6},
		{kind: boxCar, pos: player.Pos, scale: player.Scale},
	}
}

// particleCube maps a particle onto a cube draw: min corner, size and
// tint. Fading particles shrink rather than blend.
func particleCube(p game.Particle) (pos, scale, tint mgl32.Vec3) {
	size := p.Size * (0.4 + 0.6*p.Fade())
	c := p.Color()
	half := size * 0.5
	return p.Pos.Sub(mgl32.Vec3{half, half, half}),
		mgl32.Vec3{size, size, size},
		mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (r *Renderer) drawBox(b sceneBox) {
	var tex uint32
	switch b.kind {
	case boxTrack:
		tex = r.trackTex
	case boxFinish:
		tex = r.finishTex
	case boxMoon:
		tex = r.moonTex
	case boxCar:
		tex = r.carTex
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	r.drawCube(b.pos, b.scale, noTint, b.emissive)
}

func (r *Renderer) drawCube(pos, scale, tint mgl32.Vec3, emissive float32) {
	model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform3f(r.uTint, tint.X(), tint.Y(), tint.Z())
	gl.Uniform1f(r.uEmissive, emissive)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
}
