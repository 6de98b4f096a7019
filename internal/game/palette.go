package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addChannel(c.R, dr), G: addChannel(c.G, dg), B: addChannel(c.B, db)}
}

func addChannel(v uint8, d int) uint8 {
	x := int(v) + d
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func lerpRGB(a, b RGB, t float32) RGB {
	t = clampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}

// Palette holds the colours of the effects the session spawns.
var Palette = struct {
	CrateWood  RGB
	CrateSteel RGB
	SparkHot   RGB
	SparkCool  RGB
	Confetti   [4]RGB
}{
	CrateWood:  RGB{R: 150, G: 96, B: 48},
	CrateSteel: RGB{R: 150, G: 152, B: 160},
	SparkHot:   RGB{R: 255, G: 240, B: 160},
	SparkCool:  RGB{R: 255, G: 90, B: 20},
	Confetti: [4]RGB{
		{R: 255, G: 220, B: 60},
		{R: 90, G: 220, B: 255},
		{R: 255, G: 90, B: 170},
		{R: 120, G: 255, B: 120},
	},
}
