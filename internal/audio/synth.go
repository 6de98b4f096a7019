package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind, seed uint64) []byte {
	switch kind {
	case SoundStart:
		return genStart()
	case SoundCrash:
		return genCrash(seed)
	case SoundWin:
		return genWin()
	case SoundReset:
		return genReset()
	}
	return nil
}

// genStart: rising two-step blip, an engine catching.
func genStart() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		freq := 440.0
		if p > 0.45 {
			freq = 660
		}
		s := fm(t, freq, 1.0, 0.8) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCrash: noise impact with a sub thump, then the slow descending minor
// chord of the game-over sting.
func genCrash(seed uint64) []byte {
	dur := 1.1
	n := int(dur * SampleRate)
	mix := make([]float64, n)

	lp1, lp2 := 0.0, 0.0
	subPhase := 0.0
	impact := int(0.35 * SampleRate)
	for i := 0; i < impact; i++ {
		p := float64(i) / float64(impact)
		subFreq := 120 * math.Pow(30.0/120.0, p)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5) * 0.6

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*6) * 0.45

		crack := 0.0
		if p < 0.04 {
			crack = lcg(&seed) * (1 - p/0.04) * 0.8
		}
		mix[i] += sub + body + crack
	}

	notes := []struct{ freq, onset float64 }{
		{329.63, 0.30}, // E4
		{261.63, 0.44}, // C4
		{220.00, 0.58}, // A3
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.08
			mix[i] += s
		}
	}

	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s*0.86))
	}
	return buf
}

// genWin: ascending FM bell staircase, each note ringing over the next.
func genWin() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genReset: crisp click plus a brief falling tone.
func genReset() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
