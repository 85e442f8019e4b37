package game

import "math"

// 波形类型
const (
	waveSine = iota
	waveSaw
	waveTriangle
)

// toneSpec 描述一个扫频音效
type toneSpec struct {
	wave      int
	startFreq float64 // 起始频率（Hz）
	endFreq   float64 // 结束频率（Hz）
	sweep     float64 // 扫频时长（秒）
	expSweep  bool    // 指数扫频（否则线性）
	peak      float64 // 峰值增益
	attack    float64 // 线性起音时长（秒）
	duration  float64 // 总时长（秒），起音后指数衰减到 0.01
}

// 受击音效参数
var (
	enemyHitTone = toneSpec{
		wave: waveSaw, startFreq: 400, endFreq: 100, sweep: 0.2, expSweep: true,
		peak: 0.8, attack: 0.02, duration: 0.25,
	}
	playerHitTone = toneSpec{
		wave: waveTriangle, startFreq: 300, endFreq: 150, sweep: 0.3, expSweep: false,
		peak: 0.6, attack: 0.05, duration: 0.35,
	}
)

// toneFor 返回音效类型对应的参数
func toneFor(kind CueKind) toneSpec {
	if kind == CuePlayerHit {
		return playerHitTone
	}
	return enemyHitTone
}

// frequencyAt 返回 t 秒时的瞬时频率
func (s toneSpec) frequencyAt(t float64) float64 {
	if t >= s.sweep || s.sweep <= 0 {
		return s.endFreq
	}
	ratio := t / s.sweep
	if s.expSweep {
		return s.startFreq * math.Pow(s.endFreq/s.startFreq, ratio)
	}
	return s.startFreq + (s.endFreq-s.startFreq)*ratio
}

// gainAt 返回 t 秒时的包络增益
func (s toneSpec) gainAt(t float64) float64 {
	if t < s.attack {
		return s.peak * t / s.attack
	}
	decay := s.duration - s.attack
	if decay <= 0 {
		return s.peak
	}
	ratio := math.Min(1, (t-s.attack)/decay)
	return s.peak * math.Pow(0.01/s.peak, ratio)
}

// synthesize 生成单声道浮点采样
func (s toneSpec) synthesize(sampleRate int) []float64 {
	n := int(s.duration * float64(sampleRate))
	buf := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		buf[i] = oscillate(s.wave, phase) * s.gainAt(t)
		phase += s.frequencyAt(t) / float64(sampleRate)
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

// oscillate 返回相位 [0, 1) 处的波形值
func oscillate(wave int, phase float64) float64 {
	switch wave {
	case waveSaw:
		return 2 * (phase - 0.5)
	case waveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// panGains 等功率声像：pan=-1 只有左声道，pan=1 只有右声道
func panGains(pan float64) (left, right float64) {
	pan = math.Max(-1, math.Min(1, pan))
	angle := (pan + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// encodeStereo 把单声道采样编码为 16 位小端立体声 PCM
func encodeStereo(mono []float64, pan float64) []byte {
	left, right := panGains(pan)
	out := make([]byte, len(mono)*4)
	for i, v := range mono {
		l := toInt16(v * left)
		r := toInt16(v * right)
		out[4*i] = byte(l)
		out[4*i+1] = byte(l >> 8)
		out[4*i+2] = byte(r)
		out[4*i+3] = byte(r >> 8)
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// musicLoop 生成一段循环背景音乐（低音琶音）
func musicLoop(sampleRate int) []float64 {
	notes := []float64{110, 130.81, 164.81, 130.81, 98, 123.47, 146.83, 123.47}
	const noteLen = 0.25
	perNote := int(noteLen * float64(sampleRate))
	buf := make([]float64, 0, perNote*len(notes))
	for _, freq := range notes {
		phase := 0.0
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(perNote)
			env := math.Min(1, t*20) * (1 - t)
			buf = append(buf, oscillate(waveTriangle, phase)*0.5*env)
			phase += freq / float64(sampleRate)
			if phase >= 1 {
				phase -= 1
			}
		}
	}
	return buf
}
