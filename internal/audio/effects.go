package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies one of the game's sound effects.
type Sound int

const (
	SoundFlip Sound = iota
	SoundPickup
	SoundShieldBreak
	SoundCrash
	SoundLevelUp
	SoundAchievement
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundFlip:
		return "flip"
	case SoundPickup:
		return "pickup"
	case SoundShieldBreak:
		return "shield-break"
	case SoundCrash:
		return "crash"
	case SoundLevelUp:
		return "level-up"
	case SoundAchievement:
		return "achievement"
	default:
		return "unknown"
	}
}

// sweep is a sine oscillator gliding linearly between two frequencies.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		val := math.Sin(2 * math.Pi * s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise from a seeded source.
type noise struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoise(d time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(seed)), total: rate.N(d)}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		val := g.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// envelope applies a linear attack and release to a stream of fixed length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(d), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is an enveloped sine note.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return newEnvelope(sine, d, 5*time.Millisecond, d/2, rate)
}

// withVolume scales a stream linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewSound builds a fresh streamer for s at volume vol (0 to 1).
func NewSound(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundFlip:
		st = newEnvelope(newSweep(320, 880, 90*time.Millisecond, rate), 90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
		vol *= 0.5
	case SoundPickup:
		st = beep.Seq(
			tone(1046.5, 60*time.Millisecond, rate),
			tone(1318.5, 60*time.Millisecond, rate),
			tone(1568.0, 90*time.Millisecond, rate),
		)
		vol *= 0.5
	case SoundShieldBreak:
		st = beep.Mix(
			withVolume(newEnvelope(newNoise(180*time.Millisecond, rate, 7), 180*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, rate), 0.5),
			withVolume(newEnvelope(newSweep(900, 200, 180*time.Millisecond, rate), 180*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, rate), 0.5),
		)
	case SoundCrash:
		st = beep.Mix(
			withVolume(newEnvelope(newNoise(450*time.Millisecond, rate, 13), 450*time.Millisecond, 2*time.Millisecond, 400*time.Millisecond, rate), 0.7),
			withVolume(tone(60, 450*time.Millisecond, rate), 0.5),
		)
	case SoundLevelUp:
		st = beep.Seq(
			tone(523.3, 80*time.Millisecond, rate),
			tone(659.3, 80*time.Millisecond, rate),
			tone(784.0, 80*time.Millisecond, rate),
			tone(1046.5, 160*time.Millisecond, rate),
		)
		vol *= 0.5
	case SoundAchievement:
		st = beep.Seq(
			beep.Mix(withVolume(tone(880, 120*time.Millisecond, rate), 0.7), withVolume(tone(1760, 120*time.Millisecond, rate), 0.3)),
			beep.Mix(withVolume(tone(1318.5, 240*time.Millisecond, rate), 0.7), withVolume(tone(2637, 240*time.Millisecond, rate), 0.3)),
		)
		vol *= 0.6
	default:
		return nil
	}
	return withVolume(st, vol)
}
