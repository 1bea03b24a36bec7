package audio

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d is not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
		if total > int(sampleRate)*5 {
			t.Fatal("sound did not end within 5 seconds")
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("stream error: %v", err)
	}
	return total, peak
}

func TestSoundsAreFiniteAndAudible(t *testing.T) {
	tests := []struct {
		sound Sound
		min   time.Duration
		max   time.Duration
	}{
		{SoundFlip, 80 * time.Millisecond, 100 * time.Millisecond},
		{SoundPickup, 200 * time.Millisecond, 220 * time.Millisecond},
		{SoundShieldBreak, 170 * time.Millisecond, 190 * time.Millisecond},
		{SoundCrash, 440 * time.Millisecond, 460 * time.Millisecond},
		{SoundLevelUp, 390 * time.Millisecond, 410 * time.Millisecond},
		{SoundAchievement, 350 * time.Millisecond, 370 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			n, peak := drain(t, NewSound(tc.sound, sampleRate, 1))

			if n < sampleRate.N(tc.min) || n > sampleRate.N(tc.max) {
				t.Errorf("length = %v, expected between %v and %v", sampleRate.D(n), tc.min, tc.max)
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
			if peak > 1.5 {
				t.Errorf("peak %v is clipping", peak)
			}
		})
	}
}

func TestSoundZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, NewSound(SoundCrash, sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume", peak)
	}
}

func TestUnknownSound(t *testing.T) {
	if NewSound(Sound(99), sampleRate, 1) != nil {
		t.Error("unknown sound should produce no streamer")
	}
	if Sound(99).String() != "unknown" {
		t.Errorf("String() = %q", Sound(99).String())
	}
}

func TestSweepStaysInRange(t *testing.T) {
	s := newSweep(200, 800, 50*time.Millisecond, sampleRate)
	buf := make([][2]float64, sampleRate.N(50*time.Millisecond))

	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, buf[i][0])
		}
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained sweep returned %d, %v", n, ok)
	}
}

func TestNoiseIsSeeded(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	newNoise(time.Second, sampleRate, 3).Stream(a)
	newNoise(time.Second, sampleRate, 3).Stream(b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise differs at sample %d", i)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	flat := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	e := newEnvelope(flat, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 200)
	n, _ := e.Stream(buf)

	if n != 100 {
		t.Fatalf("envelope length = %d, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silent attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", buf[50][0])
	}
	if buf[99][0] >= buf[85][0] {
		t.Errorf("release not decreasing: %v >= %v", buf[99][0], buf[85][0])
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		event runner.Event
		sound Sound
		ok    bool
	}{
		{runner.GravityFlippedEvent{}, SoundFlip, true},
		{runner.PowerUpCollectedEvent{}, SoundPickup, true},
		{runner.ShieldBrokenEvent{}, SoundShieldBreak, true},
		{runner.GameOverEvent{}, SoundCrash, true},
		{runner.LevelUpEvent{Level: 2}, SoundLevelUp, true},
		{runner.AchievementUnlockedEvent{}, SoundAchievement, true},
		{runner.GameStartedEvent{}, 0, false},
		{runner.PerfectDodgeEvent{}, 0, false},
	}

	for _, tc := range tests {
		s, ok := SoundFor(tc.event)
		if ok != tc.ok || s != tc.sound {
			t.Errorf("SoundFor(%T) = %v, %v; expected %v, %v", tc.event, s, ok, tc.sound, tc.ok)
		}
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Enabled() {
		t.Fatal("manager enabled before Initialize")
	}

	// Uninitialized managers ignore everything
	sm.Play(SoundCrash)
	sm.HandleEvents([]runner.Event{runner.GameOverEvent{}, runner.LevelUpEvent{}})
	sm.SetVolume(3)
	sm.Cleanup()

	if sm.volume != 1 {
		t.Errorf("volume = %v, expected clamped 1", sm.volume)
	}
}

func TestSoundManagerInitError(t *testing.T) {
	sm := NewSoundManager(nil)
	err := sm.Initialize()
	if err == nil {
		sm.Cleanup()
		t.Skip("audio device available")
	}
	if !strings.HasPrefix(err.Error(), "audio: init speaker: ") {
		t.Errorf("error = %q, expected audio: init speaker prefix", err)
	}
	if sm.Enabled() {
		t.Error("manager enabled after failed Initialize")
	}
}
