// Package audio plays procedurally generated sound effects for game events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes sound effects onto the speaker.
// All methods are safe to call when initialization failed; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. A nil logger discards output.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.8,
		logger: logger,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sound is playing to a device.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetVolume sets the master volume, clamped to [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = max(0, min(1, v))
}

// Play starts a sound effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	st := NewSound(s, sampleRate, sm.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// HandleEvents plays the sound for each event that has one.
func (sm *SoundManager) HandleEvents(events []runner.Event) {
	for _, e := range events {
		if s, ok := SoundFor(e); ok {
			sm.Play(s)
		}
	}
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	sm.logger.Debug("audio closed")
}

// SoundFor maps a game event to its sound effect.
func SoundFor(e runner.Event) (Sound, bool) {
	switch e.(type) {
	case runner.GravityFlippedEvent:
		return SoundFlip, true
	case runner.PowerUpCollectedEvent:
		return SoundPickup, true
	case runner.ShieldBrokenEvent:
		return SoundShieldBreak, true
	case runner.GameOverEvent:
		return SoundCrash, true
	case runner.LevelUpEvent:
		return SoundLevelUp, true
	case runner.AchievementUnlockedEvent:
		return SoundAchievement, true
	default:
		return 0, false
	}
}
