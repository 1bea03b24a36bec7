package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

// Record keys.
const (
	KeySettings     = "settings"
	KeyStats        = "stats"
	KeyAchievements = "achievements"
)

// Backend is a key/value store for profile records.
// LoadItem returns nil, nil for a missing key.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, value []byte) error
}

// achievementRecord is one entry of the persisted achievement list.
type achievementRecord struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
}

// Profile reads and writes the player's settings, statistics and
// achievements. Loading never fails: missing or malformed records yield
// defaults.
type Profile struct {
	backend Backend
	logger  *log.Logger
}

// NewProfile creates a profile over backend. A nil logger discards output.
func NewProfile(backend Backend, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Profile{backend: backend, logger: logger}
}

// load decodes key into v. It returns false when the record is missing or
// unreadable, leaving v untouched.
func (p *Profile) load(key string, v any) bool {
	data, err := p.backend.LoadItem(key)
	if err != nil {
		p.logger.Warn("could not load record", "key", key, "error", err)
		return false
	}
	if len(data) == 0 {
		p.logger.Debug("no saved record, using defaults", "key", key)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		p.logger.Warn("could not parse record, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Profile) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", key, err)
	}
	return p.backend.SaveItem(key, data)
}

// LoadSettings returns the saved settings or the defaults.
func (p *Profile) LoadSettings() config.Settings {
	s := config.DefaultSettings()
	if !p.load(KeySettings, &s) {
		return config.DefaultSettings()
	}
	if !s.Difficulty.Valid() {
		s.Difficulty = config.DifficultyNormal
	}
	if !s.Effects.Valid() {
		s.Effects = config.EffectsHigh
	}
	return s.Normalize()
}

// SaveSettings persists settings.
func (p *Profile) SaveSettings(s config.Settings) error {
	return p.save(KeySettings, s.Normalize())
}

// LoadStats returns the saved statistics or zero values.
func (p *Profile) LoadStats() runner.Stats {
	var st runner.Stats
	if !p.load(KeyStats, &st) {
		return runner.Stats{}
	}
	return st
}

// SaveStats persists statistics.
func (p *Profile) SaveStats(st runner.Stats) error {
	return p.save(KeyStats, st)
}

// LoadAchievements returns unlock flags index-aligned with
// runner.Achievements. Records are matched by ID, so unknown entries are
// ignored and new definitions start locked.
func (p *Profile) LoadAchievements() []bool {
	unlocked := make([]bool, len(runner.Achievements))

	var records []achievementRecord
	if !p.load(KeyAchievements, &records) {
		return unlocked
	}

	byID := make(map[string]bool, len(records))
	for _, r := range records {
		byID[r.ID] = r.Unlocked
	}
	for i, a := range runner.Achievements {
		unlocked[i] = byID[a.ID]
	}
	return unlocked
}

// SaveAchievements persists unlock flags as an ordered list of records.
func (p *Profile) SaveAchievements(unlocked []bool) error {
	records := make([]achievementRecord, len(runner.Achievements))
	for i, a := range runner.Achievements {
		records[i] = achievementRecord{ID: a.ID}
		if i < len(unlocked) {
			records[i].Unlocked = unlocked[i]
		}
	}
	return p.save(KeyAchievements, records)
}

// SaveProgress persists statistics and achievements together.
func (p *Profile) SaveProgress(stats runner.Stats, unlocked []bool) error {
	if err := p.SaveStats(stats); err != nil {
		return err
	}
	return p.SaveAchievements(unlocked)
}

var _ runner.ProgressSaver = (*Profile)(nil)

// prefixed namespaces every key of an underlying backend.
type prefixed struct {
	backend Backend
	prefix  string
}

// WithPrefix returns a Backend that stores keys as prefix + "." + key.
// Used to give every SSH user a separate profile in one database.
func WithPrefix(b Backend, prefix string) Backend {
	if prefix == "" {
		return b
	}
	return prefixed{backend: b, prefix: prefix}
}

func (p prefixed) LoadItem(key string) ([]byte, error) {
	return p.backend.LoadItem(p.prefix + "." + key)
}

func (p prefixed) SaveItem(key string, value []byte) error {
	return p.backend.SaveItem(p.prefix+"."+key, value)
}
