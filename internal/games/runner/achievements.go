package runner

// AchievementKind selects which statistic an achievement watches.
type AchievementKind int

const (
	AchievementScore AchievementKind = iota
	AchievementMaxCombo
	AchievementPowerUps
	AchievementPerfectDodges
)

// Achievement is a static achievement definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Kind        AchievementKind
	Threshold   int
}

// Achievements are the built-in definitions. Persisted unlock flags are
// index-aligned with this list, so new entries go at the end.
var Achievements = []Achievement{
	{ID: "first_blood", Name: "First Blood", Description: "Score 100 points", Kind: AchievementScore, Threshold: 100},
	{ID: "survivor", Name: "Survivor", Description: "Score 500 points", Kind: AchievementScore, Threshold: 500},
	{ID: "pro_runner", Name: "Pro Runner", Description: "Score 1000 points", Kind: AchievementScore, Threshold: 1000},
	{ID: "gravity_master", Name: "Gravity Master", Description: "Score 2500 points", Kind: AchievementScore, Threshold: 2500},
	{ID: "combo_king", Name: "Combo King", Description: "Get a 10x combo", Kind: AchievementMaxCombo, Threshold: 10},
	{ID: "power_collector", Name: "Power Collector", Description: "Collect 50 power-ups", Kind: AchievementPowerUps, Threshold: 50},
	{ID: "dodge_master", Name: "Dodge Master", Description: "Perfect dodge 100 obstacles", Kind: AchievementPerfectDodges, Threshold: 100},
}

// Progress is the set of values achievements are checked against.
type Progress struct {
	Score             int
	MaxCombo          int
	PowerUpsCollected int
	PerfectDodges     int
}

// Met reports whether the achievement's threshold is reached.
func (a Achievement) Met(p Progress) bool {
	switch a.Kind {
	case AchievementScore:
		return p.Score >= a.Threshold
	case AchievementMaxCombo:
		return p.MaxCombo >= a.Threshold
	case AchievementPowerUps:
		return p.PowerUpsCollected >= a.Threshold
	case AchievementPerfectDodges:
		return p.PerfectDodges >= a.Threshold
	default:
		return false
	}
}

// EvaluateAchievements unlocks every locked definition whose threshold is met
// and returns the newly unlocked ones in definition order. unlocked is
// index-aligned with defs and only ever flipped from false to true.
func EvaluateAchievements(defs []Achievement, unlocked []bool, p Progress) []Achievement {
	var fresh []Achievement
	for i, a := range defs {
		if i >= len(unlocked) || unlocked[i] {
			continue
		}
		if a.Met(p) {
			unlocked[i] = true
			fresh = append(fresh, a)
		}
	}
	return fresh
}
