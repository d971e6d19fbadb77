package domain

// ProgressRecord is one row of the progress dashboard.
type ProgressRecord struct {
	Practice          string `json:"practice" yaml:"practice"`
	SessionsCompleted int    `json:"sessions_completed" yaml:"sessions_completed"`
}

// SeedProgress returns the mock dashboard data. It is seed data, not live
// state: completed countdowns never change it.
func SeedProgress() []ProgressRecord {
	return []ProgressRecord{
		{Practice: "Meditation 🧘‍♀️", SessionsCompleted: 5},
		{Practice: "Breathing 🌬️", SessionsCompleted: 3},
		{Practice: "Ritual 🙏", SessionsCompleted: 4},
	}
}

// AchievementTier is the badge earned for a session total.
type AchievementTier string

const (
	TierNone           AchievementTier = "none"
	TierSteppeWanderer AchievementTier = "steppe_wanderer"
	TierNomadsSpirit   AchievementTier = "nomads_spirit"
)

// TierFor returns the tier for a session total.
func TierFor(total int) AchievementTier {
	switch {
	case total >= 10:
		return TierNomadsSpirit
	case total >= 5:
		return TierSteppeWanderer
	default:
		return TierNone
	}
}

// Label returns the badge name.
func (t AchievementTier) Label() string {
	switch t {
	case TierNomadsSpirit:
		return "Nomad's Spirit"
	case TierSteppeWanderer:
		return "Steppe Wanderer"
	default:
		return "None"
	}
}

// Message returns the achievement line shown on the dashboard.
func (t AchievementTier) Message() string {
	switch t {
	case TierNomadsSpirit:
		return "🌟 Nomad's Spirit: Completed 10+ sessions! 🎉"
	case TierSteppeWanderer:
		return "🪔 Steppe Wanderer: Completed 5+ sessions! 🚶‍♂️"
	default:
		return "Keep practicing to earn Tüürk-inspired badges! 💪"
	}
}

// ProgressDashboard aggregates the progress records.
type ProgressDashboard struct {
	Records []ProgressRecord `json:"records" yaml:"records"`
	Total   int              `json:"total" yaml:"total"`
	Tier    AchievementTier  `json:"tier" yaml:"tier"`
}

// NewProgressDashboard totals the records and derives the tier.
func NewProgressDashboard(records []ProgressRecord) ProgressDashboard {
	total := 0
	for _, r := range records {
		total += r.SessionsCompleted
	}
	return ProgressDashboard{
		Records: records,
		Total:   total,
		Tier:    TierFor(total),
	}
}

// MaxSessions returns the largest count, used to scale charts.
func (d ProgressDashboard) MaxSessions() int {
	max := 0
	for _, r := range d.Records {
		if r.SessionsCompleted > max {
			max = r.SessionsCompleted
		}
	}
	return max
}
