package domain

var affirmations = []string{
	"The strength of my ancestors flows through me 💪",
	"I am as resilient as the Altai mountains 🏔️",
	"My heart is open like the endless steppe 🌾",
	"The wisdom of the Pamir guides my path 🛤️",
	"I carry the harmony of Tüürk traditions 🎶",
}

// AffirmationMode selects how an affirmation is chosen.
type AffirmationMode string

const (
	AffirmationFromList AffirmationMode = "list"
	AffirmationRandom   AffirmationMode = "random"
)

// Label returns a human-readable label for the mode.
func (m AffirmationMode) Label() string {
	switch m {
	case AffirmationFromList:
		return "Select from list"
	case AffirmationRandom:
		return "Generate random"
	default:
		return "Unknown"
	}
}

// Intn is satisfied by *rand.Rand from math/rand/v2.
type Intn interface {
	IntN(n int) int
}

// Affirmations returns the fixed affirmation list.
func Affirmations() []string {
	out := make([]string, len(affirmations))
	copy(out, affirmations)
	return out
}

// IsAffirmation reports whether text is a member of the fixed list.
func IsAffirmation(text string) bool {
	for _, a := range affirmations {
		if a == text {
			return true
		}
	}
	return false
}

// RandomAffirmation picks a member of the fixed list.
func RandomAffirmation(rng Intn) string {
	return affirmations[rng.IntN(len(affirmations))]
}

// AckLevel classifies an acknowledgment shown to the user.
type AckLevel string

const (
	AckSuccess AckLevel = "success"
	AckWarning AckLevel = "warning"
)

// Acknowledgment is a transient message produced by a save action.
// Nothing behind it is stored.
type Acknowledgment struct {
	Level   AckLevel
	Message string
}

// IsSuccess returns true for success acknowledgments.
func (a Acknowledgment) IsSuccess() bool {
	return a.Level == AckSuccess
}

// SaveAffirmation acknowledges a catalog affirmation.
func SaveAffirmation(text string) Acknowledgment {
	return Acknowledgment{
		Level:   AckSuccess,
		Message: "Affirmation saved: '" + text + "'! Keep it close! ❤️",
	}
}

// SaveCustomAffirmation acknowledges user-authored text. Only the empty
// string yields a warning together with ErrEmptyAffirmation; whitespace is
// text the user typed and is echoed back as is.
func SaveCustomAffirmation(text string) (Acknowledgment, error) {
	if text == "" {
		return Acknowledgment{
			Level:   AckWarning,
			Message: "Please enter an affirmation! 😊",
		}, ErrEmptyAffirmation
	}
	return Acknowledgment{
		Level:   AckSuccess,
		Message: "Your affirmation saved: '" + text + "'! 🥳",
	}, nil
}
