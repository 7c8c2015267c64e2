package skillgraph

// Category is a free-form topical tag on a skill (household, finance, ...).
type Category string

// Difficulty levels for skills.
const (
	DifficultyBeginner     = 1
	DifficultyIntermediate = 2
	DifficultyAdvanced     = 3
)

// DifficultyName returns a human-readable name for a difficulty level.
func DifficultyName(d int) string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Skill represents a single life-skill node in the graph.
// Skills double as quests: the progress tables reference the same IDs.
type Skill struct {
	ID            string
	Title         string
	Description   string
	Difficulty    int // 1-3
	Category      Category
	XP            int
	EstMinutes    int
	Materials     string
	Prerequisites []string
}

// SkillState represents a skill's state relative to the learner.
type SkillState int

const (
	StateLocked    SkillState = iota // One or more prerequisites not yet completed
	StateAvailable                   // All prerequisites completed; skill not yet done
	StateCompleted                   // Finished
)

// Icon returns the display icon for a skill state.
func (s SkillState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a skill state.
func (s SkillState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// StateFor computes a skill's state for the given completed set.
func StateFor(id string, completed map[string]bool) SkillState {
	switch {
	case completed[id]:
		return StateCompleted
	case IsAvailable(id, completed):
		return StateAvailable
	default:
		return StateLocked
	}
}
