package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// PointsForDifficulty is the canonical difficulty -> points table.
func PointsForDifficulty(d Difficulty) (int, bool) {
	switch d {
	case DifficultyEasy:
		return 10, true
	case DifficultyMedium:
		return 20, true
	case DifficultyHard:
		return 30, true
	}
	return 0, false
}

// Problem is a catalog entity: static content served to the client,
// never mutated by user actions.
type Problem struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Difficulty   Difficulty       `json:"difficulty"`
	Topic        string           `json:"topic"`
	Description  string           `json:"description"`
	InputFormat  string           `json:"inputFormat"`
	OutputFormat string           `json:"outputFormat"`
	Constraints  string           `json:"constraints"`
	SampleCases  []SampleTestCase `json:"sampleTestCases"`
	Points       int              `json:"points"`
	Link         string           `json:"link,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
}

type SampleTestCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}
