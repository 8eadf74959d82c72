// ABOUTME: Scenario definitions for shape benchmarks
// ABOUTME: Each scenario pairs a seed vocabulary with a run size and tolerances

package shape

// Scenario describes one statistical benchmark run
type Scenario struct {
	ID          string
	Name        string
	Description string
	Words       []string // Seed vocabulary; empty means use Vocabulary
	Vocabulary  string   // Built-in vocabulary name
	Paragraphs  int
	Seed        uint64

	// Tolerances for PASS
	MaxMeanSentenceDrift float64 // Allowed |mean sentence length - model mean|
	MaxViolations        int
}

// Result is the outcome of a Scenario
type Result struct {
	ScenarioID   string                 `json:"scenario_id"`
	ScenarioName string                 `json:"scenario_name"`
	Metrics      Metrics                `json:"metrics"`
	Status       string                 `json:"status"` // "PASS" or "FAIL"
	Details      map[string]interface{} `json:"details,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

// GetGreekScenario uses the five-word example vocabulary
func GetGreekScenario() Scenario {
	return Scenario{
		ID:                   "greek",
		Name:                 "Five-word Greek alphabet",
		Description:          "Smallest valid vocabulary; stresses adjacent-repeat avoidance",
		Words:                []string{"alpha", "beta", "gamma", "delta", "epsilon"},
		Paragraphs:           500,
		Seed:                 1,
		MaxMeanSentenceDrift: 5.0,
	}
}

// GetLoremScenario uses the built-in lorem vocabulary
func GetLoremScenario() Scenario {
	return Scenario{
		ID:                   "lorem",
		Name:                 "Built-in lorem vocabulary",
		Description:          "Classic lorem ipsum words drawn from go-loremipsum",
		Vocabulary:           "lorem",
		Paragraphs:           500,
		Seed:                 2,
		MaxMeanSentenceDrift: 5.0,
	}
}

// GetFakeScenario uses the built-in fake vocabulary
func GetFakeScenario() Scenario {
	return Scenario{
		ID:                   "fake",
		Name:                 "Built-in fake vocabulary",
		Description:          "Random English words drawn from gofakeit",
		Vocabulary:           "fake",
		Paragraphs:           500,
		Seed:                 3,
		MaxMeanSentenceDrift: 5.0,
	}
}

// GetAllScenarios returns every scenario in run order
func GetAllScenarios() []Scenario {
	return []Scenario{
		GetGreekScenario(),
		GetLoremScenario(),
		GetFakeScenario(),
	}
}
