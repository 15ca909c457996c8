package insights

// Category names the four insight groupings.
type Category string

const (
	CategorySelfImprovement Category = "selfImprovement"
	CategoryStrengths       Category = "strengths"
	CategoryGreenFlags      Category = "greenFlags"
	CategoryRedFlags        Category = "redFlags"
)

// Insight is a single generated recommendation. Once produced it is never
// mutated; re-analysis builds fresh values.
type Insight struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Explanation string   `json:"explanation"`
	Actionable  string   `json:"actionable"`
	Confidence  float64  `json:"confidence"`
	Sources     []string `json:"sources"`
}

// Result is the full analysis output: up to three insights per category plus
// the overall confidence and profile completeness.
type Result struct {
	SelfImprovement []Insight `json:"selfImprovement"`
	Strengths       []Insight `json:"strengths"`
	GreenFlags      []Insight `json:"greenFlags"`
	RedFlags        []Insight `json:"redFlags"`
	Confidence      float64   `json:"confidence"`
	Completeness    int       `json:"completeness"`
}

// CompletenessReport breaks profile completeness down per framework with
// suggestions on what to fill in next.
type CompletenessReport struct {
	Overall         int            `json:"overall"`
	Frameworks      map[string]int `json:"frameworks"`
	Missing         []string       `json:"missingFrameworks"`
	Recommendations []string       `json:"recommendations"`
}

// candidate pairs an insight template with its selection weight and priority
// band. Lower priority wins; within a band higher weight, then higher
// confidence.
type candidate struct {
	insight  Insight
	weight   float64
	priority int
}

// template is a candidate minus its ID, which the generator assigns.
type template struct {
	Title       string
	Description string
	Explanation string
	Actionable  string
	Confidence  float64
	Sources     []string
}
