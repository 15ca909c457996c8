package insights

import (
	"fmt"
	"math"
	"strings"

	"traits-backend/internal/profiles"
)

// Analyzer orchestrates the four category engines, pattern detection, and
// the confidence blend into one Result.
type Analyzer struct {
	Gen *Generator
}

// NewAnalyzer constructs an Analyzer around a Generator.
func NewAnalyzer(gen *Generator) *Analyzer {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Analyzer{Gen: gen}
}

// Analyze produces the full insight set for a profile. Output is
// deterministic for a fixed profile, modulo insight IDs.
func (a *Analyzer) Analyze(p profiles.Profile) Result {
	patterns := detectPatterns(p)
	selfImprovement, strengths, greenFlags, redFlags := a.Gen.Generate(p)

	return Result{
		SelfImprovement: selfImprovement,
		Strengths:       strengths,
		GreenFlags:      greenFlags,
		RedFlags:        redFlags,
		Confidence:      overallConfidence(p, patterns),
		Completeness:    p.Completeness(),
	}
}

// Completeness builds the per-framework breakdown with recommendations on
// what to fill in next.
func (a *Analyzer) Completeness(p profiles.Profile) CompletenessReport {
	frameworks := make(map[string]int, 7)
	var missing []string
	for _, f := range profiles.Frameworks() {
		if p.Has(f) {
			frameworks[f] = 100
		} else {
			frameworks[f] = 0
			missing = append(missing, f)
		}
	}

	return CompletenessReport{
		Overall:         p.Completeness(),
		Frameworks:      frameworks,
		Missing:         missing,
		Recommendations: completenessRecommendations(missing),
	}
}

// overallConfidence blends weighted data completeness (60%) with the mean
// detected-pattern confidence (40%, neutral 0.5 when nothing was detected),
// rounded to two decimals.
func overallConfidence(p profiles.Profile, patterns []pattern) float64 {
	var weighted, total float64
	for _, f := range []string{
		profiles.FrameworkAttachmentStyle,
		profiles.FrameworkBigFive,
		profiles.FrameworkMBTI,
		profiles.FrameworkLoveLanguages,
	} {
		total += frameworkWeights[f]
		if p.Has(f) {
			weighted += frameworkWeights[f]
		}
	}
	dataConfidence := weighted / total

	patternConfidence := 0.5
	if len(patterns) > 0 {
		var sum float64
		for _, pt := range patterns {
			sum += pt.Confidence
		}
		patternConfidence = sum / float64(len(patterns))
	}

	return math.Round((dataConfidence*0.6+patternConfidence*0.4)*100) / 100
}

func completenessRecommendations(missing []string) []string {
	var recs []string

	var missingPriority []string
	for _, f := range missing {
		if f == profiles.FrameworkAttachmentStyle || f == profiles.FrameworkBigFive {
			missingPriority = append(missingPriority, f)
		}
	}
	if len(missingPriority) > 0 {
		recs = append(recs, fmt.Sprintf("Complete %s for more accurate insights", strings.Join(missingPriority, " and ")))
	}

	for _, f := range missing {
		if f == profiles.FrameworkLoveLanguages {
			recs = append(recs, "Add Love Languages for better relationship compatibility insights")
		}
	}

	if len(missing) == 0 {
		recs = append(recs, "All frameworks completed - insights are comprehensive")
	}

	return recs
}
