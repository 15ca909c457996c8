package insights

import (
	"sort"

	"traits-backend/internal/profiles"
)

const categoryQuota = 3

// Generator turns a profile into ranked insights. It holds no state beyond
// the ID source, so one instance serves all requests.
type Generator struct {
	IDs IDSource
}

// NewGenerator constructs a Generator. A nil ID source defaults to UUIDs.
func NewGenerator(ids IDSource) *Generator {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Generator{IDs: ids}
}

// Generate runs all four category engines against the profile.
func (g *Generator) Generate(p profiles.Profile) (selfImprovement, strengths, greenFlags, redFlags []Insight) {
	selfImprovement = g.Category(CategorySelfImprovement, p)
	strengths = g.Category(CategoryStrengths, p)
	greenFlags = g.Category(CategoryGreenFlags, p)
	redFlags = g.Category(CategoryRedFlags, p)
	return
}

// Category runs a single category's rules and returns its top insights.
// A category never returns more than three insights; when no rule fires on a
// non-empty profile it returns the category's fallback, and an empty profile
// yields an empty list.
func (g *Generator) Category(cat Category, p profiles.Profile) []Insight {
	var cands []candidate
	switch cat {
	case CategorySelfImprovement:
		cands = selfImprovementCandidates(p)
	case CategoryStrengths:
		cands = strengthCandidates(p)
	case CategoryGreenFlags:
		cands = greenFlagCandidates(p)
	case CategoryRedFlags:
		cands = redFlagCandidates(p)
	default:
		return nil
	}

	selected := selectTop(cands, categoryQuota)
	if len(selected) == 0 {
		if p.IsEmpty() {
			return []Insight{}
		}
		selected = []Insight{fallbackInsight(cat, p)}
	}

	out := make([]Insight, 0, len(selected))
	for _, ins := range selected {
		ins.ID = g.IDs.NewID()
		ins.Category = cat
		out = append(out, ins)
	}
	return out
}

// selectTop ranks candidates by priority (ascending), then weight, then
// confidence (both descending). The sort is stable so rule declaration order
// breaks remaining ties. Titles are deduped, keeping the higher-ranked copy.
func selectTop(cands []candidate, quota int) []Insight {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		return a.insight.Confidence > b.insight.Confidence
	})

	seen := make(map[string]bool, len(cands))
	out := make([]Insight, 0, quota)
	for _, c := range cands {
		if seen[c.insight.Title] {
			continue
		}
		seen[c.insight.Title] = true
		out = append(out, c.insight)
		if len(out) == quota {
			break
		}
	}
	return out
}

func fromTemplate(t template) Insight {
	return Insight{
		Title:       t.Title,
		Description: t.Description,
		Explanation: t.Explanation,
		Actionable:  t.Actionable,
		Confidence:  t.Confidence,
		Sources:     t.Sources,
	}
}

var fallbackTemplates = map[Category]template{
	CategorySelfImprovement: {
		Title:       "Keep Building Self-Awareness",
		Description: "Your current results don't point to a specific growth area yet",
		Explanation: "None of your completed assessments flagged a focused growth opportunity. That usually means your scores sit in balanced ranges, or the assessments that surface growth work (attachment style, Big Five) aren't filled in yet.",
		Actionable:  "Complete the attachment style and Big Five assessments if you haven't. Revisit your results after any major life change, since traits shift over time.",
		Confidence:  0.5,
	},
	CategoryStrengths: {
		Title:       "Balanced Trait Profile",
		Description: "Your scores sit in moderate ranges rather than at standout extremes",
		Explanation: "Strength insights fire on pronounced scores, like a Big Five trait above 75 or a secure attachment style. A balanced profile is itself an asset: you can flex between styles without the costs that come with extremes.",
		Actionable:  "Lean on your adaptability in situations that reward flexibility. Complete any missing assessments to surface strengths this profile can't see yet.",
		Confidence:  0.5,
	},
	CategoryGreenFlags: {
		Title:       "Look for Consistency and Respect",
		Description: "Without stronger assessment data, the universal green flags apply",
		Explanation: "Tailored compatibility guidance needs attachment style or Big Five data. Until then, the qualities that predict good relationships for everyone are reliable communication, consistency between words and actions, and respect for your boundaries.",
		Actionable:  "Complete the attachment style assessment for personalized compatibility guidance. In the meantime, favor partners whose behavior stays consistent over months, not weeks.",
		Confidence:  0.5,
	},
	CategoryRedFlags: {
		Title:       "Watch for Universal Warning Signs",
		Description: "Without stronger assessment data, the universal red flags apply",
		Explanation: "Personalized warnings need attachment style or Big Five data. Regardless of personality, controlling behavior, contempt, chronic inconsistency, and disrespect for boundaries predict poor relationship outcomes.",
		Actionable:  "Complete the attachment style assessment to learn which patterns you're specifically vulnerable to. Until then, treat the universal warning signs as non-negotiable.",
		Confidence:  0.5,
	},
}

func fallbackInsight(cat Category, p profiles.Profile) Insight {
	ins := fromTemplate(fallbackTemplates[cat])
	ins.Sources = p.PopulatedFrameworks()
	return ins
}
