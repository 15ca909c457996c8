package insights

import (
	"testing"

	"traits-backend/internal/profiles"
)

func anxiousHighNeuroticism() profiles.Profile {
	return profiles.Profile{
		UserID:          "user-1",
		AttachmentStyle: profiles.AttachmentAnxious,
		BigFive:         &profiles.BigFiveScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 80},
	}
}

func TestSelfImprovementRanksCombinedRuleFirst(t *testing.T) {
	gen := NewGenerator(&SequenceSource{})
	got := gen.Category(CategorySelfImprovement, anxiousHighNeuroticism())

	if len(got) == 0 {
		t.Fatalf("expected insights")
	}
	// The anxious+neuroticism combination rule carries more weight than the
	// plain attachment growth rule in the same priority band.
	if got[0].Title != "Managing Heightened Emotional Sensitivity" {
		t.Fatalf("unexpected top insight: %q", got[0].Title)
	}
	if got[1].Title != "Building Emotional Self-Reliance" {
		t.Fatalf("unexpected second insight: %q", got[1].Title)
	}
	for _, ins := range got {
		if ins.Category != CategorySelfImprovement {
			t.Fatalf("wrong category on %q: %q", ins.Title, ins.Category)
		}
		if ins.ID == "" {
			t.Fatalf("missing ID on %q", ins.Title)
		}
	}
}

func TestRedFlagsAttachmentDominates(t *testing.T) {
	gen := NewGenerator(&SequenceSource{})
	got := gen.Category(CategoryRedFlags, anxiousHighNeuroticism())

	if len(got) == 0 {
		t.Fatalf("expected insights")
	}
	if got[0].Title != "Avoid Avoidant and Inconsistent Partners" {
		t.Fatalf("unexpected top red flag: %q", got[0].Title)
	}
}

func TestCategoryQuotaCapsAtThree(t *testing.T) {
	// A rich profile fires far more than three rules per category.
	p := profiles.Profile{
		UserID:          "user-1",
		AttachmentStyle: profiles.AttachmentAnxious,
		MBTI:            "INFP",
		BigFive:         &profiles.BigFiveScores{Openness: 80, Conscientiousness: 30, Extraversion: 20, Agreeableness: 30, Neuroticism: 80},
		LoveLanguages: []profiles.LoveLanguage{
			{Type: profiles.LoveQualityTime, Rank: 1},
			{Type: profiles.LoveWordsOfAffirmation, Rank: 2},
			{Type: profiles.LoveActsOfService, Rank: 3},
			{Type: profiles.LovePhysicalTouch, Rank: 4},
			{Type: profiles.LoveGifts, Rank: 5},
		},
	}

	gen := NewGenerator(&SequenceSource{})
	selfImprovement, strengths, greenFlags, redFlags := gen.Generate(p)
	for _, list := range [][]Insight{selfImprovement, strengths, greenFlags, redFlags} {
		if len(list) > 3 {
			t.Fatalf("category exceeded quota: %d insights", len(list))
		}
	}
	if len(selfImprovement) != 3 || len(redFlags) != 3 {
		t.Fatalf("expected full categories for a rich profile, got %d/%d", len(selfImprovement), len(redFlags))
	}
}

func TestEmptyProfileYieldsEmptyLists(t *testing.T) {
	gen := NewGenerator(&SequenceSource{})
	selfImprovement, strengths, greenFlags, redFlags := gen.Generate(profiles.Profile{UserID: "user-1"})
	for _, list := range [][]Insight{selfImprovement, strengths, greenFlags, redFlags} {
		if list == nil {
			t.Fatalf("expected empty list, got nil")
		}
		if len(list) != 0 {
			t.Fatalf("expected no insights for empty profile, got %d", len(list))
		}
	}
}

func TestSparseProfileFallsBack(t *testing.T) {
	// Zodiac alone matches no rule, so each category returns its fallback.
	p := profiles.Profile{
		UserID: "user-1",
		Zodiac: &profiles.ZodiacData{Sun: "leo"},
	}
	gen := NewGenerator(&SequenceSource{})
	got := gen.Category(CategoryStrengths, p)
	if len(got) != 1 {
		t.Fatalf("expected single fallback insight, got %d", len(got))
	}
	if got[0].Title != "Balanced Trait Profile" {
		t.Fatalf("unexpected fallback: %q", got[0].Title)
	}
	if got[0].Confidence != 0.5 {
		t.Fatalf("expected fallback confidence 0.5, got %v", got[0].Confidence)
	}
	if len(got[0].Sources) != 1 || got[0].Sources[0] != profiles.FrameworkZodiac {
		t.Fatalf("expected sources [zodiac], got %v", got[0].Sources)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := anxiousHighNeuroticism()
	p.MBTI = "ENFJ"

	gen := NewGenerator(&SequenceSource{})
	a1, b1, c1, d1 := gen.Generate(p)
	a2, b2, c2, d2 := gen.Generate(p)

	compare := func(x, y []Insight) {
		t.Helper()
		if len(x) != len(y) {
			t.Fatalf("run lengths differ: %d vs %d", len(x), len(y))
		}
		for i := range x {
			if x[i].Title != y[i].Title || x[i].Confidence != y[i].Confidence {
				t.Fatalf("runs diverge at %d: %q vs %q", i, x[i].Title, y[i].Title)
			}
		}
	}
	compare(a1, a2)
	compare(b1, b2)
	compare(c1, c2)
	compare(d1, d2)
}

func TestSelectTopOrdersAndDedupes(t *testing.T) {
	cands := []candidate{
		{insight: Insight{Title: "B", Confidence: 0.9}, weight: 0.3, priority: 2},
		{insight: Insight{Title: "A", Confidence: 0.7}, weight: 0.2, priority: 1},
		{insight: Insight{Title: "A", Confidence: 0.99}, weight: 0.5, priority: 3},
		{insight: Insight{Title: "C", Confidence: 0.8}, weight: 0.3, priority: 2},
		{insight: Insight{Title: "D", Confidence: 0.6}, weight: 0.1, priority: 2},
	}

	got := selectTop(cands, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(got))
	}
	// Priority 1 first; then priority 2 by weight with confidence as the
	// tie-break; the duplicate lower-ranked "A" is dropped.
	if got[0].Title != "A" || got[0].Confidence != 0.7 {
		t.Fatalf("unexpected first pick: %+v", got[0])
	}
	if got[1].Title != "B" {
		t.Fatalf("unexpected second pick: %q", got[1].Title)
	}
	if got[2].Title != "C" {
		t.Fatalf("unexpected third pick: %q", got[2].Title)
	}
}

func TestSequenceSourceMintsStableIDs(t *testing.T) {
	src := &SequenceSource{}
	if got := src.NewID(); got != "ins-1" {
		t.Fatalf("expected ins-1, got %q", got)
	}
	if got := src.NewID(); got != "ins-2" {
		t.Fatalf("expected ins-2, got %q", got)
	}
}
