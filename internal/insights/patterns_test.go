package insights

import (
	"math"
	"testing"

	"traits-backend/internal/profiles"
)

func TestDetectContradictions(t *testing.T) {
	p := profiles.Profile{
		MBTI:    "ENFP",
		BigFive: &profiles.BigFiveScores{Openness: 50, Conscientiousness: 50, Extraversion: 30, Agreeableness: 50, Neuroticism: 50},
	}
	got := detectContradictions(p)
	if len(got) != 1 {
		t.Fatalf("expected 1 contradiction, got %d", len(got))
	}
	if got[0].Confidence != 0.7 {
		t.Fatalf("expected confidence 0.7, got %v", got[0].Confidence)
	}

	// Introverted MBTI with high extraversion is the mirror case.
	p.MBTI = "INFP"
	p.BigFive.Extraversion = 70
	if got := detectContradictions(p); len(got) != 1 {
		t.Fatalf("expected mirror contradiction, got %d", len(got))
	}

	// Aligned scores produce nothing.
	p.BigFive.Extraversion = 30
	if got := detectContradictions(p); len(got) != 0 {
		t.Fatalf("expected no contradictions, got %d", len(got))
	}
}

func TestDetectAnxiousNeuroticismContradiction(t *testing.T) {
	p := profiles.Profile{
		AttachmentStyle: profiles.AttachmentAnxious,
		BigFive:         &profiles.BigFiveScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 80},
	}
	got := detectContradictions(p)
	if len(got) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(got))
	}
	if got[0].Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", got[0].Confidence)
	}
}

func TestDetectStrengthPatterns(t *testing.T) {
	p := profiles.Profile{
		AttachmentStyle: profiles.AttachmentSecure,
		BigFive:         &profiles.BigFiveScores{Openness: 80, Conscientiousness: 80, Extraversion: 50, Agreeableness: 50, Neuroticism: 50},
	}
	got := detectStrengthPatterns(p)
	// Two Big Five traits above 75 plus secure attachment.
	if len(got) != 3 {
		t.Fatalf("expected 3 strength patterns, got %d", len(got))
	}
}

func TestDetectCompatibilityPatterns(t *testing.T) {
	p := profiles.Profile{
		AttachmentStyle: profiles.AttachmentSecure,
		BigFive:         &profiles.BigFiveScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50},
		LoveLanguages: []profiles.LoveLanguage{
			{Type: profiles.LovePhysicalTouch, Rank: 1},
			{Type: profiles.LoveWordsOfAffirmation, Rank: 2},
			{Type: profiles.LoveActsOfService, Rank: 3},
			{Type: profiles.LoveQualityTime, Rank: 4},
			{Type: profiles.LoveGifts, Rank: 5},
		},
	}
	got := detectCompatibilityPatterns(p)
	if len(got) != 3 {
		t.Fatalf("expected 3 compatibility patterns, got %d", len(got))
	}

	// Partial rankings never drive the love-language pattern.
	p.LoveLanguages = p.LoveLanguages[:2]
	if got := detectCompatibilityPatterns(p); len(got) != 2 {
		t.Fatalf("expected 2 patterns without complete ranking, got %d", len(got))
	}
}

func TestFrameworkWeightsFavorAttachment(t *testing.T) {
	if frameworkWeights[profiles.FrameworkAttachmentStyle] != 0.6 {
		t.Fatalf("attachment weight changed")
	}
	sum := 0.0
	for _, w := range frameworkWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("expected weights to sum to 1.0, got %v", sum)
	}
}
