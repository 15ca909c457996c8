package insights

import (
	"testing"

	"traits-backend/internal/profiles"
)

func TestAnalyzeBlendsConfidence(t *testing.T) {
	a := NewAnalyzer(NewGenerator(&SequenceSource{}))

	// MBTI alone: data confidence 0.1, no patterns detected so the neutral
	// 0.5 pattern term applies: 0.1*0.6 + 0.5*0.4 = 0.26.
	result := a.Analyze(profiles.Profile{UserID: "u1", MBTI: "ISTP"})
	if result.Confidence != 0.26 {
		t.Fatalf("expected confidence 0.26, got %v", result.Confidence)
	}
	if result.Completeness != 14 {
		t.Fatalf("expected completeness 14, got %d", result.Completeness)
	}
}

func TestAnalyzeFullProfileConfidence(t *testing.T) {
	a := NewAnalyzer(NewGenerator(&SequenceSource{}))
	p := profiles.Profile{
		UserID:          "u1",
		AttachmentStyle: profiles.AttachmentSecure,
		MBTI:            "ENFJ",
		BigFive:         &profiles.BigFiveScores{Openness: 60, Conscientiousness: 60, Extraversion: 60, Agreeableness: 60, Neuroticism: 40},
		LoveLanguages: []profiles.LoveLanguage{
			{Type: profiles.LoveQualityTime, Rank: 1},
			{Type: profiles.LoveWordsOfAffirmation, Rank: 2},
			{Type: profiles.LoveActsOfService, Rank: 3},
			{Type: profiles.LovePhysicalTouch, Rank: 4},
			{Type: profiles.LoveGifts, Rank: 5},
		},
	}

	result := a.Analyze(p)
	// All weighted frameworks present: data confidence is 1.0, so the blend
	// sits above the 0.6 data floor regardless of pattern confidence.
	if result.Confidence <= 0.6 || result.Confidence > 1.0 {
		t.Fatalf("confidence out of range: %v", result.Confidence)
	}
	if result.Completeness != 57 {
		t.Fatalf("expected completeness 57, got %d", result.Completeness)
	}
	if len(result.Strengths) == 0 || len(result.GreenFlags) == 0 {
		t.Fatalf("expected insights for a rich profile")
	}
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	a := NewAnalyzer(NewGenerator(&SequenceSource{}))
	result := a.Analyze(profiles.Profile{UserID: "u1"})

	if result.Completeness != 0 {
		t.Fatalf("expected completeness 0, got %d", result.Completeness)
	}
	for _, list := range [][]Insight{result.SelfImprovement, result.Strengths, result.GreenFlags, result.RedFlags} {
		if len(list) != 0 {
			t.Fatalf("expected empty categories for empty profile")
		}
	}
	// Data confidence 0 + neutral pattern term: 0*0.6 + 0.5*0.4 = 0.2.
	if result.Confidence != 0.2 {
		t.Fatalf("expected confidence 0.2, got %v", result.Confidence)
	}
}

func TestCompletenessReportRecommendations(t *testing.T) {
	a := NewAnalyzer(nil)

	report := a.Completeness(profiles.Profile{UserID: "u1", MBTI: "INTJ"})
	if report.Overall != 14 {
		t.Fatalf("expected overall 14, got %d", report.Overall)
	}
	if report.Frameworks[profiles.FrameworkMBTI] != 100 {
		t.Fatalf("expected mbti at 100")
	}
	if report.Frameworks[profiles.FrameworkBigFive] != 0 {
		t.Fatalf("expected bigFive at 0")
	}
	if len(report.Missing) != 6 {
		t.Fatalf("expected 6 missing frameworks, got %d", len(report.Missing))
	}

	foundPriority := false
	foundLoveLanguages := false
	for _, rec := range report.Recommendations {
		if rec == "Complete bigFive and attachmentStyle for more accurate insights" {
			foundPriority = true
		}
		if rec == "Add Love Languages for better relationship compatibility insights" {
			foundLoveLanguages = true
		}
	}
	if !foundPriority {
		t.Fatalf("expected priority recommendation, got %v", report.Recommendations)
	}
	if !foundLoveLanguages {
		t.Fatalf("expected love-languages recommendation, got %v", report.Recommendations)
	}
}

func TestCompletenessReportAllComplete(t *testing.T) {
	a := NewAnalyzer(nil)
	p := profiles.Profile{
		UserID:          "u1",
		BigFive:         &profiles.BigFiveScores{Openness: 60, Conscientiousness: 60, Extraversion: 60, Agreeableness: 60, Neuroticism: 40},
		MBTI:            "INTJ",
		Zodiac:          &profiles.ZodiacData{Sun: "leo"},
		ChineseZodiac:   &profiles.ChineseZodiacData{Animal: "horse", Element: "metal", Year: 1990},
		HumanDesign:     &profiles.HumanDesignData{Type: "generator"},
		AttachmentStyle: profiles.AttachmentSecure,
		LoveLanguages: []profiles.LoveLanguage{
			{Type: profiles.LoveQualityTime, Rank: 1},
			{Type: profiles.LoveWordsOfAffirmation, Rank: 2},
			{Type: profiles.LoveActsOfService, Rank: 3},
			{Type: profiles.LovePhysicalTouch, Rank: 4},
			{Type: profiles.LoveGifts, Rank: 5},
		},
	}

	report := a.Completeness(p)
	if report.Overall != 100 {
		t.Fatalf("expected overall 100, got %d", report.Overall)
	}
	if len(report.Missing) != 0 {
		t.Fatalf("expected nothing missing, got %v", report.Missing)
	}
	if len(report.Recommendations) != 1 || report.Recommendations[0] != "All frameworks completed - insights are comprehensive" {
		t.Fatalf("unexpected recommendations: %v", report.Recommendations)
	}
}
