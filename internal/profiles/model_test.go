package profiles

import "testing"

func fullRanking() []LoveLanguage {
	return []LoveLanguage{
		{Type: LoveQualityTime, Rank: 1},
		{Type: LoveWordsOfAffirmation, Rank: 2},
		{Type: LoveActsOfService, Rank: 3},
		{Type: LovePhysicalTouch, Rank: 4},
		{Type: LoveGifts, Rank: 5},
	}
}

func TestCompletenessRounding(t *testing.T) {
	p := Profile{
		BigFive:         &BigFiveScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50},
		MBTI:            "INTJ",
		AttachmentStyle: AttachmentSecure,
	}
	// 3 of 7 frameworks = 42.857..., rounds to 43.
	if got := p.Completeness(); got != 43 {
		t.Fatalf("expected completeness 43, got %d", got)
	}

	if got := (Profile{}).Completeness(); got != 0 {
		t.Fatalf("expected completeness 0 for empty profile, got %d", got)
	}
}

func TestHasLoveLanguagesRequiresFullRanking(t *testing.T) {
	p := Profile{LoveLanguages: fullRanking()[:3]}
	if p.Has(FrameworkLoveLanguages) {
		t.Fatalf("partial ranking should not count as populated")
	}

	p.LoveLanguages = fullRanking()
	if !p.Has(FrameworkLoveLanguages) {
		t.Fatalf("full ranking should count as populated")
	}

	// Duplicate rank breaks the bijection.
	p.LoveLanguages[4].Rank = 1
	if p.Has(FrameworkLoveLanguages) {
		t.Fatalf("duplicate rank should not count as populated")
	}
}

func TestPrimaryLoveLanguage(t *testing.T) {
	p := Profile{LoveLanguages: fullRanking()}
	top, ok := p.PrimaryLoveLanguage()
	if !ok || top != LoveQualityTime {
		t.Fatalf("expected quality-time primary, got %q ok=%v", top, ok)
	}

	p.LoveLanguages = p.LoveLanguages[:4]
	if _, ok := p.PrimaryLoveLanguage(); ok {
		t.Fatalf("incomplete ranking should not report a primary language")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Profile{UserID: "u1"}).IsEmpty() {
		t.Fatalf("profile with only an ID should be empty")
	}
	// Enneagram is display-only and doesn't count toward frameworks.
	if !(Profile{Enneagram: 4}).IsEmpty() {
		t.Fatalf("enneagram alone should leave the profile empty")
	}
	if (Profile{MBTI: "ENFP"}).IsEmpty() {
		t.Fatalf("profile with MBTI should not be empty")
	}
}

func TestPopulatedFrameworksOrder(t *testing.T) {
	p := Profile{
		MBTI:            "ISTJ",
		AttachmentStyle: AttachmentAvoidant,
		Zodiac:          &ZodiacData{Sun: "leo"},
	}
	got := p.PopulatedFrameworks()
	want := []string{FrameworkMBTI, FrameworkZodiac, FrameworkAttachmentStyle}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
