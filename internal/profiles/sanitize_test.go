package profiles

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerceScoreClampsRange(t *testing.T) {
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{150, 100, true},
		{-10, 0, true},
		{float64(72.6), 73, true},
		{"88", 88, true},
		{" 42.4 ", 42, true},
		{json.Number("65"), 65, true},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{"not-a-number", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := CoerceScore(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("CoerceScore(%v) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSanitizeBigFiveAllOrNothing(t *testing.T) {
	raw := map[string]any{
		"openness":          float64(80),
		"conscientiousness": "55",
		"extraversion":      150,
		"agreeableness":     float64(-5),
		"neuroticism":       float64(30),
	}
	scores, ok := SanitizeBigFive(raw)
	if !ok {
		t.Fatalf("expected coercion to succeed")
	}
	if scores.Openness != 80 || scores.Conscientiousness != 55 {
		t.Fatalf("unexpected scores: %+v", scores)
	}
	if scores.Extraversion != 100 {
		t.Fatalf("expected extraversion clamped to 100, got %d", scores.Extraversion)
	}
	if scores.Agreeableness != 0 {
		t.Fatalf("expected agreeableness clamped to 0, got %d", scores.Agreeableness)
	}

	raw["neuroticism"] = "high"
	if _, ok := SanitizeBigFive(raw); ok {
		t.Fatalf("one unreadable trait should reject the whole block")
	}

	if _, ok := SanitizeBigFive(nil); ok {
		t.Fatalf("nil map should report absent")
	}
}

func TestNormalizeMBTI(t *testing.T) {
	if got := NormalizeMBTI("intj"); got != "INTJ" {
		t.Fatalf("expected INTJ, got %q", got)
	}
	if got := NormalizeMBTI(" enfp "); got != "ENFP" {
		t.Fatalf("expected ENFP, got %q", got)
	}
	if got := NormalizeMBTI("ABCD"); got != "" {
		t.Fatalf("expected empty for invalid code, got %q", got)
	}
}

func TestEnumValidators(t *testing.T) {
	if !ValidAttachmentStyle(AttachmentFearfulAvoidant) {
		t.Fatalf("fearful-avoidant should validate")
	}
	if ValidAttachmentStyle("ambivalent") {
		t.Fatalf("unknown style should not validate")
	}
	if !ValidHumanDesignType("Manifesting-Generator") {
		t.Fatalf("human design type should validate case-insensitively")
	}
	if !ValidZodiacSign(" Scorpio ") {
		t.Fatalf("zodiac sign should validate with whitespace and case folded")
	}
	if ValidChineseAnimal("cat") {
		t.Fatalf("cat is not in the Chinese zodiac")
	}
	if !ValidChineseElement("earth") {
		t.Fatalf("earth should validate")
	}
}
