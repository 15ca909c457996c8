package profiles

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var validMBTI = map[string]bool{
	"INTJ": true, "INTP": true, "ENTJ": true, "ENTP": true,
	"INFJ": true, "INFP": true, "ENFJ": true, "ENFP": true,
	"ISTJ": true, "ISFJ": true, "ESTJ": true, "ESFJ": true,
	"ISTP": true, "ISFP": true, "ESTP": true, "ESFP": true,
}

var validZodiacSigns = map[string]bool{
	"aries": true, "taurus": true, "gemini": true, "cancer": true,
	"leo": true, "virgo": true, "libra": true, "scorpio": true,
	"sagittarius": true, "capricorn": true, "aquarius": true, "pisces": true,
}

var validChineseAnimals = map[string]bool{
	"rat": true, "ox": true, "tiger": true, "rabbit": true,
	"dragon": true, "snake": true, "horse": true, "goat": true,
	"monkey": true, "rooster": true, "dog": true, "pig": true,
}

var validChineseElements = map[string]bool{
	"metal": true, "water": true, "wood": true, "fire": true, "earth": true,
}

var validHumanDesignTypes = map[string]bool{
	"manifestor":            true,
	"generator":             true,
	"manifesting-generator": true,
	"projector":             true,
	"reflector":             true,
}

// ValidMBTI reports whether code is one of the 16 type codes (case-insensitive).
func ValidMBTI(code string) bool {
	return validMBTI[strings.ToUpper(strings.TrimSpace(code))]
}

// NormalizeMBTI uppercases and validates a type code. Invalid input yields "".
func NormalizeMBTI(code string) string {
	up := strings.ToUpper(strings.TrimSpace(code))
	if !validMBTI[up] {
		return ""
	}
	return up
}

// ValidAttachmentStyle reports whether s is a recognized attachment style.
func ValidAttachmentStyle(s AttachmentStyle) bool {
	switch s {
	case AttachmentSecure, AttachmentAnxious, AttachmentAvoidant, AttachmentFearfulAvoidant:
		return true
	}
	return false
}

// ValidLoveLanguageType reports whether t is one of the five love languages.
func ValidLoveLanguageType(t LoveLanguageType) bool {
	switch t {
	case LoveWordsOfAffirmation, LoveQualityTime, LoveActsOfService, LovePhysicalTouch, LoveGifts:
		return true
	}
	return false
}

// ValidZodiacSign reports whether sign is a western zodiac sign.
func ValidZodiacSign(sign string) bool {
	return validZodiacSigns[strings.ToLower(strings.TrimSpace(sign))]
}

// ValidChineseAnimal reports whether animal is a Chinese zodiac animal.
func ValidChineseAnimal(animal string) bool {
	return validChineseAnimals[strings.ToLower(strings.TrimSpace(animal))]
}

// ValidChineseElement reports whether element is a Chinese zodiac element.
func ValidChineseElement(element string) bool {
	return validChineseElements[strings.ToLower(strings.TrimSpace(element))]
}

// ValidHumanDesignType reports whether t is a Human Design type.
func ValidHumanDesignType(t string) bool {
	return validHumanDesignTypes[strings.ToLower(strings.TrimSpace(t))]
}

// CoerceScore converts an arbitrary JSON value into a 0-100 trait score.
// Floats are rounded, strings parsed, and the result clamped. Anything that
// cannot be read as a finite number reports ok=false so the caller can treat
// the field as absent rather than failing the request.
func CoerceScore(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return clampScore(float64(n)), true
	case int64:
		return clampScore(float64(n)), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return clampScore(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return clampScore(f), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return clampScore(f), true
	default:
		return 0, false
	}
}

func clampScore(f float64) int {
	r := int(math.Round(f))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// SanitizeBigFive coerces a loose field map into scores. All five traits must
// coerce or the whole block is treated as absent.
func SanitizeBigFive(raw map[string]any) (*BigFiveScores, bool) {
	if raw == nil {
		return nil, false
	}
	o, ok1 := CoerceScore(raw["openness"])
	c, ok2 := CoerceScore(raw["conscientiousness"])
	e, ok3 := CoerceScore(raw["extraversion"])
	a, ok4 := CoerceScore(raw["agreeableness"])
	n, ok5 := CoerceScore(raw["neuroticism"])
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return nil, false
	}
	return &BigFiveScores{
		Openness:          o,
		Conscientiousness: c,
		Extraversion:      e,
		Agreeableness:     a,
		Neuroticism:       n,
	}, true
}

// ClampBigFive clamps an already-typed score block in place.
func ClampBigFive(s *BigFiveScores) {
	if s == nil {
		return
	}
	s.Openness = clampScore(float64(s.Openness))
	s.Conscientiousness = clampScore(float64(s.Conscientiousness))
	s.Extraversion = clampScore(float64(s.Extraversion))
	s.Agreeableness = clampScore(float64(s.Agreeableness))
	s.Neuroticism = clampScore(float64(s.Neuroticism))
}
