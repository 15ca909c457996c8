package insights

import (
	"fmt"
	"strings"

	"traits-backend/internal/profiles"
)

// Framework weights for cross-framework analysis. Attachment theory carries
// the most signal for relationship outcomes; zodiac and Human Design are
// informational only.
var frameworkWeights = map[string]float64{
	profiles.FrameworkAttachmentStyle: 0.6,
	profiles.FrameworkBigFive:         0.25,
	profiles.FrameworkMBTI:            0.1,
	profiles.FrameworkLoveLanguages:   0.05,
	profiles.FrameworkHumanDesign:     0.0,
	profiles.FrameworkZodiac:          0.0,
	profiles.FrameworkChineseZodiac:   0.0,
}

type patternType string

const (
	patternContradiction     patternType = "contradiction"
	patternStrength          patternType = "strength"
	patternGrowthOpportunity patternType = "growth-opportunity"
	patternCompatibility     patternType = "compatibility"
)

// pattern is a cross-framework observation that feeds the overall
// confidence blend.
type pattern struct {
	Type        patternType
	Confidence  float64
	Frameworks  []string
	Description string
	Weight      float64
}

func detectPatterns(p profiles.Profile) []pattern {
	var out []pattern
	out = append(out, detectContradictions(p)...)
	out = append(out, detectStrengthPatterns(p)...)
	out = append(out, detectGrowthOpportunities(p)...)
	out = append(out, detectCompatibilityPatterns(p)...)
	return out
}

func detectContradictions(p profiles.Profile) []pattern {
	var out []pattern

	if p.MBTI != "" && p.BigFive != nil {
		mbtiExtraverted := strings.HasPrefix(p.MBTI, "E")
		ext := p.BigFive.Extraversion
		if (mbtiExtraverted && ext < 40) || (!mbtiExtraverted && ext > 60) {
			out = append(out, pattern{
				Type:        patternContradiction,
				Confidence:  0.7,
				Frameworks:  []string{"mbti", "bigFive"},
				Description: "Extraversion mismatch between MBTI and Big Five",
				Weight:      frameworkWeights[profiles.FrameworkMBTI] + frameworkWeights[profiles.FrameworkBigFive],
			})
		}
	}

	if p.AttachmentStyle == profiles.AttachmentAnxious && p.BigFive != nil && p.BigFive.Neuroticism > 70 {
		out = append(out, pattern{
			Type:        patternContradiction,
			Confidence:  0.8,
			Frameworks:  []string{"attachmentStyle", "bigFive"},
			Description: "High anxiety across multiple frameworks",
			Weight:      frameworkWeights[profiles.FrameworkAttachmentStyle] + frameworkWeights[profiles.FrameworkBigFive],
		})
	}

	return out
}

func detectStrengthPatterns(p profiles.Profile) []pattern {
	var out []pattern

	if p.BigFive != nil {
		bf := p.BigFive
		traits := []struct {
			score int
			desc  string
		}{
			{bf.Openness, "High openness to experience"},
			{bf.Conscientiousness, "High conscientiousness"},
			{bf.Extraversion, "High extraversion"},
			{bf.Agreeableness, "High agreeableness"},
		}
		for _, t := range traits {
			if t.score > 75 {
				out = append(out, pattern{
					Type:        patternStrength,
					Confidence:  0.8,
					Frameworks:  []string{"bigFive"},
					Description: t.desc,
					Weight:      frameworkWeights[profiles.FrameworkBigFive],
				})
			}
		}
	}

	if p.AttachmentStyle == profiles.AttachmentSecure {
		out = append(out, pattern{
			Type:        patternStrength,
			Confidence:  0.9,
			Frameworks:  []string{"attachmentStyle"},
			Description: "Secure attachment style",
			Weight:      frameworkWeights[profiles.FrameworkAttachmentStyle],
		})
	}

	return out
}

func detectGrowthOpportunities(p profiles.Profile) []pattern {
	var out []pattern

	if p.BigFive != nil {
		bf := p.BigFive
		if bf.Conscientiousness < 40 {
			out = append(out, pattern{
				Type:        patternGrowthOpportunity,
				Confidence:  0.75,
				Frameworks:  []string{"bigFive"},
				Description: "Low conscientiousness - organization opportunity",
				Weight:      frameworkWeights[profiles.FrameworkBigFive],
			})
		}
		if bf.Agreeableness < 40 {
			out = append(out, pattern{
				Type:        patternGrowthOpportunity,
				Confidence:  0.7,
				Frameworks:  []string{"bigFive"},
				Description: "Low agreeableness - empathy development",
				Weight:      frameworkWeights[profiles.FrameworkBigFive],
			})
		}
		if bf.Neuroticism > 70 {
			out = append(out, pattern{
				Type:        patternGrowthOpportunity,
				Confidence:  0.8,
				Frameworks:  []string{"bigFive"},
				Description: "High neuroticism - emotional regulation",
				Weight:      frameworkWeights[profiles.FrameworkBigFive],
			})
		}
	}

	if p.AttachmentStyle != "" && p.AttachmentStyle != profiles.AttachmentSecure {
		out = append(out, pattern{
			Type:        patternGrowthOpportunity,
			Confidence:  0.85,
			Frameworks:  []string{"attachmentStyle"},
			Description: fmt.Sprintf("%s attachment - relationship work", p.AttachmentStyle),
			Weight:      frameworkWeights[profiles.FrameworkAttachmentStyle],
		})
	}

	return out
}

func detectCompatibilityPatterns(p profiles.Profile) []pattern {
	var out []pattern

	if p.AttachmentStyle != "" {
		out = append(out, pattern{
			Type:        patternCompatibility,
			Confidence:  0.9,
			Frameworks:  []string{"attachmentStyle"},
			Description: fmt.Sprintf("Attachment-based compatibility for %s", p.AttachmentStyle),
			Weight:      frameworkWeights[profiles.FrameworkAttachmentStyle],
		})
	}

	if p.BigFive != nil {
		out = append(out, pattern{
			Type:        patternCompatibility,
			Confidence:  0.7,
			Frameworks:  []string{"bigFive"},
			Description: "Big Five complementary trait needs",
			Weight:      frameworkWeights[profiles.FrameworkBigFive],
		})
	}

	if top, ok := p.PrimaryLoveLanguage(); ok {
		out = append(out, pattern{
			Type:        patternCompatibility,
			Confidence:  0.75,
			Frameworks:  []string{"loveLanguages"},
			Description: fmt.Sprintf("Primary love language: %s", top),
			Weight:      frameworkWeights[profiles.FrameworkLoveLanguages],
		})
	}

	return out
}
