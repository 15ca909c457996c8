package profiles

import "time"

// BigFiveScores holds the five trait scores, each clamped to 0-100.
type BigFiveScores struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// AttachmentStyle is one of the four adult attachment styles.
type AttachmentStyle string

const (
	AttachmentSecure          AttachmentStyle = "secure"
	AttachmentAnxious         AttachmentStyle = "anxious"
	AttachmentAvoidant        AttachmentStyle = "avoidant"
	AttachmentFearfulAvoidant AttachmentStyle = "fearful-avoidant"
)

// LoveLanguageType is one of the five love languages.
type LoveLanguageType string

const (
	LoveWordsOfAffirmation LoveLanguageType = "words-of-affirmation"
	LoveQualityTime        LoveLanguageType = "quality-time"
	LoveActsOfService      LoveLanguageType = "acts-of-service"
	LovePhysicalTouch      LoveLanguageType = "physical-touch"
	LoveGifts              LoveLanguageType = "gifts"
)

// LoveLanguage pairs a language with its rank (1 = primary).
type LoveLanguage struct {
	Type LoveLanguageType `json:"type"`
	Rank int              `json:"rank"`
}

// ZodiacData holds western zodiac signs. Moon and rising are optional.
type ZodiacData struct {
	Sun    string `json:"sun"`
	Moon   string `json:"moon,omitempty"`
	Rising string `json:"rising,omitempty"`
}

// ChineseZodiacData holds the Chinese zodiac animal, element, and birth year.
type ChineseZodiacData struct {
	Animal  string `json:"animal"`
	Element string `json:"element"`
	Year    int    `json:"year"`
}

// HumanDesignData holds the Human Design type plus optional detail fields.
type HumanDesignData struct {
	Type      string `json:"type"`
	Authority string `json:"authority,omitempty"`
	Profile   string `json:"profile,omitempty"`
}

// Profile is a user's assessment record across all frameworks. Every
// framework is optional; absent frameworks simply don't drive insights.
type Profile struct {
	UserID          string             `json:"userId"`
	BigFive         *BigFiveScores     `json:"bigFive,omitempty"`
	MBTI            string             `json:"mbti,omitempty"`
	Enneagram       int                `json:"enneagram,omitempty"`
	Zodiac          *ZodiacData        `json:"zodiac,omitempty"`
	ChineseZodiac   *ChineseZodiacData `json:"chineseZodiac,omitempty"`
	HumanDesign     *HumanDesignData   `json:"humanDesign,omitempty"`
	AttachmentStyle AttachmentStyle    `json:"attachmentStyle,omitempty"`
	LoveLanguages   []LoveLanguage     `json:"loveLanguages,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Framework keys recognized for completeness. Enneagram is stored for
// display but is not counted here.
const (
	FrameworkBigFive         = "bigFive"
	FrameworkMBTI            = "mbti"
	FrameworkZodiac          = "zodiac"
	FrameworkChineseZodiac   = "chineseZodiac"
	FrameworkHumanDesign     = "humanDesign"
	FrameworkAttachmentStyle = "attachmentStyle"
	FrameworkLoveLanguages   = "loveLanguages"
)

// Frameworks lists the recognized frameworks in display order.
func Frameworks() []string {
	return []string{
		FrameworkBigFive,
		FrameworkMBTI,
		FrameworkZodiac,
		FrameworkChineseZodiac,
		FrameworkHumanDesign,
		FrameworkAttachmentStyle,
		FrameworkLoveLanguages,
	}
}

// Has reports whether the named framework is populated. Love languages only
// count once the full five-language ranking is present.
func (p Profile) Has(framework string) bool {
	switch framework {
	case FrameworkBigFive:
		return p.BigFive != nil
	case FrameworkMBTI:
		return p.MBTI != ""
	case FrameworkZodiac:
		return p.Zodiac != nil
	case FrameworkChineseZodiac:
		return p.ChineseZodiac != nil
	case FrameworkHumanDesign:
		return p.HumanDesign != nil
	case FrameworkAttachmentStyle:
		return p.AttachmentStyle != ""
	case FrameworkLoveLanguages:
		return p.HasCompleteLoveLanguages()
	default:
		return false
	}
}

// PopulatedFrameworks returns the frameworks present on the profile.
func (p Profile) PopulatedFrameworks() []string {
	out := make([]string, 0, 7)
	for _, f := range Frameworks() {
		if p.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Completeness is the percentage of recognized frameworks populated,
// rounded to the nearest integer.
func (p Profile) Completeness() int {
	total := len(Frameworks())
	populated := len(p.PopulatedFrameworks())
	return int(float64(populated)/float64(total)*100 + 0.5)
}

// IsEmpty reports whether no framework is populated at all.
func (p Profile) IsEmpty() bool {
	return len(p.PopulatedFrameworks()) == 0
}

// HasCompleteLoveLanguages reports whether the love-language ranking is a
// full bijection: all five types present, ranks 1..5 used exactly once.
func (p Profile) HasCompleteLoveLanguages() bool {
	if len(p.LoveLanguages) != 5 {
		return false
	}
	types := make(map[LoveLanguageType]bool, 5)
	ranks := make(map[int]bool, 5)
	for _, l := range p.LoveLanguages {
		if !ValidLoveLanguageType(l.Type) || l.Rank < 1 || l.Rank > 5 {
			return false
		}
		if types[l.Type] || ranks[l.Rank] {
			return false
		}
		types[l.Type] = true
		ranks[l.Rank] = true
	}
	return true
}

// PrimaryLoveLanguage returns the rank-1 language. It only answers when the
// ranking is complete, so partial data never drives a rule.
func (p Profile) PrimaryLoveLanguage() (LoveLanguageType, bool) {
	if !p.HasCompleteLoveLanguages() {
		return "", false
	}
	for _, l := range p.LoveLanguages {
		if l.Rank == 1 {
			return l.Type, true
		}
	}
	return "", false
}
