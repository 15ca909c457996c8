package profiles

import "strings"

// FieldError describes a single rejected field, rendered into the error
// envelope's details list.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// UpdateProfileRequest is the PUT /profile payload. Big Five scores arrive as
// a loose map so numeric strings and floats survive coercion; the rest are
// typed and enum-checked.
type UpdateProfileRequest struct {
	BigFive         map[string]any     `json:"bigFive"`
	MBTI            string             `json:"mbti"`
	Enneagram       *int               `json:"enneagram"`
	Zodiac          *ZodiacData        `json:"zodiac"`
	ChineseZodiac   *ChineseZodiacData `json:"chineseZodiac"`
	HumanDesign     *HumanDesignData   `json:"humanDesign"`
	AttachmentStyle string             `json:"attachmentStyle"`
	LoveLanguages   []LoveLanguage     `json:"loveLanguages"`
}

// Validate builds a Profile from the payload. Numeric fields that cannot be
// coerced degrade to absent; enum violations and incomplete love-language
// rankings are reported as field errors and reject the request.
func (r UpdateProfileRequest) Validate(userID string) (Profile, []FieldError) {
	var errs []FieldError
	p := Profile{UserID: userID}

	if r.BigFive != nil {
		if scores, ok := SanitizeBigFive(r.BigFive); ok {
			p.BigFive = scores
		}
		// unreadable scores fall through as an absent framework
	}

	if r.MBTI != "" {
		code := NormalizeMBTI(r.MBTI)
		if code == "" {
			errs = append(errs, FieldError{Field: "mbti", Issue: "unknown type code"})
		} else {
			p.MBTI = code
		}
	}

	if r.Enneagram != nil {
		if *r.Enneagram < 1 || *r.Enneagram > 9 {
			errs = append(errs, FieldError{Field: "enneagram", Issue: "must be between 1 and 9"})
		} else {
			p.Enneagram = *r.Enneagram
		}
	}

	if r.Zodiac != nil {
		z := ZodiacData{
			Sun:    strings.ToLower(strings.TrimSpace(r.Zodiac.Sun)),
			Moon:   strings.ToLower(strings.TrimSpace(r.Zodiac.Moon)),
			Rising: strings.ToLower(strings.TrimSpace(r.Zodiac.Rising)),
		}
		switch {
		case !ValidZodiacSign(z.Sun):
			errs = append(errs, FieldError{Field: "zodiac.sun", Issue: "unknown sign"})
		case z.Moon != "" && !ValidZodiacSign(z.Moon):
			errs = append(errs, FieldError{Field: "zodiac.moon", Issue: "unknown sign"})
		case z.Rising != "" && !ValidZodiacSign(z.Rising):
			errs = append(errs, FieldError{Field: "zodiac.rising", Issue: "unknown sign"})
		default:
			p.Zodiac = &z
		}
	}

	if r.ChineseZodiac != nil {
		cz := ChineseZodiacData{
			Animal:  strings.ToLower(strings.TrimSpace(r.ChineseZodiac.Animal)),
			Element: strings.ToLower(strings.TrimSpace(r.ChineseZodiac.Element)),
			Year:    r.ChineseZodiac.Year,
		}
		switch {
		case !ValidChineseAnimal(cz.Animal):
			errs = append(errs, FieldError{Field: "chineseZodiac.animal", Issue: "unknown animal"})
		case !ValidChineseElement(cz.Element):
			errs = append(errs, FieldError{Field: "chineseZodiac.element", Issue: "unknown element"})
		default:
			p.ChineseZodiac = &cz
		}
	}

	if r.HumanDesign != nil {
		hd := HumanDesignData{
			Type:      strings.ToLower(strings.TrimSpace(r.HumanDesign.Type)),
			Authority: strings.TrimSpace(r.HumanDesign.Authority),
			Profile:   strings.TrimSpace(r.HumanDesign.Profile),
		}
		if !ValidHumanDesignType(hd.Type) {
			errs = append(errs, FieldError{Field: "humanDesign.type", Issue: "unknown type"})
		} else {
			p.HumanDesign = &hd
		}
	}

	if r.AttachmentStyle != "" {
		style := AttachmentStyle(strings.ToLower(strings.TrimSpace(r.AttachmentStyle)))
		if !ValidAttachmentStyle(style) {
			errs = append(errs, FieldError{Field: "attachmentStyle", Issue: "unknown style"})
		} else {
			p.AttachmentStyle = style
		}
	}

	if len(r.LoveLanguages) > 0 {
		normalized := make([]LoveLanguage, len(r.LoveLanguages))
		for i, l := range r.LoveLanguages {
			normalized[i] = LoveLanguage{
				Type: LoveLanguageType(strings.ToLower(strings.TrimSpace(string(l.Type)))),
				Rank: l.Rank,
			}
		}
		check := Profile{LoveLanguages: normalized}
		if !check.HasCompleteLoveLanguages() {
			errs = append(errs, FieldError{
				Field: "loveLanguages",
				Issue: "must rank all five languages exactly once (ranks 1-5)",
			})
		} else {
			p.LoveLanguages = normalized
		}
	}

	return p, errs
}
