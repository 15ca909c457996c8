package insights

import (
	"strings"

	"traits-backend/internal/profiles"
)

// Green-flag rules recommend partner qualities to seek out. Attachment style
// dominates the ranking, then Big Five, MBTI, and the primary love language.

var attachmentGreenFlagTemplates = map[profiles.AttachmentStyle]template{
	profiles.AttachmentSecure: {
		Title:       "Seek Another Secure Partner",
		Description: "Look for partners who are comfortable with both intimacy and independence",
		Explanation: "As someone with secure attachment, you'll thrive most with another secure partner. Look for someone who can communicate their needs directly, doesn't play games, handles conflict constructively, and is comfortable with both closeness and space. Secure-secure pairings have the highest relationship satisfaction.",
		Actionable:  "Green flags to watch for: They communicate clearly about their feelings and needs. They're comfortable with commitment but don't rush it. They can handle disagreements without shutting down or escalating. They have healthy friendships and family relationships. They trust you without being controlling.",
		Confidence:  0.92,
	},
	profiles.AttachmentAnxious: {
		Title:       "Prioritize Secure, Consistent Partners",
		Description: "Seek partners who provide consistent reassurance and emotional availability",
		Explanation: "With anxious attachment, you need a partner who is reliably responsive and emotionally available. Secure partners are ideal—they can provide the consistency you need without feeling smothered. Avoid avoidant partners who will trigger your anxiety. The right partner will make you feel safe enough to develop more security yourself.",
		Actionable:  "Green flags to watch for: They respond to texts/calls consistently. They're comfortable with emotional expression and don't dismiss your feelings. They proactively reassure you. They're patient with your need for connection. They have secure friendships. They don't pull away when you express needs.",
		Confidence:  0.9,
	},
	profiles.AttachmentAvoidant: {
		Title:       "Find Patient, Secure Partners",
		Description: "Look for partners who respect your need for space while gently encouraging intimacy",
		Explanation: "With avoidant attachment, you need a secure partner who won't take your need for space personally but also won't let you completely withdraw. They should be comfortable with slower relationship progression and respect your independence while creating safety for vulnerability. Avoid anxious partners who will feel rejected by your need for space.",
		Actionable:  "Green flags to watch for: They give you space without playing games. They're secure enough not to take your independence personally. They communicate their needs clearly without being demanding. They have their own full life and interests. They gently encourage emotional sharing without pressure.",
		Confidence:  0.88,
	},
	profiles.AttachmentFearfulAvoidant: {
		Title:       "Seek Exceptionally Secure, Patient Partners",
		Description: "Look for partners with strong secure attachment who can handle your push-pull dynamic",
		Explanation: "With fearful-avoidant attachment, you need an exceptionally secure partner who can remain stable through your push-pull patterns. They need to be patient, non-reactive, and willing to work through your fears without taking them personally. This is challenging—consider working on your attachment in therapy before or during a relationship.",
		Actionable:  "Green flags to watch for: They remain calm and consistent even when you push away. They have done their own therapy/healing work. They can set boundaries without being harsh. They're comfortable with complexity and don't need you to be \"easy.\" They encourage therapy and personal growth.",
		Confidence:  0.91,
	},
}

var loveLanguageGreenFlagTemplates = map[profiles.LoveLanguageType]template{
	profiles.LoveWordsOfAffirmation: {
		Title:       "Seek Verbally Expressive Partners",
		Description: "Look for partners who naturally express appreciation and affection verbally",
		Explanation: "Your primary love language is Words of Affirmation—you feel most loved through verbal expressions of care, appreciation, and encouragement. You need a partner who is comfortable saying \"I love you,\" giving compliments, and verbally affirming you regularly. Silent love won't feel like love to you.",
		Actionable:  "Green flags to watch for: They compliment you genuinely and often. They verbally express their feelings. They send sweet texts or leave notes. They tell you specifically what they appreciate about you. They're comfortable saying \"I love you.\"",
		Confidence:  0.76,
	},
	profiles.LoveQualityTime: {
		Title:       "Prioritize Present, Attentive Partners",
		Description: "Seek partners who value undivided attention and meaningful time together",
		Explanation: "Your primary love language is Quality Time—you feel most loved when someone gives you their full, undivided attention. You need a partner who puts away their phone, plans dates, and creates space for connection. Distracted presence feels like rejection to you.",
		Actionable:  "Green flags to watch for: They put their phone away during conversations. They plan dates and activities together. They create rituals for connection. They're fully present when with you. They prioritize one-on-one time.",
		Confidence:  0.78,
	},
	profiles.LoveActsOfService: {
		Title:       "Value Partners Who Show Love Through Actions",
		Description: "Look for partners who naturally help, support, and lighten your load",
		Explanation: "Your primary love language is Acts of Service—you feel most loved when someone does things to make your life easier. You need a partner who notices what needs doing and does it without being asked. Words without actions feel empty to you.",
		Actionable:  "Green flags to watch for: They help without being asked. They notice what would make your life easier. They follow through on promises. They take care of practical things. They show love through helpful actions.",
		Confidence:  0.77,
	},
	profiles.LovePhysicalTouch: {
		Title:       "Seek Naturally Affectionate Partners",
		Description: "Look for partners who are comfortable with frequent physical affection",
		Explanation: "Your primary love language is Physical Touch—you feel most loved through physical affection, from hand-holding to hugs to sexual intimacy. You need a partner who is naturally touchy and doesn't find your need for physical connection clingy. Physical distance feels like emotional distance to you.",
		Actionable:  "Green flags to watch for: They initiate physical affection regularly. They're comfortable with public displays of affection. They cuddle, hold hands, and touch you often. They don't pull away from your touch. They understand your need for physical connection.",
		Confidence:  0.79,
	},
	profiles.LoveGifts: {
		Title:       "Appreciate Thoughtful, Symbolic Partners",
		Description: "Seek partners who express love through thoughtful gifts and gestures",
		Explanation: "Your primary love language is Receiving Gifts—you feel most loved when someone gives you thoughtful gifts that show they were thinking of you. This isn't about materialism; it's about the thought and symbolism. You need a partner who understands that gifts represent love to you.",
		Actionable:  "Green flags to watch for: They give thoughtful gifts (not necessarily expensive). They remember important dates. They bring you small surprises. They understand the symbolic meaning of gifts. They don't mock your appreciation for presents.",
		Confidence:  0.72,
	},
}

func greenFlagCandidates(p profiles.Profile) []candidate {
	var cands []candidate
	cands = append(cands, greenFlagsFromAttachment(p)...)
	cands = append(cands, greenFlagsFromBigFive(p)...)
	cands = append(cands, greenFlagsFromMBTI(p)...)
	cands = append(cands, greenFlagsFromLoveLanguage(p)...)
	return cands
}

func greenFlagsFromAttachment(p profiles.Profile) []candidate {
	t, ok := attachmentGreenFlagTemplates[p.AttachmentStyle]
	if !ok {
		return nil
	}
	ins := fromTemplate(t)
	ins.Sources = []string{"attachmentStyle"}
	return []candidate{{insight: ins, weight: 0.55, priority: 1}}
}

func greenFlagsFromBigFive(p profiles.Profile) []candidate {
	if p.BigFive == nil {
		return nil
	}
	var cands []candidate
	bf := p.BigFive

	if bf.Neuroticism > 65 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Seek Emotionally Stable Partners",
				Description: "Look for partners with low neuroticism who can provide emotional grounding",
				Explanation: "With your higher neuroticism, you'll benefit from a partner who is emotionally stable and calm. They can help regulate your emotional intensity without dismissing your feelings. Two highly neurotic people together can create an anxiety spiral. Look for someone who stays calm in storms.",
				Actionable:  "Green flags to watch for: They remain calm during conflicts or stress. They don't catastrophize or spiral with you. They can soothe your anxiety without invalidating it. They have healthy coping mechanisms. They're not easily rattled by your emotional intensity.",
				Confidence:  0.82,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.28,
			priority: 2,
		})
	}

	if bf.Conscientiousness < 40 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Value Organized, Reliable Partners",
				Description: "Seek partners with higher conscientiousness who can complement your spontaneity",
				Explanation: "Your lower conscientiousness means you're flexible and spontaneous, but you'll benefit from a partner who brings structure and follow-through. They can handle the logistics while you bring creativity and adaptability. This creates a balanced partnership where both strengths shine.",
				Actionable:  "Green flags to watch for: They naturally handle planning and organization. They follow through on commitments reliably. They don't judge your spontaneity but help channel it. They enjoy taking care of practical details. They appreciate your flexibility.",
				Confidence:  0.75,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.25,
			priority: 2,
		})
	}

	if bf.Openness > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Prioritize Intellectually Curious Partners",
				Description: "Look for partners who share your love of ideas, growth, and new experiences",
				Explanation: "Your high openness means you need mental stimulation and growth in relationships. A partner with low openness will feel boring to you, and you'll feel \"too much\" to them. Seek someone who enjoys deep conversations, trying new things, and exploring ideas together.",
				Actionable:  "Green flags to watch for: They enjoy deep, philosophical conversations. They're excited to try new experiences with you. They read, learn, and grow continuously. They appreciate your creativity and unique perspectives. They don't need everything to be conventional.",
				Confidence:  0.8,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.27,
			priority: 2,
		})
	}

	switch {
	case bf.Extraversion > 65:
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Find Socially Energetic Partners",
				Description: "Seek partners who match your social energy and enjoy an active social life",
				Explanation: "Your high extraversion means you need a partner who either matches your social energy or is secure enough to support your social needs without joining every time. Introverted partners may feel drained by your social needs, leading to resentment.",
				Actionable:  "Green flags to watch for: They enjoy socializing and meeting new people. They have their own friend groups and social interests. They don't make you feel guilty for your social needs. They can match your energy for activities and adventures.",
				Confidence:  0.73,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.24,
			priority: 2,
		})
	case bf.Extraversion < 35:
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Seek Partners Who Value Quiet Connection",
				Description: "Look for partners who appreciate depth over breadth in social connection",
				Explanation: "Your introversion means you need a partner who values quality time together and doesn't pressure you into constant socializing. Another introvert or a secure ambivert works well. Highly extraverted partners may feel neglected by your need for alone time.",
				Actionable:  "Green flags to watch for: They enjoy quiet evenings at home. They have a few close friends rather than a huge social circle. They respect your need for alone time to recharge. They find depth and intimacy in one-on-one connection.",
				Confidence:  0.74,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.24,
			priority: 2,
		})
	}

	return cands
}

func greenFlagsFromMBTI(p profiles.Profile) []candidate {
	if p.MBTI == "" {
		return nil
	}
	var cands []candidate

	if strings.Contains(p.MBTI, "N") {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Seek Fellow Intuitive Types",
				Description: "Look for partners who think abstractly and enjoy exploring possibilities",
				Explanation: "As an intuitive type, you think in patterns, possibilities, and abstract concepts. Sensor types (S) focus on concrete details and present reality. While not impossible, N-S pairings often struggle with communication—you'll feel misunderstood, and they'll find you impractical. Fellow intuitives speak your language.",
				Actionable:  "Green flags to watch for: They enjoy discussing ideas, theories, and future possibilities. They understand your metaphors and abstract thinking. They don't constantly ask you to \"be more practical.\" They see the big picture like you do.",
				Confidence:  0.7,
				Sources:     []string{"mbti"},
			}),
			weight:   0.12,
			priority: 3,
		})
	}

	if strings.Contains(p.MBTI, "F") {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Value Emotional Intelligence in Partners",
				Description: "Seek partners who prioritize emotional connection and empathy",
				Explanation: "As a Feeling type, you make decisions based on values and impact on people. You need a partner who either shares this (another F) or deeply respects it (a mature T). Partners who dismiss emotions as \"illogical\" will hurt you. Look for emotional intelligence regardless of type.",
				Actionable:  "Green flags to watch for: They consider how decisions affect people. They validate your feelings even if they don't fully understand them. They show empathy and emotional awareness. They don't mock or dismiss emotional processing.",
				Confidence:  0.68,
				Sources:     []string{"mbti"},
			}),
			weight:   0.11,
			priority: 3,
		})
	}

	return cands
}

func greenFlagsFromLoveLanguage(p profiles.Profile) []candidate {
	top, ok := p.PrimaryLoveLanguage()
	if !ok {
		return nil
	}
	t, ok := loveLanguageGreenFlagTemplates[top]
	if !ok {
		return nil
	}
	ins := fromTemplate(t)
	ins.Sources = []string{"loveLanguages"}
	return []candidate{{insight: ins, weight: 0.08, priority: 4}}
}
