package insights

import (
	"strings"

	"traits-backend/internal/profiles"
)

// Red-flag rules warn about partner patterns the user is vulnerable to.
// Same weighting scheme as green flags: attachment dominates.

var attachmentRedFlagTemplates = map[profiles.AttachmentStyle]template{
	profiles.AttachmentSecure: {
		Title:       "Watch for Emotional Unavailability",
		Description: "Be cautious of partners who can't reciprocate your emotional openness",
		Explanation: "As someone with secure attachment, your biggest risk is not recognizing insecure attachment in others until you're deeply invested. You might mistake avoidant behavior for \"independence\" or anxious behavior for \"passion.\" Your security can make you too patient with unhealthy patterns.",
		Actionable:  "Red flags to watch for: They can't discuss feelings or future plans. They pull away when you get closer. They're inconsistent in communication. They have a pattern of short relationships. They dismiss your emotional needs as \"too much.\" Trust your gut if something feels off.",
		Confidence:  0.85,
	},
	profiles.AttachmentAnxious: {
		Title:       "Avoid Avoidant and Inconsistent Partners",
		Description: "Be very cautious of partners who are emotionally distant or unpredictable",
		Explanation: "With anxious attachment, you're vulnerable to avoidant partners who will trigger your deepest fears. The push-pull dynamic feels like \"chemistry\" but it's actually your attachment system in distress. Inconsistent partners will keep you in a state of anxiety, preventing you from developing security.",
		Actionable:  "Red flags to watch for: They're hot and cold—intense then distant. They avoid commitment conversations. They don't respond to texts for days. They make you feel \"too needy\" for normal relationship needs. They have a pattern of leaving relationships. They can't handle your emotions.",
		Confidence:  0.92,
	},
	profiles.AttachmentAvoidant: {
		Title:       "Watch for Anxious or Clingy Partners",
		Description: "Be cautious of partners whose need for closeness feels overwhelming",
		Explanation: "With avoidant attachment, you're vulnerable to anxious partners who will trigger your need to withdraw. Their need for reassurance will feel suffocating, and your withdrawal will increase their anxiety—creating a painful cycle. You need someone who respects space, not someone who makes you feel guilty for needing it.",
		Actionable:  "Red flags to watch for: They need constant reassurance and contact. They get upset when you need alone time. They want to move very fast (love bombing). They don't have their own full life. They make you feel guilty for your independence. They can't self-soothe.",
		Confidence:  0.88,
	},
	profiles.AttachmentFearfulAvoidant: {
		Title:       "Avoid Both Extremes: Avoidant and Anxious",
		Description: "Be cautious of partners at either extreme of the attachment spectrum",
		Explanation: "With fearful-avoidant attachment, you're vulnerable to both avoidant partners (who trigger your abandonment fears) and anxious partners (who trigger your engulfment fears). You need someone exceptionally secure, which is rare. Be especially careful not to mistake intensity or drama for connection.",
		Actionable:  "Red flags to watch for: They're either too distant or too intense. They have chaotic relationship histories. They can't handle your complexity. They react strongly to your push-pull patterns. They haven't done their own healing work. The relationship feels like a rollercoaster.",
		Confidence:  0.9,
	},
}

var loveLanguageRedFlagTemplates = map[profiles.LoveLanguageType]template{
	profiles.LoveWordsOfAffirmation: {
		Title:       "Avoid Emotionally Unexpressive Partners",
		Description: "Be cautious of partners who can't or won't verbally express affection",
		Explanation: "Your primary love language is Words of Affirmation—you need verbal expressions of love. Partners who are silent or uncomfortable with verbal affection will leave you feeling unloved, even if they show love in other ways. You'll constantly wonder if they care.",
		Actionable:  "Red flags to watch for: They never say \"I love you\" or give compliments. They mock your need for verbal affirmation. They say \"you should just know\" instead of expressing feelings. They're uncomfortable with emotional expression. They think words don't matter.",
		Confidence:  0.74,
	},
	profiles.LoveQualityTime: {
		Title:       "Watch for Distracted or Unavailable Partners",
		Description: "Be cautious of partners who can't give you undivided attention",
		Explanation: "Your primary love language is Quality Time—you need focused, present attention. Partners who are always on their phone, working, or distracted will make you feel invisible and unimportant. You'll feel lonely even when you're together.",
		Actionable:  "Red flags to watch for: They're always on their phone when with you. They cancel plans frequently. They can't be present without distractions. They prioritize work or hobbies over time together. They don't plan dates or quality time. You feel alone even when together.",
		Confidence:  0.76,
	},
	profiles.LoveActsOfService: {
		Title:       "Avoid Partners Who Don't Follow Through",
		Description: "Be cautious of partners who make promises but don't take action",
		Explanation: "Your primary love language is Acts of Service—you need actions, not just words. Partners who say they love you but never help or follow through will leave you feeling unsupported. You'll end up doing everything while they just talk.",
		Actionable:  "Red flags to watch for: They make promises but don't follow through. They never help without being asked repeatedly. They say they love you but don't show it through actions. They expect you to do everything. They don't notice what needs doing.",
		Confidence:  0.75,
	},
	profiles.LovePhysicalTouch: {
		Title:       "Watch for Physically Distant Partners",
		Description: "Be cautious of partners who are uncomfortable with physical affection",
		Explanation: "Your primary love language is Physical Touch—you need regular physical affection. Partners who are uncomfortable with touch or find your need for it \"clingy\" will make you feel rejected and unloved. Physical distance will feel like emotional rejection.",
		Actionable:  "Red flags to watch for: They pull away from your touch. They never initiate physical affection. They mock your need for touch as \"clingy.\" They're uncomfortable with any public affection. They make you feel bad for wanting physical connection.",
		Confidence:  0.77,
	},
	profiles.LoveGifts: {
		Title:       "Avoid Partners Who Dismiss Thoughtfulness",
		Description: "Be cautious of partners who don't understand the symbolic value of gifts",
		Explanation: "Your primary love language is Receiving Gifts—you value thoughtful gestures and symbols of love. Partners who mock this as \"materialistic\" or never remember important dates will make you feel uncared for. It's not about money; it's about thoughtfulness.",
		Actionable:  "Red flags to watch for: They forget birthdays and anniversaries consistently. They mock your appreciation for gifts. They never give thoughtful presents. They call you materialistic. They don't understand that gifts symbolize love to you.",
		Confidence:  0.7,
	},
}

func redFlagCandidates(p profiles.Profile) []candidate {
	var cands []candidate
	cands = append(cands, redFlagsFromAttachment(p)...)
	cands = append(cands, redFlagsFromBigFive(p)...)
	cands = append(cands, redFlagsFromMBTI(p)...)
	cands = append(cands, redFlagsFromLoveLanguage(p)...)
	return cands
}

func redFlagsFromAttachment(p profiles.Profile) []candidate {
	t, ok := attachmentRedFlagTemplates[p.AttachmentStyle]
	if !ok {
		return nil
	}
	ins := fromTemplate(t)
	ins.Sources = []string{"attachmentStyle"}
	return []candidate{{insight: ins, weight: 0.55, priority: 1}}
}

func redFlagsFromBigFive(p profiles.Profile) []candidate {
	if p.BigFive == nil {
		return nil
	}
	var cands []candidate
	bf := p.BigFive

	if bf.Neuroticism > 65 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Avoid Highly Anxious or Reactive Partners",
				Description: "Be cautious of partners with high neuroticism who will amplify your anxiety",
				Explanation: "With your higher neuroticism, pairing with another highly anxious person creates an anxiety spiral. When you're both dysregulated, there's no one to provide grounding. You need someone who can stay calm when you're anxious, not someone who will panic with you.",
				Actionable:  "Red flags to watch for: They catastrophize situations with you. They can't calm you down because they're also spiraling. They have frequent emotional crises. They lack healthy coping mechanisms. Your anxiety feeds off each other. Neither of you can be the stable one.",
				Confidence:  0.83,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.28,
			priority: 2,
		})
	}

	if bf.Openness > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Watch for Rigid or Close-Minded Partners",
				Description: "Be cautious of partners who resist new ideas and prefer strict routines",
				Explanation: "Your high openness means you need growth, exploration, and intellectual stimulation. Partners with very low openness will find you \"too much,\" \"impractical,\" or \"weird.\" They'll resist your desire for new experiences and make you feel like you need to dim your curiosity.",
				Actionable:  "Red flags to watch for: They dismiss your ideas as impractical or weird. They resist trying new things. They need everything to be conventional. They mock your interests or creativity. They want you to \"settle down\" and be more traditional. They find your curiosity annoying.",
				Confidence:  0.78,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.26,
			priority: 2,
		})
	}

	if bf.Conscientiousness < 40 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Avoid Rigid or Judgmental Partners",
				Description: "Be cautious of partners who are inflexible and critical of your spontaneity",
				Explanation: "Your lower conscientiousness means you're flexible and spontaneous. While you can benefit from an organized partner, avoid someone who is rigidly perfectionistic or judgmental. They'll make you feel like you're constantly failing their standards, which is toxic.",
				Actionable:  "Red flags to watch for: They criticize your organization or habits constantly. They can't be flexible or spontaneous. They make you feel inadequate or lazy. They need everything done their way. They can't appreciate your strengths. They try to \"fix\" you.",
				Confidence:  0.75,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.25,
			priority: 2,
		})
	}

	if bf.Agreeableness > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Watch for Partners Who Take Advantage",
				Description: "Be cautious of partners who exploit your kindness and empathy",
				Explanation: "Your high agreeableness is a strength, but it makes you vulnerable to people who will take advantage of your giving nature. You might ignore red flags because you empathize with their struggles or want to see the best in them. Your kindness should be valued, not exploited.",
				Actionable:  "Red flags to watch for: They take more than they give consistently. They guilt-trip you when you set boundaries. They have a victim mentality. They don't reciprocate your care. They expect you to sacrifice your needs. They call you \"selfish\" for basic boundaries.",
				Confidence:  0.8,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.27,
			priority: 2,
		})
	}

	switch {
	case bf.Extraversion > 70:
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Avoid Extremely Introverted Partners",
				Description: "Be cautious of partners who resent your social needs",
				Explanation: "Your high extraversion means you need social interaction to feel alive. An extremely introverted partner will feel drained by your social needs and may resent your friendships or desire to go out. This creates a dynamic where you feel guilty for being yourself.",
				Actionable:  "Red flags to watch for: They make you feel guilty for wanting to socialize. They refuse to meet your friends or attend events. They complain about your social life. They want you home all the time. They don't have their own friends. They make you choose between them and your social needs.",
				Confidence:  0.72,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.23,
			priority: 3,
		})
	case bf.Extraversion < 30:
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Watch for Overly Social or Demanding Partners",
				Description: "Be cautious of partners who don't respect your need for solitude",
				Explanation: "Your introversion means you need alone time to recharge. A highly extraverted partner who doesn't understand this will make you feel guilty for needing space. They might interpret your need for solitude as rejection, creating constant conflict.",
				Actionable:  "Red flags to watch for: They take your need for alone time personally. They want constant social activities. They don't understand why you need to recharge. They pressure you to be more social. They make you feel like something is wrong with you for being introverted.",
				Confidence:  0.73,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.23,
			priority: 3,
		})
	}

	return cands
}

func redFlagsFromMBTI(p profiles.Profile) []candidate {
	if p.MBTI == "" {
		return nil
	}
	var cands []candidate

	if strings.Contains(p.MBTI, "N") {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Watch for Partners Who Dismiss Your Ideas",
				Description: "Be cautious of highly practical partners who find your abstract thinking impractical",
				Explanation: "As an intuitive type, you think in patterns and possibilities. Some sensor types (S) will find this frustrating and constantly tell you to \"be more realistic\" or \"stop overthinking.\" This makes you feel misunderstood and stifled. You need someone who values your way of thinking.",
				Actionable:  "Red flags to watch for: They constantly call you impractical or unrealistic. They don't understand your metaphors or abstract thinking. They dismiss your ideas without consideration. They want everything to be concrete and literal. They make you feel like your thinking is wrong.",
				Confidence:  0.68,
				Sources:     []string{"mbti"},
			}),
			weight:   0.12,
			priority: 3,
		})
	}

	if strings.Contains(p.MBTI, "F") {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Avoid Emotionally Dismissive Partners",
				Description: "Be cautious of partners who mock or invalidate your emotional processing",
				Explanation: "As a Feeling type, you process decisions through values and emotional impact. Some Thinking types will dismiss this as \"illogical\" or \"too emotional,\" making you feel like your way of processing is wrong. You need someone who respects emotional intelligence, even if they process differently.",
				Actionable:  "Red flags to watch for: They call you \"too emotional\" or \"irrational.\" They mock your feelings or empathy. They pride themselves on being \"logical\" in a way that dismisses emotions. They can't validate your feelings. They make you feel weak for caring about people.",
				Confidence:  0.7,
				Sources:     []string{"mbti"},
			}),
			weight:   0.11,
			priority: 3,
		})
	}

	return cands
}

func redFlagsFromLoveLanguage(p profiles.Profile) []candidate {
	top, ok := p.PrimaryLoveLanguage()
	if !ok {
		return nil
	}
	t, ok := loveLanguageRedFlagTemplates[top]
	if !ok {
		return nil
	}
	ins := fromTemplate(t)
	ins.Sources = []string{"loveLanguages"}
	return []candidate{{insight: ins, weight: 0.08, priority: 4}}
}
