package insights

import (
	"strings"

	"traits-backend/internal/profiles"
)

// Self-improvement rules focus on growth work: insecure attachment first,
// then Big Five low scores, then cross-framework contradictions.

var attachmentGrowthTemplates = map[profiles.AttachmentStyle]template{
	profiles.AttachmentAnxious: {
		Title:       "Building Emotional Self-Reliance",
		Description: "Your anxious attachment style suggests you may seek excessive reassurance in relationships",
		Explanation: "Anxious attachment often develops from inconsistent caregiving in childhood. This pattern can lead to relationship anxiety and fear of abandonment. The good news is that attachment styles can evolve with awareness and practice.",
		Actionable:  "Practice self-soothing techniques when feeling anxious. Start a daily journaling practice to identify triggers. Consider therapy focused on attachment work, particularly EMDR or somatic experiencing.",
		Confidence:  0.85,
		Sources:     []string{"attachmentStyle"},
	},
	profiles.AttachmentAvoidant: {
		Title:       "Embracing Emotional Vulnerability",
		Description: "Your avoidant attachment style indicates you may struggle with emotional intimacy",
		Explanation: "Avoidant attachment typically forms as a protective mechanism when emotional needs were dismissed or overwhelming. While independence is valuable, deep connections require vulnerability.",
		Actionable:  "Start small by sharing one feeling daily with someone you trust. Practice staying present during emotional conversations instead of withdrawing. Explore therapy to understand your emotional patterns.",
		Confidence:  0.85,
		Sources:     []string{"attachmentStyle"},
	},
	profiles.AttachmentFearfulAvoidant: {
		Title:       "Navigating the Push-Pull Dynamic",
		Description: "Your fearful-avoidant attachment creates a challenging push-pull pattern in relationships",
		Explanation: "Fearful-avoidant attachment combines both anxious and avoidant patterns, creating internal conflict between wanting closeness and fearing it. This is often the result of trauma or highly inconsistent caregiving.",
		Actionable:  "Work with a trauma-informed therapist who specializes in attachment. Practice grounding techniques when feeling overwhelmed. Build awareness of your push-pull patterns through mindful observation.",
		Confidence:  0.9,
		Sources:     []string{"attachmentStyle"},
	},
}

func selfImprovementCandidates(p profiles.Profile) []candidate {
	var cands []candidate
	cands = append(cands, growthFromAttachment(p)...)
	cands = append(cands, growthFromBigFive(p)...)
	cands = append(cands, growthFromContradictions(p)...)
	return cands
}

func growthFromAttachment(p profiles.Profile) []candidate {
	var cands []candidate

	if t, ok := attachmentGrowthTemplates[p.AttachmentStyle]; ok {
		cands = append(cands, candidate{insight: fromTemplate(t), weight: 0.4, priority: 1})
	}

	if p.AttachmentStyle == profiles.AttachmentAnxious && p.BigFive != nil && p.BigFive.Neuroticism > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Managing Heightened Emotional Sensitivity",
				Description: "Your combination of anxious attachment and high neuroticism creates intense emotional experiences",
				Explanation: "When anxious attachment combines with high neuroticism, emotional reactions can feel overwhelming. This isn't a flaw—it's heightened sensitivity that needs specific tools to manage effectively.",
				Actionable:  "Develop a daily mindfulness practice (even 5 minutes helps). Learn the \"RAIN\" technique (Recognize, Allow, Investigate, Nurture) for intense emotions. Consider medication evaluation with a psychiatrist if anxiety is debilitating.",
				Confidence:  0.88,
				Sources:     []string{"attachmentStyle", "bigFive"},
			}),
			weight:   0.45,
			priority: 1,
		})
	}

	return cands
}

func growthFromBigFive(p profiles.Profile) []candidate {
	if p.BigFive == nil {
		return nil
	}
	var cands []candidate
	bf := p.BigFive

	if bf.Conscientiousness < 40 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Building Sustainable Organization Systems",
				Description: "Your lower conscientiousness score suggests organization and follow-through may be challenging",
				Explanation: "Low conscientiousness isn't about being lazy—it often means you're more spontaneous and flexible. However, modern life requires some structure. The key is building systems that work with your natural tendencies, not against them.",
				Actionable:  "Use external systems instead of willpower: set phone reminders, use habit-stacking (attach new habits to existing ones), and create visible cues. Start with ONE small habit and build from there. Consider body-doubling or accountability partners.",
				Confidence:  0.75,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.3,
			priority: 2,
		})
	}

	if bf.Neuroticism > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Developing Emotional Regulation Skills",
				Description: "Your high neuroticism score indicates you experience emotions intensely and frequently",
				Explanation: "High neuroticism means your emotional system is highly responsive—you feel things deeply. While this can be exhausting, it also means you're capable of profound empathy and awareness. The goal isn't to feel less, but to regulate more effectively.",
				Actionable:  "Learn and practice emotional regulation techniques: box breathing (4-4-4-4), progressive muscle relaxation, or the 5-4-3-2-1 grounding technique. Regular exercise significantly reduces neuroticism. Consider CBT or DBT therapy.",
				Confidence:  0.8,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.32,
			priority: 2,
		})
	}

	if bf.Agreeableness < 40 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Balancing Assertiveness with Collaboration",
				Description: "Your lower agreeableness suggests you prioritize honesty and independence over harmony",
				Explanation: "Low agreeableness isn't about being mean—it often indicates strong boundaries and directness. However, relationships require some compromise and empathy. You can maintain your authenticity while developing collaborative skills.",
				Actionable:  "Practice perspective-taking: before responding, ask \"What might they be feeling?\" Use \"I\" statements to express disagreement without attacking. Recognize when to prioritize the relationship over being right.",
				Confidence:  0.72,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.28,
			priority: 2,
		})
	}

	if bf.Extraversion < 30 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Managing Social Energy Strategically",
				Description: "Your low extraversion means social interaction drains rather than energizes you",
				Explanation: "Being introverted in an extraverted world can feel exhausting. The key is honoring your need for solitude while maintaining necessary social connections. You don't need to become extraverted—you need strategies that work for your energy system.",
				Actionable:  "Schedule recovery time after social events. Communicate your needs clearly (\"I need to recharge alone\"). Choose quality over quantity in friendships. Find social activities that align with your interests rather than forcing small talk.",
				Confidence:  0.7,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.25,
			priority: 3,
		})
	}

	return cands
}

func growthFromContradictions(p profiles.Profile) []candidate {
	var cands []candidate

	if p.MBTI != "" && p.BigFive != nil {
		mbtiExtraverted := strings.HasPrefix(p.MBTI, "E")
		switch {
		case mbtiExtraverted && p.BigFive.Extraversion < 40:
			cands = append(cands, candidate{
				insight: fromTemplate(template{
					Title:       "Understanding Your Social Energy Paradox",
					Description: "Your MBTI suggests extraversion, but your Big Five score indicates introversion",
					Explanation: "This contradiction often means you enjoy social interaction in specific contexts (like discussing ideas) but find general socializing draining. You might be a \"social introvert\" or have developed extraverted behaviors that don't match your natural energy patterns.",
					Actionable:  "Identify which social situations energize vs. drain you. Honor your need for alone time even if you seem outgoing. Choose social activities that align with your interests and values rather than forcing yourself into typical \"extraverted\" activities.",
					Confidence:  0.7,
					Sources:     []string{"mbti", "bigFive"},
				}),
				weight:   0.3,
				priority: 2,
			})
		case !mbtiExtraverted && p.BigFive.Extraversion > 60:
			cands = append(cands, candidate{
				insight: fromTemplate(template{
					Title:       "Reconciling Your Social Identity",
					Description: "Your MBTI suggests introversion, but your Big Five score indicates extraversion",
					Explanation: "This pattern might indicate you've identified as introverted due to social anxiety or past experiences, but you actually gain energy from social interaction. Or you might be an \"extraverted introvert\" who needs people but in specific ways.",
					Actionable:  "Experiment with different types of social engagement. Notice when you feel energized vs. drained. Consider whether social anxiety or past experiences have shaped your self-perception. You might benefit from gradually expanding your social comfort zone.",
					Confidence:  0.68,
					Sources:     []string{"mbti", "bigFive"},
				}),
				weight:   0.28,
				priority: 2,
			})
		}
	}

	if p.HumanDesign != nil && p.HumanDesign.Type == "projector" && p.BigFive != nil && p.BigFive.Conscientiousness < 40 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Creating Systems for Your Projector Energy",
				Description: "As a Projector with low conscientiousness, you need external structure to thrive",
				Explanation: "Projectors aren't designed to work like Generators—you need rest and recognition. Combined with low conscientiousness, traditional productivity advice won't work. You need systems designed for your specific energy type.",
				Actionable:  "Work in focused bursts with significant rest between. Wait for invitations and recognition before offering guidance. Create visual systems and external accountability. Your value is in insight, not constant output.",
				Confidence:  0.73,
				Sources:     []string{"humanDesign", "bigFive"},
			}),
			weight:   0.3,
			priority: 2,
		})
	}

	return cands
}
