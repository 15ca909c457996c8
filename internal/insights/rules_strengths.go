package insights

import (
	"fmt"

	"traits-backend/internal/profiles"
)

// Strength rules surface pronounced scores, secure attachment, and rare
// trait combinations.

func strengthCandidates(p profiles.Profile) []candidate {
	var cands []candidate
	cands = append(cands, strengthsFromBigFive(p)...)
	cands = append(cands, strengthsFromAttachment(p)...)
	cands = append(cands, strengthsFromRareCombinations(p)...)
	cands = append(cands, strengthsFromComplementaryTraits(p)...)
	return cands
}

func strengthsFromBigFive(p profiles.Profile) []candidate {
	if p.BigFive == nil {
		return nil
	}
	var cands []candidate
	bf := p.BigFive

	if bf.Openness > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Creative and Intellectually Curious",
				Description: "Your high openness makes you naturally innovative and adaptable to new ideas",
				Explanation: "High openness is associated with creativity, intellectual curiosity, and comfort with ambiguity. You likely enjoy exploring new concepts, appreciate art and beauty, and can see connections others miss. This trait is highly valued in creative fields, research, and innovation.",
				Actionable:  "Leverage this strength in roles requiring innovation, problem-solving, or creative thinking. Seek environments that value new ideas. Share your unique perspectives—they're valuable. Consider creative hobbies or fields where your imagination can flourish.",
				Confidence:  0.85,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.3,
			priority: 1,
		})
	}

	if bf.Conscientiousness > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Reliable and Achievement-Oriented",
				Description: "Your high conscientiousness makes you exceptionally dependable and goal-focused",
				Explanation: "High conscientiousness is one of the strongest predictors of success across domains. You naturally plan ahead, follow through on commitments, and maintain high standards. People trust you because you consistently deliver. This trait is invaluable in leadership, project management, and any role requiring accountability.",
				Actionable:  "Take on leadership roles where your reliability shines. Use your organizational skills to mentor others. Be careful not to burn out—your high standards can be exhausting. Your follow-through is a superpower in a world of flaky people.",
				Confidence:  0.88,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.32,
			priority: 1,
		})
	}

	if bf.Extraversion > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Energizing and Socially Confident",
				Description: "Your high extraversion gives you natural charisma and social energy",
				Explanation: "High extraversion means you energize others and thrive in social situations. You likely build networks easily, communicate effectively, and create enthusiasm. This trait is powerful in sales, leadership, teaching, and any role requiring social influence. You make people feel engaged and alive.",
				Actionable:  "Pursue roles with high social interaction—you'll excel and feel fulfilled. Use your energy to build communities and networks. Your ability to connect people is valuable. Balance social time with strategic alone time for deep work.",
				Confidence:  0.82,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.28,
			priority: 1,
		})
	}

	if bf.Agreeableness > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Empathetic and Collaborative",
				Description: "Your high agreeableness makes you naturally compassionate and team-oriented",
				Explanation: "High agreeableness means you excel at understanding others' perspectives and creating harmony. You're likely trusted, liked, and sought out for advice. This trait is essential in counseling, healthcare, education, and team environments. You make people feel heard and valued.",
				Actionable:  "Leverage your empathy in helping professions or team leadership. Your ability to build consensus is rare and valuable. Set boundaries to avoid being taken advantage of. Your kindness is a strength, not a weakness.",
				Confidence:  0.8,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.27,
			priority: 1,
		})
	}

	if bf.Neuroticism < 30 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Emotionally Stable and Resilient",
				Description: "Your low neuroticism gives you exceptional emotional stability and stress resilience",
				Explanation: "Low neuroticism (high emotional stability) is a significant strength. You remain calm under pressure, recover quickly from setbacks, and don't get overwhelmed by stress. This makes you reliable in crises and able to think clearly when others panic. It's a leadership superpower.",
				Actionable:  "Take on high-pressure roles where your calm is an asset. Others will look to you for stability during chaos. Use your resilience to support more anxious people. Your even-keeled nature is incredibly valuable in leadership and crisis management.",
				Confidence:  0.87,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.31,
			priority: 1,
		})
	}

	return cands
}

func strengthsFromAttachment(p profiles.Profile) []candidate {
	if p.AttachmentStyle != profiles.AttachmentSecure {
		return nil
	}
	return []candidate{{
		insight: fromTemplate(template{
			Title:       "Secure Attachment Foundation",
			Description: "Your secure attachment style is one of your greatest relationship assets",
			Explanation: "Secure attachment is relatively rare (only about 50-60% of adults) and incredibly valuable. You can be intimate without losing yourself, handle conflict constructively, and trust without being naive. You likely had consistent, responsive caregiving that taught you relationships are safe. This is the foundation for healthy relationships.",
			Actionable:  "Use your secure attachment to model healthy relationship patterns for others. You can help anxious partners feel safe and avoidant partners open up. Your ability to communicate needs clearly and respond to others' needs is a gift. Consider relationship coaching or mentoring.",
			Confidence:  0.92,
			Sources:     []string{"attachmentStyle"},
		}),
		weight:   0.4,
		priority: 1,
	}}
}

func strengthsFromRareCombinations(p profiles.Profile) []candidate {
	var cands []candidate

	if p.BigFive != nil && p.BigFive.Openness > 75 && p.BigFive.Conscientiousness > 75 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Disciplined Creativity",
				Description: "Your combination of high openness and conscientiousness is rare and powerful",
				Explanation: "Most creative people struggle with follow-through, and most disciplined people struggle with innovation. You have both—the ability to generate novel ideas AND execute them systematically. This combination is found in successful entrepreneurs, artists who actually finish projects, and innovative leaders.",
				Actionable:  "Pursue ambitious creative projects that require sustained effort. You can succeed where others fail because you combine vision with execution. Consider entrepreneurship, creative direction, or research. Your ability to be both imaginative and reliable is exceptionally rare.",
				Confidence:  0.88,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.38,
			priority: 1,
		})
	}

	if (p.MBTI == "INFJ" || p.MBTI == "INTJ") && p.AttachmentStyle == profiles.AttachmentSecure {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Insightful and Emotionally Grounded",
				Description: "Your combination of intuitive depth and secure attachment is exceptionally rare",
				Explanation: fmt.Sprintf("%s is one of the rarest types (1-3%% of population), and secure attachment with this type is even rarer. You combine deep insight into patterns and people with emotional stability. You can see what others miss while maintaining healthy relationships. This makes you an exceptional counselor, strategist, or advisor.", p.MBTI),
				Actionable:  "Trust your intuitive insights—they're usually right. Use your combination of depth and stability to guide others. You can handle complex emotional situations that would overwhelm others. Consider roles in counseling, strategy, or leadership development.",
				Confidence:  0.85,
				Sources:     []string{"mbti", "attachmentStyle"},
			}),
			weight:   0.36,
			priority: 1,
		})
	}

	if p.BigFive != nil && p.BigFive.Agreeableness > 75 && p.BigFive.Neuroticism < 30 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Calm and Compassionate Presence",
				Description: "Your combination of high agreeableness and emotional stability creates a peaceful strength",
				Explanation: "You combine genuine care for others with emotional resilience—you can be compassionate without being overwhelmed. This is the profile of effective therapists, mediators, and healers. You create safety for others while maintaining your own stability.",
				Actionable:  "Consider helping professions where your calm compassion is needed. You can hold space for others' pain without taking it on. Your presence is healing. Use this gift in counseling, mediation, healthcare, or crisis support.",
				Confidence:  0.83,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.34,
			priority: 1,
		})
	}

	return cands
}

func strengthsFromComplementaryTraits(p profiles.Profile) []candidate {
	var cands []candidate

	if p.BigFive != nil && p.BigFive.Openness > 70 && p.BigFive.Extraversion > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Socially Creative Innovator",
				Description: "Your combination of openness and extraversion makes you a charismatic innovator",
				Explanation: "You don't just have creative ideas—you can sell them and inspire others to join you. This combination is powerful in entrepreneurship, marketing, teaching, and leadership. You make innovation accessible and exciting to others.",
				Actionable:  "Lead creative teams or innovative projects. Your ability to generate ideas AND get people excited about them is rare. Consider roles in creative leadership, innovation consulting, or entrepreneurship. You can change minds and inspire action.",
				Confidence:  0.8,
				Sources:     []string{"bigFive"},
			}),
			weight:   0.3,
			priority: 2,
		})
	}

	if p.HumanDesign != nil && p.HumanDesign.Type == "manifesting-generator" && p.BigFive != nil && p.BigFive.Conscientiousness > 70 {
		cands = append(cands, candidate{
			insight: fromTemplate(template{
				Title:       "Efficient Multi-Passionate Achiever",
				Description: "Your Manifesting Generator energy with high conscientiousness creates powerful efficiency",
				Explanation: "Manifesting Generators have sustainable energy and can do multiple things simultaneously. Combined with high conscientiousness, you can juggle multiple projects and actually complete them. You're efficient, energetic, and reliable—a rare combination.",
				Actionable:  "Embrace your multi-passionate nature while using your discipline to finish what you start. You can handle more than most people. Build systems that support your varied interests. Your ability to move quickly AND follow through is a superpower.",
				Confidence:  0.78,
				Sources:     []string{"humanDesign", "bigFive"},
			}),
			weight:   0.28,
			priority: 2,
		})
	}

	return cands
}
