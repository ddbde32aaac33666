package ai

import (
	"fmt"
	"time"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

// fallbackTemplates carry a static argument per personality, cycled by
// round number so repeated failures still vary. The topic is interpolated
// into each template.
var fallbackTemplates = map[string][]string{
	"The Philosopher": {
		"From an ethical standpoint, we must carefully examine the moral implications of %s and consider how it affects human dignity and our collective well-being.",
		"The philosophical question we must ask about %s is: what does this mean for our understanding of justice, truth, and the good life?",
		"The history of philosophy teaches us that complex issues like %s require us to balance competing moral principles and consider long-term consequences.",
	},
	"The Scientist": {
		"The evidence regarding %s requires rigorous analysis of peer-reviewed research and empirical data before we can reach valid conclusions.",
		"From a scientific perspective, we need more controlled studies and data collection to fully understand the implications of %s.",
		"The methodology for evaluating %s must be based on reproducible experiments and statistical significance.",
	},
	"The Advocate": {
		"We must examine how %s impacts marginalized communities and ensure that justice and equality remain our guiding principles.",
		"The human rights implications of %s cannot be ignored - we must protect the most vulnerable in our society.",
		"Social justice demands that we consider %s through the lens of equity and fairness for all people.",
	},
	"The Pragmatist": {
		"The practical implementation of policies regarding %s must consider cost-effectiveness, resource allocation, and real-world feasibility.",
		"Let's focus on actionable solutions for %s that can be implemented efficiently and measured for success.",
		"The bottom line on %s is what actually works in practice, not just what sounds good in theory.",
	},
	"The Contrarian": {
		"Popular opinion about %s may be fundamentally misguided - we should question our assumptions and consider alternative perspectives.",
		"The conventional wisdom regarding %s deserves skeptical examination. What if the majority view is wrong?",
		"Before accepting mainstream conclusions about %s, let's challenge the underlying premises and explore contrarian viewpoints.",
	},
	"The Historian": {
		"History shows us clear patterns regarding %s that we can learn from to avoid repeating past mistakes.",
		"Looking at historical precedents for %s, we can see how similar situations have played out across different eras and cultures.",
		"The lessons of history regarding %s remind us that those who ignore the past are doomed to repeat its errors.",
	},
}

// Fallback returns the deterministic degraded argument for a personality:
// same personality, topic and round always yield the same text.
func (g *ArgumentGenerator) Fallback(p personality.Personality, topic string, round int) core.Argument {
	return core.Argument{
		PersonalityID: p.Name,
		RoundNumber:   round,
		Content:       truncateArgument(fallbackText(p, topic, round), g.cfg.MaxArgumentLength),
		Timestamp:     time.Now(),
		Degraded:      true,
	}
}

func fallbackText(p personality.Personality, topic string, round int) string {
	templates, ok := fallbackTemplates[p.Name]
	if !ok || len(templates) == 0 {
		return fmt.Sprintf("This topic deserves thoughtful consideration from multiple perspectives, including the unique viewpoint I bring as %s.", p.Name)
	}
	idx := 0
	if round > 0 {
		idx = (round - 1) % len(templates)
	}
	return fmt.Sprintf(templates[idx], topic)
}
