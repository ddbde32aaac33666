package ai

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

const judgeSystemPrompt = "You are an impartial debate judge. Evaluate arguments on their merits only."

// History limits keep prompts bounded regardless of debate length.
const (
	maxHistoryEntries = 8
	historySnippetLen = 150
	judgeSnippetLen   = 100
	maxJudgeArguments = 6
)

func buildPrompt(p personality.Personality, dc DebateContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DEBATE TOPIC: %s\n", dc.Topic)
	b.WriteString(roundFraming(dc.RoundNumber, dc.MaxRounds))
	b.WriteString("\n")

	if history := formatHistory(dc.PriorRounds); history != "" {
		b.WriteString("\nPREVIOUS ROUNDS:\n")
		b.WriteString(history)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nAs %s, provide your round %d argument. Be specific, compelling, and stay true to your personality.\nArgument:", p.Name, dc.RoundNumber)
	return b.String()
}

func roundFraming(round, maxRounds int) string {
	switch {
	case round <= 1:
		return "ROUND 1: Present your opening argument and establish your position."
	case round < maxRounds:
		return fmt.Sprintf("ROUND %d: Respond to previous arguments and strengthen your position.", round)
	default:
		return fmt.Sprintf("ROUND %d: Final arguments - make your strongest case.", round)
	}
}

// formatHistory renders prior rounds oldest-first, keeping only the most
// recent maxHistoryEntries arguments.
func formatHistory(rounds []core.Round) string {
	var lines []string
	for i := range rounds {
		for _, arg := range rounds[i].Arguments {
			lines = append(lines, fmt.Sprintf("Round %d - %s: %s", arg.RoundNumber, arg.PersonalityID, snippet(arg.Content, historySnippetLen)))
		}
	}
	if len(lines) > maxHistoryEntries {
		lines = lines[len(lines)-maxHistoryEntries:]
	}
	return strings.Join(lines, "\n")
}

func buildJudgePrompt(topic string, args []core.Argument, winner string) string {
	if len(args) > maxJudgeArguments {
		args = args[len(args)-maxJudgeArguments:]
	}

	var summary []string
	for _, arg := range args {
		summary = append(summary, fmt.Sprintf("%s: %s", arg.PersonalityID, snippet(arg.Content, judgeSnippetLen)))
	}

	return fmt.Sprintf("You are judging a debate on: %s\n\nKey arguments presented:\n%s\n\nThe winner is %s. Provide a brief analysis of why their case prevailed:",
		topic, strings.Join(summary, "\n"), winner)
}

var (
	surroundingQuotes = regexp.MustCompile(`^["']+|["']+$`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	selfReference     = regexp.MustCompile(`(?i)^(as|i am|i'm)\s+[\w' ]+?[,:]\s*`)
)

// cleanArgument normalizes model output: strips wrapping quotes and
// self-references, collapses whitespace, drops a trailing unfinished
// sentence and guarantees terminal punctuation.
func cleanArgument(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = surroundingQuotes.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = selfReference.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	// Drop an incomplete final sentence.
	if sentences := strings.Split(text, ". "); len(sentences) > 1 {
		last := strings.TrimSpace(sentences[len(sentences)-1])
		if !strings.HasSuffix(last, ".") && !strings.HasSuffix(last, "!") && !strings.HasSuffix(last, "?") {
			text = strings.Join(sentences[:len(sentences)-1], ". ")
		}
	}

	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}
	return text
}

// truncateArgument enforces the argument length cap deterministically.
// Cuts happen on a rune boundary, backing up to the previous word break,
// with an ellipsis marking the cut.
func truncateArgument(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := maxRunes - 3
	if cut < 1 {
		cut = 1
	}
	trimmed := runes[:cut]
	if idx := lastSpace(trimmed); idx > 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(string(trimmed)) + "..."
}

// snippet shortens text for prompt context lines.
func snippet(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return string([]rune(text)[:maxRunes]) + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
