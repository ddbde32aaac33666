package ai

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	serp "github.com/ericgreene/go-serp"
)

const maxResearchResults = 3

// researchContext enriches a prompt with web search findings on the debate
// topic. Research is best-effort: any failure returns an empty string and
// the prompt goes out without enrichment.
func researchContext(topic, apiKey string) string {
	results, err := performWebSearch(topic, apiKey)
	if err != nil {
		log.Printf("Web research for %q skipped: %v", topic, err)
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Relevant research findings:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- %s\n  %s\n", r.title, r.snippet)
	}
	return b.String()
}

type searchResult struct {
	title   string
	snippet string
}

func performWebSearch(query, apiKey string) ([]searchResult, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("SERP API key not set")
	}

	q := serp.NewGoogleSearch(map[string]string{
		"q":    query,
		"key":  apiKey,
		"num":  strconv.Itoa(maxResearchResults),
		"safe": "active",
	})
	resp, err := q.GetJSON()
	if err != nil {
		return nil, err
	}

	var results []searchResult
	for _, r := range resp.OrganicResults {
		results = append(results, searchResult{title: r.Title, snippet: r.Snippet})
		if len(results) == maxResearchResults {
			break
		}
	}
	return results, nil
}
