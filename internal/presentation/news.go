package presentation

import (
	"fmt"
	"strings"

	"cryptostatus/internal/domain"
)

const (
	NoNewsText          = "No news available."
	NewsUnavailableText = "Failed to fetch news."
)

// NewsBlock renders headlines as "1. title (link)" lines.
func NewsBlock(r domain.NewsResult) string {
	if r.Outcome != domain.OutcomeOK {
		return NewsUnavailableText
	}
	if len(r.Items) == 0 {
		return NoNewsText
	}
	items := r.Items
	if len(items) > domain.MaxNewsItems {
		items = items[:domain.MaxNewsItems]
	}
	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, it.Title, it.URL))
	}
	return strings.Join(lines, "\n")
}
