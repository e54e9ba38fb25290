// Package presentation turns a price snapshot and headlines into the Markdown status document.
package presentation

import (
	"fmt"
	"strings"
	"time"

	"cryptostatus/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	PlaceholderText = "API response does not contain the required data."
	TimestampLayout = "2006-01-02 15:04:05"
	Footer          = "This file is refreshed automatically by the cryptostatus worker."
)

// Render builds the full document. It has no side effects.
// A nil snapshot yields the placeholder, an empty art block and NoNewsText regardless of news.
func Render(snap *domain.PriceSnapshot, news string, now time.Time) string {
	info := PlaceholderText
	art := ""
	if snap == nil {
		news = NoNewsText
	} else {
		info = priceLines(*snap)
		art = Art(*snap)
	}

	var b strings.Builder
	b.WriteString("\n# Crypto Price Status\n\n")
	b.WriteString("This repository uses the ccdata.io API to automatically update Bitcoin (BTC) price information.\n\n")
	b.WriteString("## Current Bitcoin Price\n")
	b.WriteString("> " + info + "\n\n")
	b.WriteString("```\n" + art + "```\n\n")
	b.WriteString("## Latest News\n")
	b.WriteString(news + "\n\n")
	b.WriteString("Last updated: " + now.Format(TimestampLayout) + "\n\n")
	b.WriteString(Footer + "\n")
	return b.String()
}

func priceLines(s domain.PriceSnapshot) string {
	return strings.Join([]string{
		fmt.Sprintf("%s Current Price: $%s", s.PairLabel(), Amount(s.CurrentPrice)),
		fmt.Sprintf("- Open Price: $%s", Amount(s.OpenPrice)),
		fmt.Sprintf("- 24h High: $%s", Amount(s.HighPrice)),
		fmt.Sprintf("- 24h Low: $%s", Amount(s.LowPrice)),
		fmt.Sprintf("- 24h Change: $%s (%s%%)", Amount(s.Change24h), Amount(s.ChangePercentage)),
		fmt.Sprintf("- 24h Volume: %s %s", Amount(s.Volume24h), s.BaseAsset()),
	}, "\n")
}

// Amount prints the shortest form of d that keeps at least one fractional digit: 65000 -> "65000.0".
func Amount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
