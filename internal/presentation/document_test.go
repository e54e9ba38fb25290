package presentation

import (
	"strings"
	"testing"
	"time"

	"cryptostatus/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func snapshot(pct string) *domain.PriceSnapshot {
	s := domain.NewPriceSnapshot("BTC-USD",
		d("65000.004"), d("66012.129"), d("64100.5"), d("64600"), d("400.004"), d(pct), d("12345.6789"))
	return &s
}

const placeholderDoc = "\n# Crypto Price Status\n\n" +
	"This repository uses the ccdata.io API to automatically update Bitcoin (BTC) price information.\n\n" +
	"## Current Bitcoin Price\n" +
	"> API response does not contain the required data.\n\n" +
	"```\n```\n\n" +
	"## Latest News\n" +
	"No news available.\n\n" +
	"Last updated: 2025-03-14 09:26:53\n\n" +
	"This file is refreshed automatically by the cryptostatus worker.\n"

func TestRender_AbsentSnapshotIsPlaceholder(t *testing.T) {
	got := Render(nil, "1. ignored (https://x)", fixedNow)
	require.Equal(t, placeholderDoc, got)
}

func TestRender_PriceLines(t *testing.T) {
	got := Render(snapshot("0.6192"), "1. a (b)", fixedNow)
	require.Contains(t, got, "> BTC/USD Current Price: $65000.0\n")
	require.Contains(t, got, "- Open Price: $64600.0\n")
	require.Contains(t, got, "- 24h High: $66012.13\n")
	require.Contains(t, got, "- 24h Low: $64100.5\n")
	require.Contains(t, got, "- 24h Change: $400.0 (0.62%)\n")
	require.Contains(t, got, "- 24h Volume: 12345.68 BTC\n")
	require.Contains(t, got, "## Latest News\n1. a (b)\n")
	require.Contains(t, got, "Last updated: 2025-03-14 09:26:53\n")
	require.True(t, strings.HasSuffix(got, Footer+"\n"))
}

func TestRender_ArtSelection(t *testing.T) {
	up := Render(snapshot("1.25"), "", fixedNow)
	require.Contains(t, up, "```\n"+UpArt+"```")
	require.NotContains(t, up, DownArt)

	down := Render(snapshot("-1.25"), "", fixedNow)
	require.Contains(t, down, "```\n"+DownArt+"```")
	require.NotContains(t, down, UpArt)
}

func TestRender_ZeroChangeIsDown(t *testing.T) {
	got := Render(snapshot("0"), "", fixedNow)
	require.Contains(t, got, DownArt)
	require.NotContains(t, got, UpArt)

	// rounds to zero before the comparison
	got = Render(snapshot("0.004"), "", fixedNow)
	require.Contains(t, got, DownArt)
	require.Contains(t, got, "(0.0%)")
}

func TestRender_Pure(t *testing.T) {
	s := snapshot("0.6192")
	a := Render(s, "1. a (b)", fixedNow)
	b := Render(s, "1. a (b)", fixedNow)
	require.Equal(t, a, b)

	c := Render(s, "1. a (b)", fixedNow.Add(2*time.Minute))
	require.Equal(t, withoutTimestamp(a), withoutTimestamp(c))
	require.NotEqual(t, a, c)
}

func withoutTimestamp(doc string) string {
	lines := strings.Split(doc, "\n")
	out := lines[:0]
	for _, l := range lines {
		if !strings.HasPrefix(l, "Last updated: ") {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func TestAmount(t *testing.T) {
	cases := map[string]string{
		"65000":    "65000.0",
		"65000.00": "65000.0",
		"0.5":      "0.5",
		"-512.35":  "-512.35",
		"0":        "0.0",
		"12.10":    "12.1",
	}
	for in, want := range cases {
		require.Equal(t, want, Amount(d(in)), in)
	}
}
