package provider

import (
	"context"

	"cryptostatus/internal/application"
	"cryptostatus/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	_ application.PriceFetcher = (*Fake)(nil)
	_ application.NewsFetcher  = (*Fake)(nil)
)

// Fake serves a fixed snapshot and headline list; used with PROVIDER=fake.
type Fake struct {
	snap domain.PriceSnapshot
}

func NewFake(instrument string, price float64) *Fake {
	p := decimal.NewFromFloat(price)
	return &Fake{snap: domain.NewPriceSnapshot(instrument, p, p, p, p, decimal.Zero, decimal.Zero, decimal.Zero)}
}

func (f *Fake) FetchPrice(context.Context) (domain.PriceResult, error) {
	snap := f.snap
	return domain.PriceResult{Outcome: domain.OutcomeOK, StatusCode: 200, Snapshot: &snap}, nil
}

func (f *Fake) FetchNews(context.Context) (domain.NewsResult, error) {
	return domain.NewsResult{
		Outcome:    domain.OutcomeOK,
		StatusCode: 200,
		Items: []domain.NewsItem{
			{Title: "Offline mode: no live headlines", URL: "https://example.com/offline"},
		},
	}, nil
}
