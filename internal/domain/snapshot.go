package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of decimal places every snapshot field is rounded to.
const PricePlaces = 2

// PriceSnapshot is one poll's worth of index data. It is either complete or absent.
type PriceSnapshot struct {
	Instrument       string
	CurrentPrice     decimal.Decimal
	HighPrice        decimal.Decimal
	LowPrice         decimal.Decimal
	OpenPrice        decimal.Decimal
	Change24h        decimal.Decimal
	ChangePercentage decimal.Decimal
	Volume24h        decimal.Decimal
}

// NewPriceSnapshot rounds every value to PricePlaces.
func NewPriceSnapshot(instrument string, current, high, low, open, change, changePct, volume decimal.Decimal) PriceSnapshot {
	return PriceSnapshot{
		Instrument:       instrument,
		CurrentPrice:     current.Round(PricePlaces),
		HighPrice:        high.Round(PricePlaces),
		LowPrice:         low.Round(PricePlaces),
		OpenPrice:        open.Round(PricePlaces),
		Change24h:        change.Round(PricePlaces),
		ChangePercentage: changePct.Round(PricePlaces),
		Volume24h:        volume.Round(PricePlaces),
	}
}

// Rising reports whether the 24h change is strictly positive. Zero counts as not rising.
func (s PriceSnapshot) Rising() bool {
	return s.ChangePercentage.IsPositive()
}

// BaseAsset returns the part of the instrument before the dash ("BTC" for "BTC-USD").
func (s PriceSnapshot) BaseAsset() string {
	base, _, _ := strings.Cut(s.Instrument, "-")
	return base
}

// PairLabel returns the instrument with a slash separator ("BTC/USD").
func (s PriceSnapshot) PairLabel() string {
	return strings.ReplaceAll(s.Instrument, "-", "/")
}

// PriceResult is the outcome of a price fetch. Snapshot is non-nil only for OutcomeOK.
type PriceResult struct {
	Outcome    Outcome
	StatusCode int
	Snapshot   *PriceSnapshot
}
