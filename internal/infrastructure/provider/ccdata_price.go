package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cryptostatus/internal/application"
	"cryptostatus/internal/domain"
	"cryptostatus/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
)

const (
	ccdataLatestTickPath = "/index/cc/v1/latest/tick"
)

// CCDataPriceFetcher reads the latest index tick for one instrument.
type CCDataPriceFetcher struct {
	BaseURL    string
	Market     string
	Instrument string
	APIKey     string
	Client     *httpx.Client
}

var _ application.PriceFetcher = (*CCDataPriceFetcher)(nil)

type ccTick struct {
	Value        decimal.NullDecimal `json:"VALUE"`
	DayHigh      decimal.NullDecimal `json:"CURRENT_DAY_HIGH"`
	DayLow       decimal.NullDecimal `json:"CURRENT_DAY_LOW"`
	DayOpen      decimal.NullDecimal `json:"CURRENT_DAY_OPEN"`
	DayChange    decimal.NullDecimal `json:"CURRENT_DAY_CHANGE"`
	DayChangePct decimal.NullDecimal `json:"CURRENT_DAY_CHANGE_PERCENTAGE"`
	DayVolume    decimal.NullDecimal `json:"CURRENT_DAY_VOLUME"`
}

type ccTickResp struct {
	Data map[string]ccTick `json:"Data"`
}

func (t ccTick) complete() bool {
	for _, v := range []decimal.NullDecimal{t.Value, t.DayHigh, t.DayLow, t.DayOpen, t.DayChange, t.DayChangePct, t.DayVolume} {
		if !v.Valid {
			return false
		}
	}
	return true
}

// URL builds the request URL. The API key is embedded even when empty.
func (p *CCDataPriceFetcher) URL() (string, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("ccdata: invalid base url: %w", err)
	}
	u.Path = ccdataLatestTickPath
	q := u.Query()
	q.Set("market", p.Market)
	q.Set("instruments", p.Instrument)
	q.Set("api_key", p.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *CCDataPriceFetcher) FetchPrice(ctx context.Context) (domain.PriceResult, error) {
	target, err := p.URL()
	if err != nil {
		return domain.PriceResult{}, err
	}

	var body ccTickResp
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	code, err := client.GetJSON(ctx, target, &body)
	if err != nil {
		return domain.PriceResult{}, fmt.Errorf("ccdata price: %w", err)
	}
	if code != http.StatusOK {
		return domain.PriceResult{Outcome: domain.OutcomeUnavailable, StatusCode: code}, nil
	}

	tick, ok := body.Data[p.Instrument]
	if !ok || !tick.complete() {
		return domain.PriceResult{Outcome: domain.OutcomeUnexpectedShape, StatusCode: code}, nil
	}

	snap := domain.NewPriceSnapshot(p.Instrument,
		tick.Value.Decimal,
		tick.DayHigh.Decimal,
		tick.DayLow.Decimal,
		tick.DayOpen.Decimal,
		tick.DayChange.Decimal,
		tick.DayChangePct.Decimal,
		tick.DayVolume.Decimal,
	)
	return domain.PriceResult{Outcome: domain.OutcomeOK, StatusCode: code, Snapshot: &snap}, nil
}
