package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cryptostatus/internal/application"
	"cryptostatus/internal/domain"
	"cryptostatus/internal/infrastructure/httpx"
)

const (
	ccdataNewsPath = "/data/v2/news/"
)

// CCDataNewsFetcher reads the latest headlines for a category filter.
type CCDataNewsFetcher struct {
	BaseURL    string
	Categories string
	APIKey     string
	Client     *httpx.Client
}

var _ application.NewsFetcher = (*CCDataNewsFetcher)(nil)

type ccNewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ccNewsResp struct {
	Data *[]ccNewsItem `json:"Data"`
}

func (p *CCDataNewsFetcher) URL() (string, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return "", fmt.Errorf("ccdata: invalid base url: %w", err)
	}
	u.Path = ccdataNewsPath
	q := u.Query()
	q.Set("lang", "EN")
	q.Set("categories", p.Categories)
	if p.APIKey != "" {
		q.Set("api_key", p.APIKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *CCDataNewsFetcher) FetchNews(ctx context.Context) (domain.NewsResult, error) {
	target, err := p.URL()
	if err != nil {
		return domain.NewsResult{}, err
	}

	var body ccNewsResp
	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	code, err := client.GetJSON(ctx, target, &body)
	if err != nil {
		return domain.NewsResult{}, fmt.Errorf("ccdata news: %w", err)
	}
	if code != http.StatusOK {
		return domain.NewsResult{Outcome: domain.OutcomeUnavailable, StatusCode: code}, nil
	}
	if body.Data == nil {
		return domain.NewsResult{Outcome: domain.OutcomeUnexpectedShape, StatusCode: code}, nil
	}

	list := *body.Data
	if len(list) > domain.MaxNewsItems {
		list = list[:domain.MaxNewsItems]
	}
	items := make([]domain.NewsItem, 0, len(list))
	for _, it := range list {
		items = append(items, domain.NewsItem{Title: it.Title, URL: it.URL})
	}
	return domain.NewsResult{Outcome: domain.OutcomeOK, StatusCode: code, Items: items}, nil
}
