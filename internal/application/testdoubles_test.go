package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cryptostatus/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUpstream = errors.New("upstream error")
)

func snap(pct string) *domain.PriceSnapshot {
	d := decimal.RequireFromString
	s := domain.NewPriceSnapshot("BTC-USD", d("65000.004"), d("66000"), d("64000"), d("64500"), d("500"), d(pct), d("1234.5"))
	return &s
}

type fakePriceFetcher struct {
	out   domain.PriceResult
	err   error
	calls int
}

func (f *fakePriceFetcher) FetchPrice(context.Context) (domain.PriceResult, error) {
	f.calls++
	if f.err != nil {
		return domain.PriceResult{}, f.err
	}
	return f.out, nil
}

type fakeNewsFetcher struct {
	out   domain.NewsResult
	err   error
	calls int
}

func (f *fakeNewsFetcher) FetchNews(context.Context) (domain.NewsResult, error) {
	f.calls++
	if f.err != nil {
		return domain.NewsResult{}, f.err
	}
	return f.out, nil
}

type memWriter struct {
	docs []string
	err  error
}

func (m *memWriter) Write(_ context.Context, content string) error {
	if m.err != nil {
		return m.err
	}
	m.docs = append(m.docs, content)
	return nil
}

type fakeGuard struct {
	seen map[string]bool
	keys []string
	err  error
}

func (f *fakeGuard) TryReserve(_ context.Context, k string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	f.keys = append(f.keys, k)
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

// steppingClock advances by step on every call.
type steppingClock struct {
	t    time.Time
	step time.Duration
}

func (s *steppingClock) Now() time.Time {
	now := s.t
	s.t = s.t.Add(s.step)
	return now
}

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("cycle-%d", g.n)
}
