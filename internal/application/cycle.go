package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cryptostatus/internal/domain"
	"cryptostatus/internal/presentation"

	"go.uber.org/zap"
)

var _ CycleRunner = (*Cycle)(nil)

// Cycle fetches the price (and news when a price exists), renders the document and writes it.
type Cycle struct {
	prices PriceFetcher
	news   NewsFetcher
	writer DocumentWriter

	guard     CycleGuard
	slotScope string
	slotSize  time.Duration

	clock   Clock
	idgen   IDGen
	log     *zap.Logger
	console io.Writer
	docName string
}

type Option func(*Cycle)

func WithClock(c Clock) Option        { return func(s *Cycle) { s.clock = c } }
func WithIDGen(g IDGen) Option        { return func(s *Cycle) { s.idgen = g } }
func WithLogger(l *zap.Logger) Option { return func(s *Cycle) { s.log = l } }

// WithGuard makes every cycle reserve "<scope>:<slot start unix>" before fetching.
func WithGuard(g CycleGuard, scope string, slot time.Duration) Option {
	return func(s *Cycle) {
		s.guard, s.slotScope, s.slotSize = g, scope, slot
	}
}

// WithConsole sets where the per-cycle success line goes and the document name it mentions.
func WithConsole(w io.Writer, docName string) Option {
	return func(s *Cycle) { s.console, s.docName = w, docName }
}

func NewCycle(prices PriceFetcher, news NewsFetcher, writer DocumentWriter, opts ...Option) *Cycle {
	c := &Cycle{prices: prices, news: news, writer: writer}
	for _, opt := range opts {
		opt(c)
	}
	if c.guard == nil {
		c.guard = NoopGuard{}
	}
	if c.clock == nil {
		c.clock = realClock{}
	}
	if c.idgen == nil {
		c.idgen = defaultIDGen{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.console == nil {
		c.console = os.Stdout
	}
	if c.docName == "" {
		c.docName = "README.md"
	}
	return c
}

func (c *Cycle) slotKey(t time.Time) string {
	if c.slotSize > 0 {
		t = t.Truncate(c.slotSize)
	}
	return fmt.Sprintf("%s:%d", c.slotScope, t.Unix())
}

func (c *Cycle) Run(ctx context.Context) (domain.CycleReport, error) {
	rep := domain.CycleReport{ID: c.idgen.NewID(), StartedAt: c.clock.Now()}
	log := c.log.With(zap.String("cycle_id", rep.ID))

	ok, err := c.guard.TryReserve(ctx, c.slotKey(rep.StartedAt))
	if err != nil {
		return c.fail(rep, fmt.Errorf("reserve cycle slot: %w", err))
	}
	if !ok {
		rep.Skipped = true
		rep.FinishedAt = c.clock.Now()
		log.Info("cycle_skipped")
		return rep, nil
	}

	price, err := c.prices.FetchPrice(ctx)
	if err != nil {
		return c.fail(rep, fmt.Errorf("fetch price: %w", err))
	}
	rep.PriceOutcome = price.Outcome

	news := presentation.NoNewsText
	rep.NewsOutcome = domain.OutcomeSkipped
	if price.Snapshot != nil {
		nr, err := c.news.FetchNews(ctx)
		if err != nil {
			return c.fail(rep, fmt.Errorf("fetch news: %w", err))
		}
		rep.NewsOutcome = nr.Outcome
		news = presentation.NewsBlock(nr)
		if nr.Outcome != domain.OutcomeOK {
			log.Warn("news_unavailable", zap.String("outcome", string(nr.Outcome)), zap.Int("status", nr.StatusCode))
		}
	} else {
		log.Warn("price_unavailable", zap.String("outcome", string(price.Outcome)), zap.Int("status", price.StatusCode))
	}

	doc := presentation.Render(price.Snapshot, news, c.clock.Now())
	if err := c.writer.Write(ctx, doc); err != nil {
		return c.fail(rep, err)
	}
	rep.Written = true
	rep.FinishedAt = c.clock.Now()

	fmt.Fprintf(c.console, "%s updated successfully!\n", c.docName)
	log.Info("cycle_done",
		zap.String("price_outcome", string(rep.PriceOutcome)),
		zap.String("news_outcome", string(rep.NewsOutcome)),
		zap.Duration("took", rep.FinishedAt.Sub(rep.StartedAt)),
	)
	return rep, nil
}

func (c *Cycle) fail(rep domain.CycleReport, err error) (domain.CycleReport, error) {
	rep.Error = err.Error()
	rep.FinishedAt = c.clock.Now()
	return rep, err
}
