// Package scheduler keeps the article store filled by saving latest headlines periodically.
// It runs the same operation as the save-latest endpoint for every configured country.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsgate/pkg/domain"
)

//go:generate moq -out mocks/saver.go -pkg mocks -skip-ensure -fmt goimports . Saver

// defaults for the scheduler
const (
	DefaultMaxWorkers = 2
)

// Saver fetches and stores latest headlines for a country
type Saver interface {
	FetchAndSaveLatest(ctx context.Context, countryCode string) ([]domain.Article, error)
}

// Params for the scheduler
type Params struct {
	Saver      Saver
	Countries  []string
	Interval   time.Duration
	MaxWorkers int
}

// Scheduler runs periodic refresh of latest headlines
type Scheduler struct {
	saver      Saver
	countries  []string
	interval   time.Duration
	maxWorkers int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = DefaultMaxWorkers
	}
	countries := make([]string, len(params.Countries))
	copy(countries, params.Countries)

	return &Scheduler{
		saver:      params.Saver,
		countries:  countries,
		interval:   params.Interval,
		maxWorkers: params.MaxWorkers,
	}
}

// Enabled reports whether there is anything to schedule
func (s *Scheduler) Enabled() bool {
	return s.interval > 0 && len(s.countries) > 0
}

// Start begins the refresh loop, does nothing if scheduler is not enabled
func (s *Scheduler) Start(ctx context.Context) {
	if !s.Enabled() {
		lgr.Printf("[INFO] scheduler disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v for %v", s.interval, s.countries)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	lgr.Printf("[INFO] stopping scheduler...")
	s.cancel()
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.RefreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshAll(ctx)
		}
	}
}

// RefreshAll saves latest headlines for all configured countries and returns number of new articles.
// Failures are logged and don't stop other countries.
func (s *Scheduler) RefreshAll(ctx context.Context) int {
	var mu sync.Mutex
	total := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, country := range s.countries {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			articles, err := s.saver.FetchAndSaveLatest(ctx, country)
			if err != nil {
				lgr.Printf("[WARN] failed to refresh latest for %s: %v", country, err)
				return nil
			}
			mu.Lock()
			total += len(articles)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] refresh error: %v", err)
	}
	lgr.Printf("[DEBUG] refresh completed, %d new articles", total)
	return total
}
