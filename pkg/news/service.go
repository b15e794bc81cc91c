// Package news combines upstream reads with article persistence.
//
// FetchAndSaveLatest is the only write path: it takes at most LatestLimit top headlines
// for a country, validates each candidate on its own and stores new ones. Invalid candidates
// and already stored urls are dropped from the result, a storage fault aborts the call.
package news

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsgate/pkg/domain"
	"github.com/umputun/newsgate/pkg/newsapi"
)

//go:generate moq -out mocks/upstream.go -pkg mocks -skip-ensure -fmt goimports . Upstream
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// LatestLimit is the max number of candidates processed by FetchAndSaveLatest
const LatestLimit = 3

// DefaultCountry is used when no country code given
const DefaultCountry = "us"

var errInvalidCandidate = errors.New("invalid candidate")

// Upstream is the news API
type Upstream interface {
	Search(ctx context.Context, page, pageSize int) ([]newsapi.Record, error)
	ByCountry(ctx context.Context, country string, limit int) ([]newsapi.Record, error)
	BySource(ctx context.Context, source string) ([]newsapi.Record, error)
	Filtered(ctx context.Context, country, source string) ([]newsapi.Record, error)
}

// Store persists articles
type Store interface {
	Create(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error)
	List(ctx context.Context, limit, offset int) ([]domain.Article, error)
	Count(ctx context.Context) (int, error)
}

// Service implements news operations
type Service struct {
	upstream Upstream
	store    Store
	policy   *bluemonday.Policy
	l        lgr.L
}

// NewService makes news service, nil logger means lgr.Default
func NewService(upstream Upstream, store Store, l lgr.L) *Service {
	if l == nil {
		l = lgr.Default()
	}
	return &Service{upstream: upstream, store: store, policy: bluemonday.StrictPolicy(), l: l}
}

// FetchAndSaveLatest gets top headlines for the country and stores new ones.
// Returns newly stored articles in upstream order.
func (s *Service) FetchAndSaveLatest(ctx context.Context, countryCode string) ([]domain.Article, error) {
	country := normalizeCountry(countryCode)

	recs, err := s.upstream.ByCountry(ctx, country, LatestLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch latest for %s: %w", country, err)
	}
	if len(recs) > LatestLimit {
		recs = recs[:LatestLimit]
	}

	res := make([]domain.Article, 0, len(recs))
	for i, rec := range recs {
		in, err := s.parseCandidate(rec, country)
		if err != nil {
			s.l.Logf("[WARN] skip article #%d for %s: %v", i+1, country, err)
			continue
		}

		created, err := s.store.Create(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("save article %s: %w", in.URL, err)
		}
		if !created.IsCreated() {
			continue
		}
		res = append(res, *created.Article)
	}

	s.l.Logf("[INFO] saved %d of %d latest articles for %s", len(res), len(recs), country)
	return res, nil
}

// Search passes generic search to upstream
func (s *Service) Search(ctx context.Context, page, pageSize int) ([]newsapi.Record, error) {
	return s.upstream.Search(ctx, page, pageSize)
}

// HeadlinesByCountry passes country headlines to upstream
func (s *Service) HeadlinesByCountry(ctx context.Context, country string) ([]newsapi.Record, error) {
	return s.upstream.ByCountry(ctx, country, 0)
}

// HeadlinesBySource passes source headlines to upstream
func (s *Service) HeadlinesBySource(ctx context.Context, source string) ([]newsapi.Record, error) {
	return s.upstream.BySource(ctx, source)
}

// HeadlinesFiltered passes filtered headlines to upstream
func (s *Service) HeadlinesFiltered(ctx context.Context, country, source string) ([]newsapi.Record, error) {
	return s.upstream.Filtered(ctx, country, source)
}

// SavedArticles returns stored articles, newest first
func (s *Service) SavedArticles(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	return s.store.List(ctx, limit, offset)
}

// SavedCount returns number of stored articles
func (s *Service) SavedCount(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// parseCandidate validates upstream record and makes article input from it
func (s *Service) parseCandidate(rec newsapi.Record, country string) (domain.ArticleInput, error) {
	title, ok := stringField(rec, "title")
	if !ok {
		return domain.ArticleInput{}, fmt.Errorf("%w: missing title", errInvalidCandidate)
	}
	link, ok := stringField(rec, "url")
	if !ok {
		return domain.ArticleInput{}, fmt.Errorf("%w: missing url", errInvalidCandidate)
	}
	published, ok := stringField(rec, "publishedAt")
	if !ok {
		return domain.ArticleInput{}, fmt.Errorf("%w: missing publishedAt", errInvalidCandidate)
	}
	publishedAt, err := parseTime(published)
	if err != nil {
		return domain.ArticleInput{}, fmt.Errorf("%w: bad publishedAt %q", errInvalidCandidate, published)
	}

	in := domain.ArticleInput{
		Title:       s.plainText(title),
		URL:         link,
		PublishedAt: publishedAt,
		Country:     country,
	}
	if in.Title == "" {
		return domain.ArticleInput{}, fmt.Errorf("%w: empty title", errInvalidCandidate)
	}
	if desc, ok := stringField(rec, "description"); ok {
		in.Description = s.plainText(desc)
	}
	switch src := rec["source"].(type) {
	case map[string]any:
		in.Source, _ = stringField(src, "name")
	case newsapi.Record:
		in.Source, _ = stringField(src, "name")
	}
	return in, nil
}

// plainText strips html from upstream text
func (s *Service) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// stringField returns non-empty string value of the field
func stringField(rec map[string]any, key string) (string, bool) {
	v, ok := rec[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func parseTime(v string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown time format %q", v)
}

func normalizeCountry(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultCountry
	}
	return code
}
