package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgate/pkg/domain"
	"github.com/umputun/newsgate/pkg/news/mocks"
	"github.com/umputun/newsgate/pkg/newsapi"
)

// logRecorder collects log lines
type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) logger() lgr.L {
	return lgr.Func(func(format string, args ...interface{}) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.lines = append(r.lines, fmt.Sprintf(format, args...))
	})
}

func (r *logRecorder) all() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func record(n int) newsapi.Record {
	return newsapi.Record{
		"source":      map[string]any{"id": nil, "name": fmt.Sprintf("Source %d", n)},
		"title":       fmt.Sprintf("Title %d", n),
		"description": fmt.Sprintf("Description %d", n),
		"url":         fmt.Sprintf("https://example.com/%d", n),
		"publishedAt": fmt.Sprintf("2024-01-0%dT10:00:00Z", n),
	}
}

// storeCreating returns a store mock saving every candidate
func storeCreating() *mocks.StoreMock {
	var id int64
	return &mocks.StoreMock{
		CreateFunc: func(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error) {
			id++
			return domain.Created(&domain.Article{ID: id, Title: in.Title, Description: in.Description, URL: in.URL,
				PublishedAt: in.PublishedAt, Source: in.Source, Country: in.Country, CreatedAt: time.Now()}), nil
		},
	}
}

func upstreamReturning(recs ...newsapi.Record) *mocks.UpstreamMock {
	return &mocks.UpstreamMock{
		ByCountryFunc: func(ctx context.Context, country string, limit int) ([]newsapi.Record, error) {
			return recs, nil
		},
	}
}

func TestService_FetchAndSaveLatest(t *testing.T) {
	up := upstreamReturning(record(1), record(2), record(3))
	store := storeCreating()
	svc := NewService(up, store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	require.Len(t, res, 3)

	require.Len(t, up.ByCountryCalls(), 1)
	assert.Equal(t, "us", up.ByCountryCalls()[0].Country)
	assert.Equal(t, LatestLimit, up.ByCountryCalls()[0].Limit)

	for i, a := range res {
		n := i + 1
		assert.Equal(t, int64(n), a.ID)
		assert.Equal(t, fmt.Sprintf("Title %d", n), a.Title)
		assert.Equal(t, fmt.Sprintf("Description %d", n), a.Description)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", n), a.URL)
		assert.Equal(t, fmt.Sprintf("Source %d", n), a.Source)
		assert.Equal(t, "us", a.Country)
		assert.Equal(t, time.Date(2024, 1, n, 10, 0, 0, 0, time.UTC), a.PublishedAt)
	}
}

func TestService_FetchAndSaveLatestCapsCandidates(t *testing.T) {
	up := upstreamReturning(record(1), record(2), record(3), record(4), record(5))
	store := storeCreating()
	svc := NewService(up, store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "gb")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Len(t, store.CreateCalls(), 3)
	assert.Equal(t, "https://example.com/3", res[2].URL)
	assert.Equal(t, "gb", res[0].Country)
}

func TestService_FetchAndSaveLatestSkipsInvalid(t *testing.T) {
	tbl := []struct {
		name   string
		modify func(r newsapi.Record)
	}{
		{"missing title", func(r newsapi.Record) { delete(r, "title") }},
		{"null title", func(r newsapi.Record) { r["title"] = nil }},
		{"blank title", func(r newsapi.Record) { r["title"] = "   " }},
		{"title is only markup", func(r newsapi.Record) { r["title"] = "<b></b>" }},
		{"missing url", func(r newsapi.Record) { delete(r, "url") }},
		{"non-string url", func(r newsapi.Record) { r["url"] = 42 }},
		{"missing publishedAt", func(r newsapi.Record) { delete(r, "publishedAt") }},
		{"bad publishedAt", func(r newsapi.Record) { r["publishedAt"] = "yesterday" }},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			second := record(2)
			tt.modify(second)
			store := storeCreating()
			rec := &logRecorder{}
			svc := NewService(upstreamReturning(record(1), second, record(3)), store, rec.logger())

			res, err := svc.FetchAndSaveLatest(context.Background(), "us")
			require.NoError(t, err)
			require.Len(t, res, 2)
			assert.Equal(t, "https://example.com/1", res[0].URL)
			assert.Equal(t, "https://example.com/3", res[1].URL)
			assert.Len(t, store.CreateCalls(), 2)

			logs := rec.all()
			assert.Contains(t, logs, "[WARN] skip article #2 for us: invalid candidate")
			assert.Equal(t, 1, strings.Count(logs, "[WARN]"))
			assert.Contains(t, logs, "[INFO] saved 2 of 3 latest articles for us")
		})
	}
}

func TestService_FetchAndSaveLatestMarkupOnlyTitle(t *testing.T) {
	// a title made only of markup is empty after sanitizing, the record is skipped
	markup := record(1)
	markup["title"] = `<img src="https://example.com/x.png"><script>alert(1)</script>`
	store := storeCreating()
	rec := &logRecorder{}
	svc := NewService(upstreamReturning(markup, record(2)), store, rec.logger())

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "https://example.com/2", res[0].URL)
	require.Len(t, store.CreateCalls(), 1)
	assert.Equal(t, "Title 2", store.CreateCalls()[0].In.Title)
	assert.Contains(t, rec.all(), "[WARN] skip article #1 for us: invalid candidate: empty title")
}

func TestService_FetchAndSaveLatestOptionalFields(t *testing.T) {
	rec := record(1)
	delete(rec, "description")
	rec["source"] = nil
	store := storeCreating()
	svc := NewService(upstreamReturning(rec), store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Empty(t, res[0].Description)
	assert.Empty(t, res[0].Source)
}

func TestService_FetchAndSaveLatestOmitsSkipped(t *testing.T) {
	store := &mocks.StoreMock{
		CreateFunc: func(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error) {
			if in.URL == "https://example.com/2" {
				return domain.Skipped(), nil
			}
			return domain.Created(&domain.Article{ID: 1, Title: in.Title, URL: in.URL}), nil
		},
	}
	svc := NewService(upstreamReturning(record(1), record(2), record(3)), store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "https://example.com/1", res[0].URL)
	assert.Equal(t, "https://example.com/3", res[1].URL)
	assert.Len(t, store.CreateCalls(), 3)
}

func TestService_FetchAndSaveLatestNothingNew(t *testing.T) {
	store := &mocks.StoreMock{
		CreateFunc: func(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error) {
			return domain.Skipped(), nil
		},
	}
	svc := NewService(upstreamReturning(record(1), record(2)), store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestService_FetchAndSaveLatestPersistenceError(t *testing.T) {
	store := &mocks.StoreMock{
		CreateFunc: func(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error) {
			if in.URL == "https://example.com/2" {
				return domain.CreateResult{}, fmt.Errorf("%w: disk full", domain.ErrPersistence)
			}
			return domain.Created(&domain.Article{URL: in.URL}), nil
		},
	}
	svc := NewService(upstreamReturning(record(1), record(2), record(3)), store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Nil(t, res)
	assert.Len(t, store.CreateCalls(), 2, "third candidate not attempted")
}

func TestService_FetchAndSaveLatestUpstreamError(t *testing.T) {
	up := &mocks.UpstreamMock{
		ByCountryFunc: func(ctx context.Context, country string, limit int) ([]newsapi.Record, error) {
			return nil, fmt.Errorf("%w: top-headlines", newsapi.ErrUpstreamUnavailable)
		},
	}
	store := &mocks.StoreMock{}
	svc := NewService(up, store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.ErrorIs(t, err, newsapi.ErrUpstreamUnavailable)
	assert.Nil(t, res)
	assert.Empty(t, store.CreateCalls())
}

func TestService_FetchAndSaveLatestCountry(t *testing.T) {
	tbl := []struct {
		in, want string
	}{
		{"", "us"},
		{"  ", "us"},
		{"US", "us"},
		{" De ", "de"},
		{"fr", "fr"},
	}

	for _, tt := range tbl {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			up := upstreamReturning(record(1))
			svc := NewService(up, storeCreating(), lgr.NoOp)
			res, err := svc.FetchAndSaveLatest(context.Background(), tt.in)
			require.NoError(t, err)
			require.Len(t, up.ByCountryCalls(), 1)
			assert.Equal(t, tt.want, up.ByCountryCalls()[0].Country)
			require.Len(t, res, 1)
			assert.Equal(t, tt.want, res[0].Country)
		})
	}
}

func TestService_FetchAndSaveLatestSanitizes(t *testing.T) {
	rec := record(1)
	rec["title"] = "  <p>Hello <b>world</b></p> "
	rec["description"] = `AT&amp;T <script>alert("x")</script>deal`
	store := storeCreating()
	svc := NewService(upstreamReturning(rec), store, lgr.NoOp)

	res, err := svc.FetchAndSaveLatest(context.Background(), "us")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Hello world", res[0].Title)
	assert.Equal(t, "AT&T deal", res[0].Description)
	assert.Equal(t, "Hello world", store.CreateCalls()[0].In.Title)
}

func TestService_Passthrough(t *testing.T) {
	recs := []newsapi.Record{record(1)}
	upErr := errors.New("boom")
	up := &mocks.UpstreamMock{
		SearchFunc: func(ctx context.Context, page, pageSize int) ([]newsapi.Record, error) {
			return recs, nil
		},
		ByCountryFunc: func(ctx context.Context, country string, limit int) ([]newsapi.Record, error) {
			return recs, nil
		},
		BySourceFunc: func(ctx context.Context, source string) ([]newsapi.Record, error) {
			return nil, upErr
		},
		FilteredFunc: func(ctx context.Context, country, source string) ([]newsapi.Record, error) {
			return recs, nil
		},
	}
	store := &mocks.StoreMock{
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.Article, error) {
			return []domain.Article{{ID: 1}}, nil
		},
		CountFunc: func(ctx context.Context) (int, error) { return 7, nil },
	}
	svc := NewService(up, store, lgr.NoOp)
	ctx := context.Background()

	res, err := svc.Search(ctx, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, recs, res)
	assert.Equal(t, 2, up.SearchCalls()[0].Page)
	assert.Equal(t, 20, up.SearchCalls()[0].PageSize)

	res, err = svc.HeadlinesByCountry(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, recs, res)
	assert.Equal(t, 0, up.ByCountryCalls()[0].Limit, "no limit for plain headlines")

	_, err = svc.HeadlinesBySource(ctx, "bbc-news")
	require.ErrorIs(t, err, upErr)

	res, err = svc.HeadlinesFiltered(ctx, "us", "bbc-news")
	require.NoError(t, err)
	assert.Equal(t, recs, res)
	assert.Equal(t, "us", up.FilteredCalls()[0].Country)
	assert.Equal(t, "bbc-news", up.FilteredCalls()[0].Source)

	saved, err := svc.SavedArticles(ctx, 10, 5)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, 10, store.ListCalls()[0].Limit)
	assert.Equal(t, 5, store.ListCalls()[0].Offset)

	count, err := svc.SavedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestParseTime(t *testing.T) {
	tbl := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-01-02T10:00:00Z", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), false},
		{"2024-01-02T10:00:00.123Z", time.Date(2024, 1, 2, 10, 0, 0, 123000000, time.UTC), false},
		{"2024-01-02T12:00:00+02:00", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), false},
		{"2024-01-02T10:00:00", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), false},
		{"2024-01-02 10:00:00", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), false},
		{"02/01/2024", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
