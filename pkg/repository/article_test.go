package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgate/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func testInput(n int) domain.ArticleInput {
	return domain.ArticleInput{
		Title:       fmt.Sprintf("Article %d", n),
		Description: fmt.Sprintf("Description %d", n),
		URL:         fmt.Sprintf("https://example.com/article-%d", n),
		PublishedAt: time.Date(2024, 1, 1, 10+n, 0, 0, 0, time.UTC),
		Source:      "Example News",
		Country:     "us",
	}
}

func TestArticleRepository_Create(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	res, err := repos.Article.Create(ctx, testInput(1))
	require.NoError(t, err)
	require.True(t, res.IsCreated())
	assert.Equal(t, domain.OutcomeCreated, res.Outcome)

	a := res.Article
	assert.NotZero(t, a.ID)
	assert.Equal(t, "Article 1", a.Title)
	assert.Equal(t, "Description 1", a.Description)
	assert.Equal(t, "https://example.com/article-1", a.URL)
	assert.True(t, a.PublishedAt.Equal(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Example News", a.Source)
	assert.Equal(t, "us", a.Country)
	assert.False(t, a.CreatedAt.IsZero())

	found, err := repos.Article.FindByURL(ctx, "https://example.com/article-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)
	assert.Equal(t, a.Title, found.Title)
}

func TestArticleRepository_CreateOptionalFields(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	in := testInput(1)
	in.Description, in.Source, in.Country = "", "", ""
	res, err := repos.Article.Create(ctx, in)
	require.NoError(t, err)
	require.True(t, res.IsCreated())

	// optional fields stored as NULL
	var nulls int
	err = repos.DB.Get(&nulls, `SELECT COUNT(*) FROM articles
		WHERE description IS NULL AND source IS NULL AND country IS NULL`)
	require.NoError(t, err)
	assert.Equal(t, 1, nulls)
	assert.Empty(t, res.Article.Description)
}

func TestArticleRepository_CreateDuplicate(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	first, err := repos.Article.Create(ctx, testInput(1))
	require.NoError(t, err)
	require.True(t, first.IsCreated())

	dup := testInput(1)
	dup.Title = "Different title, same url"
	dup.Country = "gb"
	for i := 0; i < 3; i++ {
		res, err := repos.Article.Create(ctx, dup)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeSkipped, res.Outcome)
		assert.Nil(t, res.Article)
	}

	count, err := repos.Article.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := repos.Article.FindByURL(ctx, dup.URL)
	require.NoError(t, err)
	assert.Equal(t, "Article 1", stored.Title)
	assert.Equal(t, "us", stored.Country)
}

func TestArticleRepository_CreateConcurrent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	const workers = 10
	results := make([]domain.CreateResult, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := testInput(7)
			in.Title = fmt.Sprintf("writer %d", i)
			results[i], errs[i] = repos.Article.Create(ctx, in)
		}(i)
	}
	wg.Wait()

	created, skipped := 0, 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		switch results[i].Outcome {
		case domain.OutcomeCreated:
			created++
		case domain.OutcomeSkipped:
			skipped++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, skipped)

	count, err := repos.Article.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestArticleRepository_CreateConcurrentConnections(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "race.db") + "?mode=rwc"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 10, MaxIdleConns: 10})
	require.NoError(t, err)
	defer repos.Close()
	ctx := context.Background()

	const workers, urls = 60, 3
	results := make([]domain.CreateResult, workers)
	errs := make([]error, workers)

	// writers on separate connections race on the same urls
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			in := testInput(i % urls)
			in.Title = fmt.Sprintf("writer %d", i)
			results[i], errs[i] = repos.Article.Create(ctx, in)
		}(i)
	}
	close(start)
	wg.Wait()

	created, skipped := 0, 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "writer %d", i)
		switch results[i].Outcome {
		case domain.OutcomeCreated:
			created++
		case domain.OutcomeSkipped:
			skipped++
		}
	}
	assert.Equal(t, urls, created)
	assert.Equal(t, workers-urls, skipped)

	count, err := repos.Article.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, urls, count)
}

func TestArticleRepository_CreateRaceWithoutFastPath(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	// simulate lost race, the row appears after the existence check
	_, err := repos.Article.Create(ctx, testInput(1))
	require.NoError(t, err)

	rec := articleSQL{Title: "late", URL: testInput(1).URL, PublishedAt: time.Now().UTC()}
	var created *domain.Article
	err = inTransaction(ctx, repos.DB, func(tx *sqlx.Tx) error {
		var insErr error
		created, insErr = repos.Article.insert(ctx, tx, &rec)
		return insErr
	})
	require.NoError(t, err)
	assert.Nil(t, created)
}

func TestArticleRepository_CreatePersistenceError(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.DB.Exec("DROP TABLE articles")
	require.NoError(t, err)

	res, err := repos.Article.Create(ctx, testInput(1))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.False(t, res.IsCreated())
}

func TestArticleRepository_CreateRollsBack(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	// make the insert fail after the row is written
	_, err := repos.DB.Exec(`CREATE TRIGGER fail_insert AFTER INSERT ON articles
		BEGIN SELECT RAISE(ABORT, 'boom'); END;`)
	require.NoError(t, err)

	_, err = repos.Article.Create(ctx, testInput(1))
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "boom")

	_, err = repos.DB.Exec("DROP TRIGGER fail_insert")
	require.NoError(t, err)
	count, err := repos.Article.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestArticleRepository_FindByURLNotFound(t *testing.T) {
	repos := setupTestDB(t)

	a, err := repos.Article.FindByURL(context.Background(), "https://example.com/missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, a)
}

func TestArticleRepository_List(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repos.Article.Create(ctx, testInput(i))
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		articles, err := repos.Article.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, articles, 5)
		assert.Equal(t, "Article 5", articles[0].Title)
		assert.Equal(t, "Article 1", articles[4].Title)
	})

	t.Run("limit and offset", func(t *testing.T) {
		articles, err := repos.Article.List(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "Article 4", articles[0].Title)
		assert.Equal(t, "Article 3", articles[1].Title)
	})

	t.Run("past the end", func(t *testing.T) {
		articles, err := repos.Article.List(ctx, 10, 100)
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})
}

func TestCriticalError(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := fmt.Errorf("wrapped: %w", &criticalError{err: inner})
	assert.ErrorIs(t, err, &criticalError{})
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "wrapped: inner", err.Error())
	assert.False(t, isLockError(inner))
	assert.True(t, isLockError(fmt.Errorf("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isUniqueViolation(fmt.Errorf("constraint failed: UNIQUE constraint failed: articles.url (2067)")))
}
