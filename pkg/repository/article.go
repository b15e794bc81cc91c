package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsgate/pkg/domain"
)

// ErrNotFound is returned when article is not in the store
var ErrNotFound = errors.New("article not found")

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	URL         string         `db:"url"`
	PublishedAt time.Time      `db:"published_at"`
	Source      sql.NullString `db:"source"`
	Country     sql.NullString `db:"country"`
	CreatedAt   time.Time      `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// FindByURL retrieves an article by its url
func (r *ArticleRepository) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	var rec articleSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM articles WHERE url = ?", url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find article by url: %w", domain.ErrPersistence, err)
	}
	return rec.toDomain(), nil
}

// Create stores a new article. An article with the same url already stored gives skipped
// result and no error, including the case of concurrent insert of the same url.
func (r *ArticleRepository) Create(ctx context.Context, in domain.ArticleInput) (domain.CreateResult, error) {
	// fast path, the unique constraint is the real guard
	exists, err := r.exists(ctx, in.URL)
	if err != nil {
		return domain.CreateResult{}, fmt.Errorf("%w: check article exists: %w", domain.ErrPersistence, err)
	}
	if exists {
		lgr.Printf("[DEBUG] article %s already exists, skipped", in.URL)
		return domain.Skipped(), nil
	}

	rec := articleSQL{
		Title:       in.Title,
		Description: nullString(in.Description),
		URL:         in.URL,
		PublishedAt: in.PublishedAt.UTC(),
		Source:      nullString(in.Source),
		Country:     nullString(in.Country),
	}

	var created *domain.Article
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		created = nil
		txErr := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			var insErr error
			created, insErr = r.insert(ctx, tx, &rec)
			return insErr
		})
		switch {
		case txErr == nil:
			return nil
		case isUniqueViolation(txErr):
			created = nil
			return nil
		case isLockError(txErr):
			return txErr // repeater will retry this
		default:
			return &criticalError{err: txErr}
		}
	}, &criticalError{})
	if err != nil {
		var ce *criticalError
		if errors.As(err, &ce) && ce.err != nil {
			err = ce.err
		}
		lgr.Printf("[ERROR] failed to store article %s: %v", in.URL, err)
		return domain.CreateResult{}, fmt.Errorf("%w: create article: %w", domain.ErrPersistence, err)
	}

	if created == nil {
		lgr.Printf("[DEBUG] article %s stored concurrently, skipped", in.URL)
		return domain.Skipped(), nil
	}
	return domain.Created(created), nil
}

// insert adds the article and reads it back, returns nil article if url is taken
func (r *ArticleRepository) insert(ctx context.Context, tx *sqlx.Tx, rec *articleSQL) (*domain.Article, error) {
	query := `
		INSERT INTO articles (title, description, url, published_at, source, country)
		VALUES (:title, :description, :url, :published_at, :source, :country)
		ON CONFLICT(url) DO NOTHING
	`
	result, err := tx.NamedExecContext(ctx, query, rec)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}

	var stored articleSQL
	if err := tx.GetContext(ctx, &stored, "SELECT * FROM articles WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("read inserted article: %w", err)
	}
	return stored.toDomain(), nil
}

// List retrieves stored articles, newest first
func (r *ArticleRepository) List(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	query := `
		SELECT * FROM articles
		ORDER BY published_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("%w: list articles: %w", domain.ErrPersistence, err)
	}

	articles := make([]domain.Article, 0, len(recs))
	for i := range recs {
		articles = append(articles, *recs[i].toDomain())
	}
	return articles, nil
}

// Count returns number of stored articles
func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("%w: count articles: %w", domain.ErrPersistence, err)
	}
	return count, nil
}

func (r *ArticleRepository) exists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE url = ?)", url)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// toDomain converts articleSQL to domain.Article
func (a *articleSQL) toDomain() *domain.Article {
	return &domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description.String,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
		Source:      a.Source.String,
		Country:     a.Country.String,
		CreatedAt:   a.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
