package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrPersistence marks storage faults other than a duplicate url
var ErrPersistence = errors.New("persistence failure")

// Article represents a persisted news article
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON renders empty optional fields as null, the way they are stored
func (a Article) MarshalJSON() ([]byte, error) {
	type articleJSON struct {
		ID          int64     `json:"id"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"published_at"`
		Source      *string   `json:"source"`
		Country     *string   `json:"country"`
		CreatedAt   time.Time `json:"created_at"`
	}
	return json.Marshal(articleJSON{
		ID:          a.ID,
		Title:       a.Title,
		Description: optional(a.Description),
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
		Source:      optional(a.Source),
		Country:     optional(a.Country),
		CreatedAt:   a.CreatedAt,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ArticleInput is a validated candidate article ready to be stored
type ArticleInput struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Source      string
	Country     string
}

// CreateOutcome tells what happened to a create request
type CreateOutcome int

// create outcomes
const (
	OutcomeCreated CreateOutcome = iota + 1
	OutcomeSkipped
)

// String returns outcome name
func (o CreateOutcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// CreateResult is the result of an article create. Article is set only for OutcomeCreated.
type CreateResult struct {
	Outcome CreateOutcome
	Article *Article
}

// Created makes a result for a newly stored article
func Created(a *Article) CreateResult {
	return CreateResult{Outcome: OutcomeCreated, Article: a}
}

// Skipped makes a result for an article whose url is already stored
func Skipped() CreateResult {
	return CreateResult{Outcome: OutcomeSkipped}
}

// IsCreated reports whether a new article was stored
func (r CreateResult) IsCreated() bool {
	return r.Outcome == OutcomeCreated && r.Article != nil
}
