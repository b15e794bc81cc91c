// Package feed renders saved articles as RSS 2.0
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsgate/pkg/domain"
)

// DefaultTitle is the channel title used when none given
const DefaultTitle = "Newsgate - saved articles"

// Generator creates RSS feeds from saved articles
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from articles, order is kept as is
func (g *Generator) GenerateRSS(articles []domain.Article, title string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	// last build date follows the newest article, falls back to now for empty feed
	lastBuild := g.now()
	if len(articles) > 0 {
		lastBuild = articles[0].CreatedAt
		for _, a := range articles[1:] {
			if a.CreatedAt.After(lastBuild) {
				lastBuild = a.CreatedAt
			}
		}
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Latest headlines saved by newsgate",
			AtomLink:      &AtomLink{Href: g.baseURL + "/news/saved/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: lastBuild.UTC().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a saved article to an RSS item
func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	item := &RSSItem{
		Title:       a.Title,
		Link:        a.URL,
		GUID:        &GUID{Value: a.URL, IsPermaLink: true},
		Description: a.Description,
		Source:      a.Source,
		PubDate:     a.PublishedAt.UTC().Format(time.RFC1123Z),
	}
	if a.Country != "" {
		item.Categories = []string{a.Country}
	}
	return item
}
