package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgate/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")

	pubTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		{
			ID:          2,
			Title:       "Second & last",
			Description: "Article <two>",
			URL:         "https://news.example.com/2",
			PublishedAt: pubTime.Add(time.Hour),
			Source:      "BBC News",
			Country:     "gb",
			CreatedAt:   pubTime.Add(3 * time.Hour),
		},
		{
			ID:          1,
			Title:       "First",
			URL:         "https://news.example.com/1",
			PublishedAt: pubTime,
			CreatedAt:   pubTime.Add(2 * time.Hour),
		},
	}

	t.Run("structure", func(t *testing.T) {
		rss, err := generator.GenerateRSS(articles, "")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(rss, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Newsgate - saved articles</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/news/saved/rss" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<lastBuildDate>Mon, 01 Jan 2024 15:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<title>Second &amp; last</title>`)
		assert.Contains(t, rss, `<guid isPermaLink="true">https://news.example.com/2</guid>`)
		assert.Contains(t, rss, `<description>Article &lt;two&gt;</description>`)
		assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 13:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `<category>gb</category>`)

		// optional fields omitted for the first article
		assert.Equal(t, 1, strings.Count(rss, "<category>"))
		assert.Equal(t, 1, strings.Count(rss, "<description>Article"))
	})

	t.Run("custom title", func(t *testing.T) {
		rss, err := generator.GenerateRSS(articles, "Saved US news")
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>Saved US news</title>`)
	})

	t.Run("parsed back", func(t *testing.T) {
		rss, err := generator.GenerateRSS(articles, "")
		require.NoError(t, err)

		parsed, err := gofeed.NewParser().ParseString(rss)
		require.NoError(t, err)
		assert.Equal(t, "rss", parsed.FeedType)
		assert.Equal(t, "2.0", parsed.FeedVersion)
		assert.Equal(t, DefaultTitle, parsed.Title)
		require.Len(t, parsed.Items, 2)

		first := parsed.Items[0]
		assert.Equal(t, "Second & last", first.Title)
		assert.Equal(t, "https://news.example.com/2", first.Link)
		assert.Equal(t, "https://news.example.com/2", first.GUID)
		assert.Equal(t, "Article <two>", first.Description)
		assert.Equal(t, []string{"gb"}, first.Categories)
		require.NotNil(t, first.PublishedParsed)
		assert.True(t, first.PublishedParsed.Equal(pubTime.Add(time.Hour)))

		assert.Equal(t, "First", parsed.Items[1].Title)
		assert.Empty(t, parsed.Items[1].Categories)
	})
}

func TestGenerator_GenerateRSSEmpty(t *testing.T) {
	generator := NewGenerator("http://localhost:8080")
	generator.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	rss, err := generator.GenerateRSS([]domain.Article{}, "")
	require.NoError(t, err)
	assert.Contains(t, rss, `<lastBuildDate>Mon, 06 May 2024 07:08:09 +0000</lastBuildDate>`)
	assert.NotContains(t, rss, "<item>")

	parsed, err := gofeed.NewParser().ParseString(rss)
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
	assert.Equal(t, DefaultTitle, parsed.Title)
	assert.True(t, strings.HasPrefix(parsed.Link, "http://localhost:8080/"), parsed.Link)

	// channel link and atom self link both rendered
	assert.Contains(t, rss, `<link>http://localhost:8080/</link>`)
	assert.Contains(t, rss, `href="http://localhost:8080/news/saved/rss"`)
	assert.Contains(t, rss, `rel="self"`)
}
