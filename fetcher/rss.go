package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/scipunch/newslist/fetcher/types"
)

// RSSLoader loads RSS, Atom and JSON feeds over HTTP using gofeed
type RSSLoader struct {
	parser        *gofeed.Parser
	snippetLength int
	entriesLimit  int
}

// NewRSSLoader creates a new RSS loader
func NewRSSLoader(userAgent string, snippetLength, entriesLimit int) *RSSLoader {
	p := gofeed.NewParser()
	if userAgent != "" {
		p.UserAgent = userAgent
	}
	return &RSSLoader{
		parser:        p,
		snippetLength: snippetLength,
		entriesLimit:  entriesLimit,
	}
}

// Load fetches the feed on its own goroutine and reports the outcome through onComplete
func (l *RSSLoader) Load(ctx context.Context, url string, onComplete func(types.Result)) {
	go func() {
		feed, err := l.fetch(ctx, url)
		if err != nil {
			slog.Debug("feed load failed", "url", url, "error", err)
			onComplete(types.Result{Err: err})
			return
		}
		onComplete(types.Result{Feed: feed})
	}()
}

func (l *RSSLoader) fetch(ctx context.Context, url string) (types.Feed, error) {
	if err := ctx.Err(); err != nil {
		return types.Feed{}, err
	}
	parsed, err := l.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return types.Feed{}, fmt.Errorf("failed to parse feed at '%s': %w", url, err)
	}
	return convert(parsed, l.snippetLength, l.entriesLimit), nil
}

// convert maps a gofeed.Feed onto our Feed type, keeping entry order and
// at most entriesLimit entries (all of them when entriesLimit is 0)
func convert(parsed *gofeed.Feed, snippetLength, entriesLimit int) types.Feed {
	feed := types.Feed{
		Title:   parsed.Title,
		Link:    parsed.Link,
		Entries: make([]types.Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if entriesLimit > 0 && len(feed.Entries) == entriesLimit {
			break
		}
		if item == nil {
			continue
		}
		entry := types.Entry{
			Title: item.Title,
			Link:  item.Link,
		}

		if item.PublishedParsed != nil {
			entry.PublishedDate = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.PublishedDate = *item.UpdatedParsed
		} else {
			entry.PublishedDate = time.Time{}
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}
		entry.ContentSnippet = Snippet(body, snippetLength)

		feed.Entries = append(feed.Entries, entry)
	}

	return feed
}
