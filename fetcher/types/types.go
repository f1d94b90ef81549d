package types

import (
	"context"
	"time"
)

// Feed represents a loaded syndication feed
type Feed struct {
	Title   string
	Link    string
	Entries []Entry
}

// Entry represents a single item in a feed
type Entry struct {
	Title          string
	Link           string
	PublishedDate  time.Time
	ContentSnippet string // Plain text, never markup
}

// Result is delivered to the completion callback once a load resolves.
// A non-nil Err means the load failed and Feed is empty.
type Result struct {
	Feed Feed
	Err  error
}

// Loader asynchronously loads a feed and calls onComplete exactly once
type Loader interface {
	Load(ctx context.Context, url string, onComplete func(Result))
}
