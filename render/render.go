// Package render fills a page's news container with the entries of a
// syndication feed.
package render

import (
	"context"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/scipunch/newslist/config"
	"github.com/scipunch/newslist/fetcher/types"
)

// Document locates elements of the page being rendered
type Document interface {
	Lookup(id string) (*goquery.Selection, bool)
}

type Renderer struct {
	ContainerID string
	FeedAttr    string
}

type Option func(*Renderer)

func WithContainerID(id string) Option {
	return func(r *Renderer) { r.ContainerID = id }
}

func WithFeedAttr(attr string) Option {
	return func(r *Renderer) { r.FeedAttr = attr }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		ContainerID: config.DefaultContainerID,
		FeedAttr:    config.DefaultFeedAttr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init looks up the container and asks loader for the feed named by its
// attribute. The returned channel is closed once the container has been
// updated (or left alone on failure). When the container is missing the
// loader is not called and the channel is already closed.
func (r *Renderer) Init(ctx context.Context, doc Document, loader types.Loader) <-chan struct{} {
	done := make(chan struct{})

	container, ok := doc.Lookup(r.ContainerID)
	if !ok {
		close(done)
		return done
	}

	url, _ := container.Attr(r.FeedAttr)

	var once sync.Once
	loader.Load(ctx, url, func(res types.Result) {
		once.Do(func() {
			defer close(done)
			if res.Err != nil {
				return
			}
			Fill(container, res.Feed.Entries)
		})
	})

	return done
}

// Fill replaces the content of container with one list item per entry
func Fill(container *goquery.Selection, entries []types.Entry) {
	container.Empty()
	for _, entry := range entries {
		container.AppendNodes(Item(entry))
	}
}

// Item builds the list item for a single entry:
//
//	<li><h3><a href="link">title</a></h3><p class="meta">date</p><p>snippet</p></li>
func Item(entry types.Entry) *html.Node {
	link := element(atom.A, html.Attribute{Key: "href", Val: entry.Link})
	link.AppendChild(text(entry.Title))

	heading := element(atom.H3)
	heading.AppendChild(link)

	meta := element(atom.P, html.Attribute{Key: "class", Val: "meta"})
	appendDate(meta, entry.PublishedDate)

	snippet := element(atom.P)
	snippet.AppendChild(text(entry.ContentSnippet))

	li := element(atom.Li)
	li.AppendChild(heading)
	li.AppendChild(meta)
	li.AppendChild(snippet)
	return li
}

// appendDate adds the FormatDate markup for t to parent as nodes
func appendDate(parent *html.Node, t time.Time) {
	for i, seg := range dateSegments(t) {
		if i > 0 {
			parent.AppendChild(text(" "))
		}
		span := element(atom.Span, html.Attribute{Key: "class", Val: seg.class})
		span.AppendChild(text(seg.value))
		parent.AppendChild(span)
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
