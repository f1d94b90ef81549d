package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/scipunch/newslist/fetcher/types"
)

// FileLoader loads a feed stored on the local filesystem
type FileLoader struct {
	parser        *gofeed.Parser
	snippetLength int
	entriesLimit  int
}

func NewFileLoader(snippetLength, entriesLimit int) *FileLoader {
	return &FileLoader{
		parser:        gofeed.NewParser(),
		snippetLength: snippetLength,
		entriesLimit:  entriesLimit,
	}
}

// Load accepts a plain path or a file:// URL
func (l *FileLoader) Load(ctx context.Context, url string, onComplete func(types.Result)) {
	go func() {
		feed, err := l.read(ctx, strings.TrimPrefix(url, "file://"))
		if err != nil {
			slog.Debug("feed load failed", "path", url, "error", err)
			onComplete(types.Result{Err: err})
			return
		}
		onComplete(types.Result{Feed: feed})
	}()
}

func (l *FileLoader) read(ctx context.Context, path string) (types.Feed, error) {
	if err := ctx.Err(); err != nil {
		return types.Feed{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return types.Feed{}, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	parsed, err := l.parser.Parse(f)
	if err != nil {
		return types.Feed{}, fmt.Errorf("failed to parse feed file '%s': %w", path, err)
	}
	return convert(parsed, l.snippetLength, l.entriesLimit), nil
}
