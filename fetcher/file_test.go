package fetcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scipunch/newslist/config"
	"github.com/scipunch/newslist/fetcher/types"
)

func TestFileLoader_Load(t *testing.T) {
	abs, err := filepath.Abs("testdata/blog.xml")
	require.NoError(t, err)

	for _, url := range []string{abs, "file://" + abs} {
		t.Run(url, func(t *testing.T) {
			res := await(t, func(cb func(types.Result)) {
				NewFileLoader(10, 0).Load(context.Background(), url, cb)
			})
			require.NoError(t, res.Err)
			require.Len(t, res.Feed.Entries, 3)
			assert.Equal(t, "Summary of...", res.Feed.Entries[0].ContentSnippet)
		})
	}
}

func TestFileLoader_Load_EntriesLimit(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		titles []string
	}{
		{name: "first two", limit: 2, titles: []string{"Budget 2024", "Second post"}},
		{name: "limit above feed size", limit: 4, titles: []string{"Budget 2024", "Second post", "Undated"}},
		{name: "no limit", limit: 0, titles: []string{"Budget 2024", "Second post", "Undated"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := await(t, func(cb func(types.Result)) {
				NewFileLoader(120, tt.limit).Load(context.Background(), "testdata/blog.xml", cb)
			})
			require.NoError(t, res.Err)

			var titles []string
			for _, e := range res.Feed.Entries {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestFileLoader_Load_Missing(t *testing.T) {
	res := await(t, func(cb func(types.Result)) {
		NewFileLoader(120, 0).Load(context.Background(), filepath.Join(t.TempDir(), "nope.xml"), cb)
	})
	assert.Error(t, res.Err)
}

func TestGetLoader(t *testing.T) {
	conf := config.Default()

	l, err := GetLoader(conf)
	require.NoError(t, err)
	assert.IsType(t, &RSSLoader{}, l)

	conf.Loader = config.File
	l, err = GetLoader(conf)
	require.NoError(t, err)
	assert.IsType(t, &FileLoader{}, l)

	conf.Loader = "telegram_channel"
	_, err = GetLoader(conf)
	assert.Error(t, err)
}
